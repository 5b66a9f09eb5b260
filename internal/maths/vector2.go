package maths

import "math"

// Vector2 is a 2-component float vector. The zero value is the zero vector.
type Vector2 struct {
	X, Y float64
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

func (v Vector2) Neg() Vector2 {
	return Vector2{-v.X, -v.Y}
}

// Scale multiplies each component by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Div divides each component by s.
func (v Vector2) Div(s float64) Vector2 {
	return Vector2{v.X / s, v.Y / s}
}

func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// SquaredMagnitude returns the squared length, avoiding the sqrt.
func (v Vector2) SquaredMagnitude() float64 {
	return v.Dot(v)
}

func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.SquaredMagnitude())
}

// Normalized returns the unit vector in v's direction, zero-safe.
func (v Vector2) Normalized() Vector2 {
	m := v.Magnitude()
	if m == 0 {
		return Vector2{}
	}
	return v.Div(m)
}

// Lerp2 interpolates component-wise from a to b by t.
func Lerp2(a, b Vector2, t float64) Vector2 {
	return Vector2{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t)}
}
