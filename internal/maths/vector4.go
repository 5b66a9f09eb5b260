package maths

import "math"

// Vector4 is a 4-component float vector.
type Vector4 struct {
	X, Y, Z, W float64
}

func (v Vector4) Add(o Vector4) Vector4 {
	return Vector4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vector4) Sub(o Vector4) Vector4 {
	return Vector4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vector4) Neg() Vector4 {
	return Vector4{-v.X, -v.Y, -v.Z, -v.W}
}

func (v Vector4) Scale(s float64) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vector4) Div(s float64) Vector4 {
	return Vector4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

func (v Vector4) Dot(o Vector4) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

func (v Vector4) SquaredMagnitude() float64 {
	return v.Dot(v)
}

func (v Vector4) Magnitude() float64 {
	return math.Sqrt(v.SquaredMagnitude())
}

func (v Vector4) Normalized() Vector4 {
	m := v.Magnitude()
	if m == 0 {
		return Vector4{}
	}
	return v.Div(m)
}
