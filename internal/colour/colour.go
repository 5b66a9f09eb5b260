// Package colour provides the engine's packed 32-bit colour value type.
package colour

import "github.com/elysion/engine/internal/maths"

// Colour packs ARGB components into a single uint32 (alpha in the top byte).
// It is a plain value type: compare with ==, copy freely.
type Colour uint32

// FromFloats builds an opaque colour from normalised [0,1] components.
func FromFloats(r, g, b float64) Colour {
	return FromFloatsA(r, g, b, 1)
}

// FromFloatsA builds a colour from normalised [0,1] components; out-of-range
// values are clamped.
func FromFloatsA(r, g, b, a float64) Colour {
	return Colour(uint32(maths.UnitToByte(a))<<24 |
		uint32(maths.UnitToByte(r))<<16 |
		uint32(maths.UnitToByte(g))<<8 |
		uint32(maths.UnitToByte(b)))
}

// FromBytes builds an opaque colour from 0-255 components.
func FromBytes(r, g, b uint8) Colour {
	return FromBytesA(r, g, b, 0xFF)
}

// FromBytesA builds a colour from 0-255 components.
func FromBytesA(r, g, b, a uint8) Colour {
	return Colour(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromVector3 reads RGB from XYZ; the result is opaque.
func FromVector3(v maths.Vector3) Colour {
	return FromFloats(v.X, v.Y, v.Z)
}

// FromVector4 reads RGBA from XYZW.
func FromVector4(v maths.Vector4) Colour {
	return FromFloatsA(v.X, v.Y, v.Z, v.W)
}

// R returns the red component as a normalised [0,1] float.
func (c Colour) R() float64 {
	return float64(c>>16&0xFF) / 0xFF
}

// G returns the green component as a normalised [0,1] float.
func (c Colour) G() float64 {
	return float64(c>>8&0xFF) / 0xFF
}

// B returns the blue component as a normalised [0,1] float.
func (c Colour) B() float64 {
	return float64(c&0xFF) / 0xFF
}

// A returns the alpha component as a normalised [0,1] float.
func (c Colour) A() float64 {
	return float64(c>>24&0xFF) / 0xFF
}

// Vector3 returns RGB as XYZ, dropping alpha.
func (c Colour) Vector3() maths.Vector3 {
	return maths.Vector3{X: c.R(), Y: c.G(), Z: c.B()}
}

// Vector4 returns RGBA as XYZW.
func (c Colour) Vector4() maths.Vector4 {
	return maths.Vector4{X: c.R(), Y: c.G(), Z: c.B(), W: c.A()}
}

// Scale multiplies every component, alpha included, by s.
func (c Colour) Scale(s float64) Colour {
	return FromFloatsA(c.R()*s, c.G()*s, c.B()*s, c.A()*s)
}

// Div divides every component by s.
func (c Colour) Div(s float64) Colour {
	return c.Scale(1 / s)
}

// Lerp interpolates component-wise from a to b by t.
func Lerp(a, b Colour, t float64) Colour {
	return FromFloatsA(
		maths.Lerp(a.R(), b.R(), t),
		maths.Lerp(a.G(), b.G(), t),
		maths.Lerp(a.B(), b.B(), t),
		maths.Lerp(a.A(), b.A(), t),
	)
}

// ByName looks up one of the named colours using its snake_case data-file
// name, e.g. "cornflower_blue".
func ByName(name string) (Colour, bool) {
	c, ok := names[name]
	return c, ok
}
