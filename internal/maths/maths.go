// Package maths provides the fixed-size vector value types and scalar
// helpers used by game code. Everything here is plain data: no type in this
// package collaborates with the entity core beyond being carried around by
// components.
package maths

import "math"

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Lerp interpolates linearly from start to end by t. t is not clamped.
func Lerp(start, end, t float64) float64 {
	return start + t*(end-start)
}

// UnitToByte converts a normalised [0,1] float to a 0-255 byte, clamping
// out-of-range input.
func UnitToByte(v float64) uint8 {
	return uint8(Clamp(v, 0, 1) * 0xFF)
}
