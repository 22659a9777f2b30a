package math

import "github.com/chewxy/math32"

// Float32 constants.
const (
	Pi       = math32.Pi
	MaxFloat = math32.MaxFloat32
)

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * Pi / 180
}

// Abs returns the absolute value of v.
func Abs(v float32) float32 {
	return math32.Abs(v)
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
