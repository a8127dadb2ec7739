package dynamo

import (
	"fmt"
	"math"
)

// Vec2 is a planar vector in layout units.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

func (v Vec2) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Clamp saturates both components to [-limit, limit].
func (v Vec2) Clamp(limit float64) Vec2 {
	return Vec2{Clamp(v.X, -limit, limit), Clamp(v.Y, -limit, limit)}
}

func (v Vec2) IsValid() bool { return IsFinite(v.X) && IsFinite(v.Y) }

func (v Vec2) String() string { return fmt.Sprintf("(%.4f, %.4f)", v.X, v.Y) }

// Clamp returns x limited to [lo, hi]. NaN is passed through unchanged.
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Polar resolves a magnitude and angle (radians) into components.
func Polar(mag, theta float64) Vec2 {
	return Vec2{mag * math.Cos(theta), mag * math.Sin(theta)}
}

func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }

func RadToDeg(rad float64) float64 { return rad * 180 / math.Pi }
