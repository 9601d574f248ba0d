package spiro

import (
	"math"
)

// NormalEpsilon is the arc length step used by [NormalAt] to estimate the
// tangent by finite differences.
const NormalEpsilon = 1e-4

// RasteriseFraction is the fraction of the perimeter covered by [Rasterise].
// A full loop would produce coincident start and end points.
const RasteriseFraction = 0.95

// ParametricShape describes closed shapes that are parametrized by arc
// length. Shapes are described in their own frame, centred on the origin.
//
// The two implementations are [Circle] and [Rod].
type ParametricShape interface {
	// Parametric returns the point at arc length s along the outline.
	//
	// The outline is periodic with period Perimeter(), so any real s is
	// accepted, including negative values.
	Parametric(s float64) Point

	// Perimeter returns the total arc length of the outline. It is always
	// positive.
	Perimeter() float64

	// MinRadius returns the smallest radius of curvature along the outline.
	MinRadius() float64

	// MaxRadius returns the largest radius of curvature along the outline.
	// Straight edges have infinite radius.
	MaxRadius() float64
}

var _ ParametricShape = Circle{}
var _ ParametricShape = Rod{}

// Rasterise samples resolution+1 evenly spaced points along the outline of
// shape, starting at arc length 0 and ending at [RasteriseFraction] of the
// perimeter.
func Rasterise(shape ParametricShape, resolution int) []Point {
	ss := Linspace(0, shape.Perimeter()*RasteriseFraction, resolution)
	pts := make([]Point, len(ss))
	for i, s := range ss {
		pts[i] = shape.Parametric(s)
	}
	return pts
}

// NormalAt returns the outward unit normal of shape at arc length s.
//
// The tangent is estimated as the chord from s−[NormalEpsilon] to s and
// rotated by −π/2. For anti-clockwise outlines, which both built-in shapes
// are, this points away from the shape's interior.
func NormalAt(shape ParametricShape, s float64) Vec2 {
	tangent := shape.Parametric(s).Sub(shape.Parametric(s - NormalEpsilon))
	return tangent.Rotate(-math.Pi / 2).Normalize()
}

// FitsInside reports whether wheel can roll along the inside of guide, that
// is, whether the wheel is nowhere flatter than the guide is at its most
// curved.
func FitsInside(wheel, guide ParametricShape) bool {
	return wheel.MaxRadius() <= guide.MinRadius()
}

// wrap reduces x into [0, period).
func wrap(x, period float64) float64 {
	x = math.Mod(x, period)
	if x < 0 {
		x += period
	}
	return x
}
