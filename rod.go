package spiro

import (
	"fmt"
	"math"
)

// Rod is a stadium: two semicircular caps joined by two straight edges,
// centred on the origin with its long axis along x.
//
// MajorRadius sets the rod's size: the far end of each cap lies at twice
// that distance from the centre. AspectRatio, in (0, 1), controls how wide
// the rod is compared to its length. See [Rod.CapRadius] and
// [Rod.SideLength] for the derived dimensions.
//
// Arc length zero is at the middle of the top edge, (0, CapRadius), and the
// outline runs anti-clockwise.
type Rod struct {
	MajorRadius float64
	AspectRatio float64
}

// NewRod returns a rod. The major radius must be positive and the aspect
// ratio must lie in (0, 1); neither is checked.
func NewRod(majorRadius, aspectRatio float64) Rod {
	return Rod{MajorRadius: majorRadius, AspectRatio: aspectRatio}
}

// CapRadius returns the radius of the two end caps, which is also half the
// width of the rod.
func (r Rod) CapRadius() float64 {
	return r.AspectRatio * 2 * r.MajorRadius
}

// SideLength returns half the length of each straight edge, the distance
// from the centre to either cap's centre along x.
func (r Rod) SideLength() float64 {
	return 2 * r.MajorRadius * (1 - r.AspectRatio)
}

func (r Rod) Perimeter() float64 {
	return 2*math.Pi*r.CapRadius() + 4*r.SideLength()
}

// MinRadius implements ParametricShape. The caps are the most curved part.
func (r Rod) MinRadius() float64 { return r.CapRadius() }

// MaxRadius implements ParametricShape. The straight edges have zero
// curvature.
func (r Rod) MaxRadius() float64 { return math.Inf(1) }

// Parametric implements ParametricShape.
func (r Rod) Parametric(s float64) Point {
	side := r.SideLength()
	capR := r.CapRadius()
	capLen := math.Pi * capR

	// t=0 is the top of the left cap; shifting by one side length puts s=0
	// in the middle of the top edge.
	t := wrap(s-side, r.Perimeter())

	switch {
	case t < capLen:
		// Left cap, running from the top down.
		sin, cos := math.Sincos(t / capR)
		return Point{
			X: -capR*sin - side,
			Y: capR * cos,
		}
	case t < capLen+2*side:
		// Bottom edge, left to right.
		return Point{
			X: -side + t - capLen,
			Y: -capR,
		}
	case t < 2*capLen+2*side:
		// Right cap, running from the bottom up.
		sin, cos := math.Sincos((t - 2*side) / capR)
		return Point{
			X: -capR*sin + side,
			Y: capR * cos,
		}
	default:
		// Top edge, right to left.
		return Point{
			X: 3*side - t + 2*capLen,
			Y: capR,
		}
	}
}

func (r Rod) IsInf() bool {
	return math.IsInf(r.MajorRadius, 0) || math.IsInf(r.AspectRatio, 0)
}

func (r Rod) IsNaN() bool {
	return math.IsNaN(r.MajorRadius) || math.IsNaN(r.AspectRatio)
}

func (r Rod) String() string {
	return fmt.Sprintf("Rod(%g, %g)", r.MajorRadius, r.AspectRatio)
}
