package spiro

import (
	"fmt"
	"math"
)

// Circle is a circle of the given radius centred on the origin. Arc length
// zero is at (Radius, 0) and the outline runs anti-clockwise.
type Circle struct {
	Radius float64
}

// NewCircle returns a circle of radius r. The radius must be positive; this
// is not checked.
func NewCircle(r float64) Circle {
	return Circle{Radius: r}
}

func (c Circle) Perimeter() float64 {
	return 2 * math.Pi * c.Radius
}

// MinRadius implements ParametricShape. A circle's curvature is constant.
func (c Circle) MinRadius() float64 { return c.Radius }

// MaxRadius implements ParametricShape.
func (c Circle) MaxRadius() float64 { return c.Radius }

// Parametric implements ParametricShape.
func (c Circle) Parametric(s float64) Point {
	t := wrap(s/c.Perimeter(), 1)
	sin, cos := math.Sincos(2 * math.Pi * t)
	return Point{
		X: c.Radius * cos,
		Y: c.Radius * sin,
	}
}

func (c Circle) IsInf() bool {
	return math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return math.IsNaN(c.Radius)
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle(%g)", c.Radius)
}
