package spiro

import (
	"fmt"
	"math"
	"strconv"
)

// Point is a position in the plane. Shapes are evaluated in their own local
// frame, with the shape's centre at the origin; transforms produced by
// [WheelTransform] and [PenTransform] carry such points into world space.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// MarshalJSON encodes the point as the two-element array [x, y].
func (pt Point) MarshalJSON() ([]byte, error) {
	if pt.IsNaN() || pt.IsInf() {
		return nil, fmt.Errorf("spiro: cannot encode non-finite point %s", pt)
	}
	b := make([]byte, 0, 48)
	b = append(b, '[')
	b = strconv.AppendFloat(b, pt.X, 'g', -1, 64)
	b = append(b, ',')
	b = strconv.AppendFloat(b, pt.Y, 'g', -1, 64)
	b = append(b, ']')
	return b, nil
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Transform applies aff to the point in homogeneous coordinates (x, y, 1).
func (pt Point) Transform(aff Affine) Point {
	m := &aff.M
	return Point{
		X: m[0][0]*pt.X + m[0][1]*pt.Y + m[0][2],
		Y: m[1][0]*pt.X + m[1][1]*pt.Y + m[1][2],
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
