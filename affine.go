package spiro

import (
	"math"
)

// Affine describes a 2D affine transform as a 3×3 matrix acting on
// homogeneous coordinates (x, y, 1), indexed as M[row][col]:
//
//	| M00 M01 M02 |
//	| M10 M11 M12 |
//	| M20 M21 M22 |
//
// The upper-left 2×2 block is the linear part and the last column holds the
// translation. The convention is that (A * B) * v == A * (B * v), that is,
// A.Mul(B) applies B first and A second. Composition is associative but not
// commutative.
type Affine struct {
	M [3][3]float64
}

// Identity is the identity transform.
var Identity = Affine{M: [3][3]float64{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}}

// Zero returns the transform whose coefficients are all zero. It maps every
// point to the origin and is mostly useful as an accumulator.
func Zero() Affine {
	return Affine{}
}

// Translate creates an affine transform representing translation by v.
func Translate(v Vec2) Affine {
	return Affine{M: [3][3]float64{
		{1, 0, v.X},
		{0, 1, v.Y},
		{0, 0, 1},
	}}
}

// Rotate creates an affine transform representing rotation about the origin.
//
// The convention for rotation is that a positive angle rotates a
// positive X direction into positive Y. Thus, in a Y-up coordinate system
// (traditional for math, and the one used by this package) it is an
// anti-clockwise rotation.
//
// The angle th is expressed in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{M: [3][3]float64{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}}
}

// Mul returns the matrix product aff × o: the transform that applies o
// first, then aff.
//
// The full 3×3 product is computed, including the bottom row, so that
// transforms of any origin compose uniformly.
func (aff Affine) Mul(o Affine) Affine {
	var out Affine
	for i := range 3 {
		for j := range 3 {
			for k := range 3 {
				out.M[i][j] += aff.M[i][k] * o.M[k][j]
			}
		}
	}
	return out
}

// PreRotate creates a rotation by th followed by aff.
//
// Equivalent to "aff * Rotate(th)"
func (aff Affine) PreRotate(th float64) Affine {
	return aff.Mul(Rotate(th))
}

// ThenRotate creates aff followed by a rotation of th.
//
// Equivalent to "Rotate(th) * aff"
func (aff Affine) ThenRotate(th float64) Affine {
	return Rotate(th).Mul(aff)
}

// PreTranslate creates a translation of v followed by aff.
//
// Equivalent to "aff * Translate(v)"
func (aff Affine) PreTranslate(v Vec2) Affine {
	return aff.Mul(Translate(v))
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	return Translate(v).Mul(aff)
}

// Determinant computes the determinant of the linear part. Rigid motions,
// such as the ones produced by [WheelTransform], have a determinant of 1.
func (aff Affine) Determinant() float64 {
	return aff.M[0][0]*aff.M[1][1] - aff.M[0][1]*aff.M[1][0]
}

// Translation returns the translation component of this affine transformation.
func (aff Affine) Translation() Vec2 {
	return Vec2{
		X: aff.M[0][2],
		Y: aff.M[1][2],
	}
}

func (aff Affine) IsInf() bool {
	for _, row := range aff.M {
		for _, n := range row {
			if math.IsInf(n, 0) {
				return true
			}
		}
	}
	return false
}

func (aff Affine) IsNaN() bool {
	for _, row := range aff.M {
		for _, n := range row {
			if math.IsNaN(n) {
				return true
			}
		}
	}
	return false
}

// TransformPoints applies aff to every point of pts and returns the results
// in a new slice, in the same order.
func TransformPoints(pts []Point, aff Affine) []Point {
	out := make([]Point, len(pts))
	for i, pt := range pts {
		out[i] = pt.Transform(aff)
	}
	return out
}
