package spiro

import (
	"math"
)

// WheelTransform computes the rigid transform that places wheel, given in its
// own frame, against guide at arc length s along the guide's outline, having
// rolled there without slipping from s = 0.
//
// If inside is true, the wheel rolls along the inside of the guide; the
// caller is responsible for checking that it fits, see [FitsInside].
// Otherwise it rolls along the outside.
//
// For two circles this is the classical construction of hypocycloids
// (inside) and epicycloids (outside). A wheel rolling inside an identical
// guide doesn't move at all and the result is the identity.
func WheelTransform(wheel, guide ParametricShape, inside bool, s float64) Affine {
	// Both outlines are consumed at the same rate. Rolling on the outside
	// turns the wheel the other way around relative to its own outline.
	sWheel := s
	if !inside {
		sWheel = -s
	}

	normGuide := NormalAt(guide, s)
	normWheel := NormalAt(wheel, sWheel)

	// Align the wheel's normal with the guide's. On the outside the wheel
	// has to face the guide, hence the half turn.
	th := normGuide.Angle() - normWheel.Angle()
	if !inside {
		th += math.Pi
	}

	// The spoke from the wheel's centre to its contact point, rotated into
	// world orientation and flipped, leads from the guide's contact point to
	// where the wheel's centre has to be.
	spoke := Vec2(wheel.Parametric(sWheel)).Rotate(math.Pi + th)

	return Identity.
		ThenRotate(th).
		ThenTranslate(Vec2(guide.Parametric(s))).
		ThenTranslate(spoke)
}

// PenTransform computes the translation from the centre of wheel to a pen
// mounted on it.
//
// The pen's direction is given by th, in [0, 2π], which selects the point of
// the outline at the same fraction of the perimeter. The radius, clamped to
// [0, 1], scales the spoke to that point: 0 places the pen at the centre and
// 1 on the outline itself.
func PenTransform(wheel ParametricShape, th, radius float64) Affine {
	s := th / (2 * math.Pi) * wheel.Perimeter()
	radius = min(max(radius, 0), 1)
	return Translate(Vec2(wheel.Parametric(s)).Mul(radius))
}
