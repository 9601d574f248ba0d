// Package spiro computes roulette curves: the patterns traced by a pen fixed
// to a wheel that rolls, without slipping, along the inside or the outside
// of a guide. These are the patterns drawn by the Spirograph toy.
//
// # Shapes
//
// Both the wheel and the guide are closed shapes parametrized by arc length,
// described by the [ParametricShape] interface. Parametrizing by arc length
// rather than by some other parameter is what makes rolling without
// slipping easy to express: after rolling a distance s, the wheel touches the
// guide at the point s along the guide's outline with the point s along its
// own outline.
//
// This package includes the following shapes:
//   - [Circle]
//   - [Rod], a stadium made of two semicircular caps and two straight edges
//
// Shapes are defined in their own frame, centred on the origin, with y
// pointing up and outlines running anti-clockwise. Generic helpers such as
// [NormalAt] and [Rasterise] work on any shape.
//
// # Transforms
//
// Positions are [Point] values and displacements are [Vec2] values. [Affine]
// is a 3×3 homogeneous matrix; composing transforms is matrix
// multiplication, with A.Mul(B) meaning "first B, then A".
//
// [WheelTransform] solves the rolling contact: it returns the rigid motion
// that places the wheel against the guide at a given arc length, with the
// normals of both shapes aligned and their contact points coinciding.
// [PenTransform] moves from the wheel's centre to the pen. Applying both to
// the origin yields one point of the pattern.
//
// # Patterns
//
// [Pattern] ties a guide, a wheel and a [Pen] together. [Pattern.Points]
// samples [PatternSamples] points spaced [PatternStep] perimeters apart,
// three laps around the guide. Patterns can be drawn with [WriteSVGDocument].
//
// All functions in this package are pure and safe for concurrent use. Shapes
// aren't validated: a non-positive radius, or an aspect ratio outside (0, 1),
// produces meaningless (possibly NaN) coordinates instead of an error.
// Callers that accept user input should validate it first, including
// checking with [FitsInside] that a wheel rolling on the inside actually
// fits.
package spiro
