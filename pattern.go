package spiro

// PatternSamples is the number of points in every pattern.
const PatternSamples = 300

// PatternStep is the distance between consecutive samples, as a fraction of
// the guide's perimeter. With [PatternSamples] samples a pattern covers three
// laps of the guide, which closes most patterns whose radius ratio isn't an
// integer. Ratios that need more laps are cut short; the sampling isn't
// adaptive.
const PatternStep = 0.01

// Pen describes where a pen is mounted on a wheel. See [PenTransform].
type Pen struct {
	// Theta is the direction of the pen from the wheel's centre, in [0, 2π].
	Theta float64
	// Radius is the distance from the wheel's centre, in [0, 1], as a
	// fraction of the distance to the wheel's outline.
	Radius float64
}

// Pattern describes a spirograph: a wheel with a pen rolling along a guide.
//
// Patterns are plain values; computing points doesn't modify them and many
// patterns may be computed concurrently.
type Pattern struct {
	Guide  ParametricShape
	Wheel  ParametricShape
	Inside bool
	Pen    Pen
}

// Fits reports whether the wheel fits inside the guide. It is only
// meaningful for patterns with Inside set.
func (p Pattern) Fits() bool {
	return FitsInside(p.Wheel, p.Guide)
}

// Points traces the pen and returns [PatternSamples] points, in the order in
// which the pen visits them.
func (p Pattern) Points() []Point {
	pen := PenTransform(p.Wheel, p.Pen.Theta, p.Pen.Radius)
	perimeter := p.Guide.Perimeter()

	pts := make([]Point, PatternSamples)
	for i := range pts {
		s := perimeter * PatternStep * float64(i)
		aff := WheelTransform(p.Wheel, p.Guide, p.Inside, s).Mul(pen)
		pts[i] = Point{}.Transform(aff)
	}
	return pts
}

// Outline rasterises the guide, for drawing it alongside the pattern.
func (p Pattern) Outline(resolution int) []Point {
	return Rasterise(p.Guide, resolution)
}
