package spiro

import (
	"math"
	"testing"
)

func TestWheelConcentric(t *testing.T) {
	// A wheel rolling inside an identical guide stays put.
	for _, r := range []float64{0.5, 1, 3, 40} {
		c := Circle{Radius: r}
		for _, s := range Linspace(-c.Perimeter(), 2*c.Perimeter(), 37) {
			assertAffineNear(t, WheelTransform(c, c, true, s), Identity, 1e-9*r)
		}
	}
}

func TestWheelHypocycloidCentre(t *testing.T) {
	guide := Circle{Radius: 5}
	wheel := Circle{Radius: 2}
	for _, s := range Linspace(0, 3*guide.Perimeter(), 90) {
		phi := s / guide.Radius
		want := Pt(3*math.Cos(phi), 3*math.Sin(phi))
		got := Point{}.Transform(WheelTransform(wheel, guide, true, s))
		assertNear(t, got, want, 1e-4)
	}
}

func TestWheelEpicycloidCentre(t *testing.T) {
	guide := Circle{Radius: 5}
	wheel := Circle{Radius: 2}
	for _, s := range Linspace(0, 3*guide.Perimeter(), 90) {
		phi := s / guide.Radius
		want := Pt(7*math.Cos(phi), 7*math.Sin(phi))
		got := Point{}.Transform(WheelTransform(wheel, guide, false, s))
		assertNear(t, got, want, 1e-4)
	}
}

func TestWheelContact(t *testing.T) {
	// The wheel's contact point lands on the guide's contact point.
	pairs := []struct {
		wheel, guide ParametricShape
		inside       bool
	}{
		{Circle{Radius: 1}, Circle{Radius: 4}, true},
		{Circle{Radius: 1}, Circle{Radius: 4}, false},
		{Circle{Radius: 1}, Rod{MajorRadius: 2, AspectRatio: 0.3}, true},
		{Circle{Radius: 0.5}, Rod{MajorRadius: 2, AspectRatio: 0.3}, false},
		{Rod{MajorRadius: 1, AspectRatio: 0.4}, Circle{Radius: 6}, false},
	}
	for _, p := range pairs {
		for _, s := range Linspace(0, p.guide.Perimeter(), 50) {
			sWheel := s
			if !p.inside {
				sWheel = -s
			}
			aff := WheelTransform(p.wheel, p.guide, p.inside, s)
			got := p.wheel.Parametric(sWheel).Transform(aff)
			assertNear(t, got, p.guide.Parametric(s), 1e-9)
		}
	}
}

func TestWheelRigid(t *testing.T) {
	guide := Rod{MajorRadius: 3, AspectRatio: 0.4}
	wheel := Circle{Radius: 1.1}
	for _, inside := range []bool{true, false} {
		for _, s := range Linspace(-5, 25, 60) {
			aff := WheelTransform(wheel, guide, inside, s)
			if d := aff.Determinant(); math.Abs(d-1) > 1e-12 {
				t.Errorf("s=%v inside=%t: got determinant %v", s, inside, d)
			}
			if aff.IsNaN() || aff.IsInf() {
				t.Errorf("s=%v inside=%t: non-finite transform %v", s, inside, aff)
			}
		}
	}
}

func TestPenTransform(t *testing.T) {
	const epsilon = 1e-9
	c := Circle{Radius: 2}

	assertNear(t, Point{}.Transform(PenTransform(c, 0, 1)), Pt(2, 0), epsilon)
	assertNear(t, Point{}.Transform(PenTransform(c, math.Pi/2, 0.5)), Pt(0, 1), epsilon)
	assertNear(t, Point{}.Transform(PenTransform(c, math.Pi, 0.25)), Pt(-0.5, 0), epsilon)
	assertNear(t, Point{}.Transform(PenTransform(c, 2*math.Pi, 1)), Pt(2, 0), epsilon)
	assertNear(t, Point{}.Transform(PenTransform(c, 1.3, 0)), Pt(0, 0), epsilon)
}

func TestPenTransformClamp(t *testing.T) {
	c := Circle{Radius: 2}
	diff(t, PenTransform(c, 1, 1), PenTransform(c, 1, 7))
	diff(t, PenTransform(c, 1, 0), PenTransform(c, 1, -3))
}
