package spiro

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLinspace(t *testing.T) {
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, Linspace(0, 1, 4))
	diff(t, []float64{10, 5, 0}, Linspace(10, 0, 2))
	diff(t, []float64{3}, Linspace(3, 7, 0))

	// Restartable: calling again yields the same sequence.
	diff(t, Linspace(-1, 2, 7), Linspace(-1, 2, 7))
	if n := len(Linspace(-1, 2, 7)); n != 8 {
		t.Errorf("got %d values, want 8", n)
	}
}

func TestPeriodicity(t *testing.T) {
	for _, shape := range testShapes {
		p := shape.Perimeter()
		if p <= 0 {
			t.Fatalf("%v: got perimeter %v, want positive", shape, p)
		}
		for _, s := range Linspace(-2*p, 2*p, 97) {
			assertNear(t, shape.Parametric(s), shape.Parametric(s+p), 1e-9*p)
			assertNear(t, shape.Parametric(s), shape.Parametric(s-3*p), 1e-9*p)
		}
	}
}

func TestNormalUnitLength(t *testing.T) {
	for _, shape := range testShapes {
		for _, s := range Linspace(-shape.Perimeter(), shape.Perimeter(), 113) {
			n := NormalAt(shape, s)
			if d := math.Abs(n.Hypot() - 1); d > 1e-9 {
				t.Errorf("%v: normal at %v has magnitude %v", shape, s, n.Hypot())
			}
		}
	}
}

func TestNormalOutward(t *testing.T) {
	// Both shapes are convex and centred on the origin, so outward normals
	// point away from it.
	for _, shape := range testShapes {
		for _, s := range Linspace(0, shape.Perimeter(), 64) {
			pt := shape.Parametric(s)
			if n := NormalAt(shape, s); n.Dot(Vec2(pt)) <= 0 {
				t.Errorf("%v: normal %s at %s points inwards", shape, n, pt)
			}
		}
	}
}

func TestNormalCircle(t *testing.T) {
	c := Circle{Radius: 2}
	for _, s := range Linspace(0, c.Perimeter(), 16) {
		want := Vec2(c.Parametric(s)).Normalize()
		diff(t, want, NormalAt(c, s), cmpopts.EquateApprox(0, 1e-4))
	}
}

func TestRasterise(t *testing.T) {
	for _, shape := range testShapes {
		for _, res := range []int{1, 10, 100} {
			pts := Rasterise(shape, res)
			if len(pts) != res+1 {
				t.Fatalf("%v: got %d points, want %d", shape, len(pts), res+1)
			}
			assertNear(t, pts[0], shape.Parametric(0), 1e-12)
			assertNear(t, pts[res], shape.Parametric(RasteriseFraction*shape.Perimeter()), 1e-9)
		}
	}
}

func TestRasteriseOpen(t *testing.T) {
	// The outline stops short of a full loop.
	pts := Rasterise(Circle{Radius: 1}, 20)
	if d := pts[0].Distance(pts[len(pts)-1]); d < 0.1 {
		t.Errorf("first and last points are only %v apart", d)
	}
}

func TestFitsInside(t *testing.T) {
	tests := []struct {
		wheel, guide ParametricShape
		want         bool
	}{
		{Circle{Radius: 5}, Circle{Radius: 3}, false},
		{Circle{Radius: 1}, Circle{Radius: 3}, true},
		{Circle{Radius: 3}, Circle{Radius: 3}, true},
		{Circle{Radius: 1}, Rod{MajorRadius: 2, AspectRatio: 0.3}, true},
		{Circle{Radius: 1.5}, Rod{MajorRadius: 2, AspectRatio: 0.3}, false},
		{Rod{MajorRadius: 0.1, AspectRatio: 0.5}, Circle{Radius: 100}, false},
	}
	for _, tt := range tests {
		if got := FitsInside(tt.wheel, tt.guide); got != tt.want {
			t.Errorf("FitsInside(%v, %v) = %t, want %t", tt.wheel, tt.guide, got, tt.want)
		}
	}
}
