package spiro

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func assertAffineNear(t *testing.T, a0, a1 Affine, epsilon float64) {
	t.Helper()
	for i := range 3 {
		for j := range 3 {
			if d := math.Abs(a0.M[i][j] - a1.M[i][j]); d > epsilon {
				t.Fatalf("got %v, expected %v", a0, a1)
			}
		}
	}
}

// testShapes are the shapes that every shape property is checked on.
var testShapes = []ParametricShape{
	Circle{Radius: 5},
	Circle{Radius: 0.25},
	Rod{MajorRadius: 2, AspectRatio: 0.3},
	Rod{MajorRadius: 10, AspectRatio: 0.05},
	Rod{MajorRadius: 1, AspectRatio: 0.5},
}
