package euclid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.Distance(p2) <= 1e-9
})

var lineComparer = cmp.Comparer(func(l1, l2 Line) bool {
	return l1.Overlaps(l2)
})

var circleComparer = cmp.Comparer(func(c1, c2 Circle) bool {
	return c1.Overlaps(c2)
})

// The must helpers take the result of a constructor call directly and panic
// on error, failing the running test.
func mustLine(l Line, err error) Line {
	if err != nil {
		panic(err)
	}
	return l
}

func mustCircle(c Circle, err error) Circle {
	if err != nil {
		panic(err)
	}
	return c
}

func mustPoint(p Point, err error) Point {
	if err != nil {
		panic(err)
	}
	return p
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func assertOverlap(t *testing.T, got, want Object) {
	t.Helper()
	ok, err := IsOverlap(got, want)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Errorf("got %s, expected %s", got, want)
	}
}
