package euclid

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestInterLL(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(0, 1)
	c := Pt(1, 0)
	d := Pt(1, 1)
	m := mustLine(LineFromPoints(b, c))
	n := mustLine(LineFromPoints(a, d))
	diff(t, Pt(0.5, 0.5), mustPoint(InterLL(m, n)))

	if _, err := InterLL(Line{1, -1, 0}, Line{1, -1, -1}); !errors.Is(err, ErrParallel) {
		t.Errorf("got %v, want ErrParallel", err)
	}
	if _, err := InterLL(Line{1, -1, 0}, Line{-2, 2, 0}); !errors.Is(err, ErrParallel) {
		t.Errorf("got %v, want ErrParallel for overlapping lines", err)
	}
}

func TestInterLLSymmetric(t *testing.T) {
	lines := []Line{{1, -1, 0}, {2, 3, -4}, {0, 1, 7}, {5, 0, 1}, {-0.3, 1.7, 2.2}}
	for i, l := range lines {
		for _, k := range lines[i+1:] {
			p := mustPoint(InterLL(l, k))
			q := mustPoint(InterLL(k, l))
			if !p.Overlaps(q) {
				t.Errorf("InterLL(%s, %s) = %s but InterLL(%s, %s) = %s", l, k, p, k, l, q)
			}
			if !IsThrough(l, p) || !IsThrough(k, p) {
				t.Errorf("%s isn't on both %s and %s", p, l, k)
			}
		}
	}
}

func TestInterLC(t *testing.T) {
	// Horizontal line, solved for x.
	got := InterLC(Line{0, 1, -4}, Circle{Pt(0, 0), 5})
	diff(t, []Point{Pt(3, 4), Pt(-3, 4)}, got, pointComparer)

	// General line, solved for y.
	got = InterLC(Line{1, 0, -6}, Circle{Pt(3, 0), 5})
	diff(t, []Point{Pt(6, 4), Pt(6, -4)}, got, pointComparer)

	// Tangent.
	got = InterLC(Line{0, 1, -4}, Circle{Pt(0, 0), 4})
	diff(t, []Point{Pt(0, 4), Pt(0, 4)}, got, pointComparer)

	// Miss.
	if got := InterLC(Line{1, 0, -6}, Circle{Pt(0, 0), 4}); len(got) != 0 {
		t.Errorf("expected no intersections, got %v", got)
	}
}

func TestInterLCUnitSquare(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(0, 1)
	l := mustLine(LineFromPoints(a, b))
	c := Circle{Pt(0.5, 0.5), math.Sqrt(0.5)}

	xs := mustInter(t, l, c)
	ys := mustInter(t, c, l)
	diff(t, xs, ys, pointComparer)

	sorted := slices.Clone(xs)
	slices.SortFunc(sorted, func(p, q Point) int { return cmpFloat(p.Y, q.Y) })
	diff(t, []Point{a, b}, sorted, pointComparer)
}

func TestInterLCOther(t *testing.T) {
	d := Circle{Pt(3, 0), 5}
	l := Line{1, 0, -6}
	xs := InterLC(l, d)
	diff(t, xs[1], InterLCOther(l, d, xs[0]), pointComparer)
	diff(t, xs[0], InterLCOther(l, d, xs[1]), pointComparer)

	k := Line{0, 1, -3}
	diff(t, Pt(7, 3), InterLCOther(k, d, Pt(-1, 3)), pointComparer)
}

func TestInterCC(t *testing.T) {
	c := Circle{Pt(0, 0), 4}
	d := Circle{Pt(3, 0), 5}

	xs, err := InterCC(c, d)
	if err != nil {
		t.Fatal(err)
	}
	slices.SortFunc(xs, func(p, q Point) int { return cmpFloat(p.Y, q.Y) })
	diff(t, []Point{Pt(0, -4), Pt(0, 4)}, xs, pointComparer)

	other, err := InterCCOther(c, d, xs[1])
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(0, -4), other, pointComparer)

	if xs, err := InterCC(c, Circle{Pt(10, 0), 1}); err != nil || len(xs) != 0 {
		t.Errorf("got %v, %v, want no intersections", xs, err)
	}
	if xs, err := InterCC(c, Circle{Pt(0, 0), 1}); err != nil || len(xs) != 0 {
		t.Errorf("got %v, %v, want no intersections for concentric circles", xs, err)
	}
	if _, err := InterCC(c, c); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got %v, want ErrDegenerate", err)
	}
	if _, err := RadicalAxis(c, Circle{Pt(0, 0), 1}); !errors.Is(err, ErrDegenerate) {
		t.Errorf("got %v, want ErrDegenerate", err)
	}
}

func TestRadicalAxis(t *testing.T) {
	c := Circle{Pt(-1, 2), 3}
	d := Circle{Pt(4, 1), 2}
	ax := mustLine(RadicalAxis(c, d))
	p := Projection(Pt(0, 0), ax)
	diff(t, c.Power(p), d.Power(p), cmpopts.EquateApprox(0, 1e-9))
}

func TestInter(t *testing.T) {
	l := Line{1, -1, 0}
	k := Line{1, 1, -2}
	c := Circle{Pt(0, 0), 2}

	xs := mustInter(t, l, k)
	diff(t, []Point{Pt(1, 1)}, xs, pointComparer)

	if _, err := Inter(l, Line{2, -2, 1}); !errors.Is(err, ErrParallel) {
		t.Errorf("got %v, want ErrParallel", err)
	}

	p, err := InterOther(k, c, Pt(2, 0))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(0, 2), p, pointComparer)

	p, err = InterOther(c, k, Pt(0, 2))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(2, 0), p, pointComparer)

	p, err = InterOther(l, k, Pt(100, 100))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(1, 1), p, pointComparer)
}

func mustInter(t *testing.T, x, y Curve) []Point {
	t.Helper()
	xs, err := Inter(x, y)
	if err != nil {
		t.Fatal(err)
	}
	return xs
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
