package euclid

import (
	"errors"
	"math"
	"testing"
)

func TestTangentPolarLine(t *testing.T) {
	c := Circle{Pt(0, 0), 1}
	a := Pt(math.Sqrt2, 0)
	b := Pt(1, 0)
	l := Line{1, 0, -math.Sqrt2 / 2}
	k := mustLine(LineThrough(1, 0, b))
	s := mustLine(LineThrough(1, 1, a))
	u := mustLine(LineThrough(1, -1, a))

	l0, err := PolarLine(a, c)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, l, l0, lineComparer)

	ts, err := Tangent(a, c)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Line{s, u}, ts, lineComparer)

	ts, err = Tangent(b, c)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Line{k}, ts, lineComparer)

	ts, err = Tangent(Pt(0.5, 0), c)
	if err != nil || len(ts) != 0 {
		t.Errorf("got %v, %v, want no tangents from inside the circle", ts, err)
	}

	if _, err := PolarLine(c.Center, c); !errors.Is(err, ErrInversionCenter) {
		t.Errorf("got %v, want ErrInversionCenter", err)
	}
}

func TestTangentTouchesCircle(t *testing.T) {
	c := Circle{Pt(2, -1), 3}
	p := Pt(-5, 4)
	ts, err := Tangent(p, c)
	if err != nil {
		t.Fatal(err)
	}
	if len(ts) != 2 {
		t.Fatalf("got %d tangents, want 2", len(ts))
	}
	for _, l := range ts {
		d, err := Distance(c.Center, l)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(d-c.Radius) > 1e-9 {
			t.Errorf("%s is at distance %g from the center, want %g", l, d, c.Radius)
		}
		if !IsThrough(l, p) {
			t.Errorf("%s should pass through %s", l, p)
		}
	}
}
