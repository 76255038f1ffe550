package euclid

import (
	"fmt"
	"math"
)

// Line is the infinite line A·x + B·y + C = 0.
//
// The coefficients are not normalized: every non-zero multiple of (A, B, C)
// describes the same line. Compare lines with [Line.Overlaps], never with ==.
// A line's normal (A, B) must not be the zero vector; the constructors enforce
// this, composite literals do not.
type Line struct {
	A, B, C float64
}

// NewLine returns the line a·x + b·y + c = 0.
func NewLine(a, b, c float64) (Line, error) {
	if a == 0 && b == 0 {
		return Line{}, fail(ErrDegenerate, "NewLine", "zero normal in %g·x + %g·y + %g = 0", a, b, c)
	}
	return Line{a, b, c}, nil
}

// LineThrough returns the line with normal (a, b) that passes through p.
func LineThrough(a, b float64, p Point) (Line, error) {
	if a == 0 && b == 0 {
		return Line{}, fail(ErrDegenerate, "LineThrough", "zero normal through %s", p)
	}
	return lineThrough(a, b, p), nil
}

func lineThrough(a, b float64, p Point) Line {
	return Line{a, b, -a*p.X - b*p.Y}
}

// LineFromPoints returns the line through p and q. The points must not
// overlap.
func LineFromPoints(p, q Point) (Line, error) {
	if p.Overlaps(q) {
		return Line{}, fail(ErrDegenerate, "LineFromPoints", "only one distinct point %s", p)
	}
	return lineFromPoints(p, q), nil
}

func lineFromPoints(p, q Point) Line {
	return Line{
		A: p.Y - q.Y,
		B: q.X - p.X,
		C: p.Y*(p.X-q.X) - p.X*(p.Y-q.Y),
	}
}

func (l Line) String() string {
	return fmt.Sprintf("[%g·x + %g·y + %g = 0]", l.A, l.B, l.C)
}

// Normal returns the line's normal vector (A, B).
func (l Line) Normal() Vec2 {
	return Vec2{l.A, l.B}
}

// Direction returns a vector along the line.
func (l Line) Direction() Vec2 {
	return Vec2{-l.B, l.A}
}

// Eval returns A·x + B·y + C at p. It is zero exactly on the line and its sign
// tells the two half-planes apart.
func (l Line) Eval(p Point) float64 {
	return l.A*p.X + l.B*p.Y + l.C
}

// Normalize returns the same line scaled so that its normal has unit length.
func (l Line) Normalize() Line {
	m := math.Hypot(l.A, l.B)
	return Line{l.A / m, l.B / m, l.C / m}
}

// Overlaps reports whether l and o describe the same line, that is whether
// their coefficients are proportional.
func (l Line) Overlaps(o Line) bool {
	// The (A, C) test matters when B is zero and (B, C) holds trivially.
	return proportional(l.A, l.B, o.A, o.B) &&
		proportional(l.B, l.C, o.B, o.C) &&
		proportional(l.A, l.C, o.A, o.C)
}

// DistanceSquaredTo returns the squared distance from p to the line.
func (l Line) DistanceSquaredTo(p Point) float64 {
	z := l.Eval(p)
	return z * z / (l.A*l.A + l.B*l.B)
}

// ParallelThrough returns the line through p parallel to l. It is the same as
// Parallel(p, l).
func (l Line) ParallelThrough(p Point) Line {
	return Parallel(p, l)
}

// PerpThrough returns the line through p perpendicular to l. It is the same as
// Perp(p, l).
func (l Line) PerpThrough(p Point) Line {
	return Perp(p, l)
}

// Transform maps the line through an invertible affine transformation.
//
// The normal is carried by the inverse transpose of the linear part.
func (l Line) Transform(aff Affine) Line {
	inv := aff.Invert()
	a := inv.N0*l.A + inv.N1*l.B
	b := inv.N2*l.A + inv.N3*l.B
	c := inv.N4*l.A + inv.N5*l.B + l.C
	return Line{a, b, c}
}

func (l Line) IsInf() bool {
	return math.IsInf(l.A, 0) || math.IsInf(l.B, 0) || math.IsInf(l.C, 0)
}

func (l Line) IsNaN() bool {
	return math.IsNaN(l.A) || math.IsNaN(l.B) || math.IsNaN(l.C)
}
