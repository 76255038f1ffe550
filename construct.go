package euclid

import (
	"math"

	"github.com/golang/geo/s1"
	"gonum.org/v1/gonum/floats"
)

const (
	// Deg is one degree.
	Deg = s1.Degree
	// Round is a full turn.
	Round = 360 * s1.Degree
)

// Midpoint returns the midpoint of a and b.
func Midpoint(a, b Point) Point {
	return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// Center returns the centroid, the coordinate-wise mean, of one or more points.
func Center(pts ...Point) (Point, error) {
	if len(pts) == 0 {
		return Point{}, fail(ErrDegenerate, "Center", "no points")
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
		ys[i] = p.Y
	}
	n := float64(len(pts))
	return Point{floats.Sum(xs) / n, floats.Sum(ys) / n}, nil
}

// Parallel returns the line through p parallel to l.
func Parallel(p Point, l Line) Line {
	return Line{l.A, l.B, -(l.A*p.X + l.B*p.Y)}
}

// Perp returns the line through p perpendicular to l.
func Perp(p Point, l Line) Line {
	return Line{-l.B, l.A, l.B*p.X - l.A*p.Y}
}

// Projection returns the foot of the perpendicular from p to l.
func Projection(p Point, l Line) Point {
	n := l.A*l.A + l.B*l.B
	return Point{
		(l.B*l.B*p.X - l.A*l.C - l.A*l.B*p.Y) / n,
		(l.A*l.A*p.Y - l.B*l.C - l.A*l.B*p.X) / n,
	}
}

// PerpBisect returns the perpendicular bisector of the segment ab.
func PerpBisect(a, b Point) (Line, error) {
	if a.Overlaps(b) {
		return Line{}, fail(ErrDegenerate, "PerpBisect", "only one distinct point %s", a)
	}
	return perpBisect(a, b), nil
}

func perpBisect(a, b Point) Line {
	return Perp(Midpoint(a, b), lineFromPoints(a, b))
}

// AngleBisect returns the two bisectors of the angles formed by l and k.
//
// With both lines normalized to a unit normal, the first bisector is the sum
// of their coefficients and the second one their difference. The order is
// stable and callers may rely on it: for lines built by [LineFromPoints] from a
// common vertex, the first bisector is the internal one when the vertex is the
// first point of both lines.
//
// Parallel lines have a single bisector, the line midway between them, which
// is returned in both positions.
func AngleBisect(l, k Line) [2]Line {
	l = l.Normalize()
	k = k.Normalize()
	if IsParallel(l, k) {
		if l.Normal().Dot(k.Normal()) < 0 {
			k = Line{-k.A, -k.B, -k.C}
		}
		mid := Line{l.A + k.A, l.B + k.B, l.C + k.C}
		return [2]Line{mid, mid}
	}
	return [2]Line{
		{l.A + k.A, l.B + k.B, l.C + k.C},
		{l.A - k.A, l.B - k.B, l.C - k.C},
	}
}

// AngleBisectAt returns the bisectors of the angle aob, computed by
// [AngleBisect] on the lines oa and ob. a and b must differ from o.
func AngleBisectAt(a, o, b Point) ([2]Line, error) {
	oa, err := LineFromPoints(o, a)
	if err != nil {
		return [2]Line{}, err
	}
	ob, err := LineFromPoints(o, b)
	if err != nil {
		return [2]Line{}, err
	}
	return AngleBisect(oa, ob), nil
}

// Angle returns the non-obtuse angle between two lines, in [0, π/2].
func Angle(l, k Line) s1.Angle {
	a := l.A*l.A + l.B*l.B
	b := k.A*k.A + k.B*k.B
	p := (l.A*k.A + l.B*k.B) / math.Sqrt(a*b)
	// Rounding can push |p| past 1 for parallel lines.
	return s1.Angle(math.Acos(math.Min(math.Abs(p), 1)))
}
