// Package triangle computes the classical centers of a triangle.
//
// All functions work on the three vertices directly. A triangle whose
// vertices are collinear has no well-defined centers; functions that
// would divide by zero on such input return an error wrapping
// [euclid.ErrDegenerate] or [euclid.ErrParallel].
package triangle

import (
	"fmt"

	"github.com/pkg/errors"

	"honnef.co/go/euclid"
)

// Triangle is a triangle with vertices A, B and C, in that order. The side
// opposite a vertex shares its index: side 0 is BC, side 1 is CA and side 2
// is AB.
type Triangle [3]euclid.Point

// New returns the triangle abc. Collinear vertices fail with
// [euclid.ErrDegenerate].
func New(a, b, c euclid.Point) (Triangle, error) {
	if euclid.IsCollinear(a, b, c) {
		return Triangle{}, fail(euclid.ErrDegenerate, "New", "%s, %s and %s are collinear", a, b, c)
	}
	return Triangle{a, b, c}, nil
}

func (t Triangle) String() string {
	return fmt.Sprintf("△(%s, %s, %s)", t[0], t[1], t[2])
}

// SideLengths returns the lengths of BC, CA and AB.
func (t Triangle) SideLengths() [3]float64 {
	a, b, c := t[0], t[1], t[2]
	return [3]float64{b.Distance(c), c.Distance(a), a.Distance(b)}
}

func (t Triangle) sidesSquared() [3]float64 {
	a, b, c := t[0], t[1], t[2]
	return [3]float64{b.DistanceSquared(c), c.DistanceSquared(a), a.DistanceSquared(b)}
}

// Side returns the line through the side opposite vertex i.
func (t Triangle) Side(i int) (euclid.Line, error) {
	return euclid.LineFromPoints(t[(i+1)%3], t[(i+2)%3])
}

func fail(kind error, op string, format string, args ...any) error {
	err := errors.Wrap(kind, "triangle."+op+": "+fmt.Sprintf(format, args...))
	euclid.Logger().Debug("triangle: operation failed", "op", op, "err", err)
	return err
}
