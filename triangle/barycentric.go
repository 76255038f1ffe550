package triangle

import (
	"gonum.org/v1/gonum/floats"

	"honnef.co/go/euclid"
)

// FromBarycentric returns the point with barycentric coordinates x : y : z,
// the ratios of the signed areas of PBC, PCA and PAB. Coordinates summing to
// zero describe a point at infinity and fail with [euclid.ErrDegenerate].
func (t Triangle) FromBarycentric(x, y, z float64) (euclid.Point, error) {
	s := x + y + z
	if s == 0 {
		return euclid.Point{}, fail(euclid.ErrDegenerate, "FromBarycentric", "%g : %g : %g is at infinity", x, y, z)
	}
	a, b, c := t[0], t[1], t[2]
	return euclid.Pt(
		floats.Dot([]float64{x, y, z}, []float64{a.X, b.X, c.X})/s,
		floats.Dot([]float64{x, y, z}, []float64{a.Y, b.Y, c.Y})/s,
	), nil
}

// IsogonalConjugate returns the isogonal conjugate of p, the point where the
// reflections of the lines AP, BP and CP in the respective angle bisectors
// meet.
func (t Triangle) IsogonalConjugate(p euclid.Point) (euclid.Point, error) {
	a, b, c := t[0], t[1], t[2]
	lb, err := euclid.AngleBisectAt(a, b, c)
	if err != nil {
		return euclid.Point{}, err
	}
	lc, err := euclid.AngleBisectAt(b, c, a)
	if err != nil {
		return euclid.Point{}, err
	}
	pb := euclid.Reflect(p, lb[0])
	pc := euclid.Reflect(p, lc[0])
	l, err := euclid.LineFromPoints(b, pb)
	if err != nil {
		return euclid.Point{}, err
	}
	k, err := euclid.LineFromPoints(c, pc)
	if err != nil {
		return euclid.Point{}, err
	}
	return euclid.InterLL(l, k)
}
