package theorem

import (
	"github.com/golang/geo/s1"
	"github.com/pkg/errors"

	"honnef.co/go/euclid"
	"honnef.co/go/euclid/triangle"
)

var (
	errNoIntersection = errors.New("curves don't meet in two points")
	errNoTangent      = errors.New("expected a single tangent")
	errNotCircle      = errors.New("inversion didn't produce a circle")
)

var scalene = triangle.Triangle{euclid.Pt(1, 3), euclid.Pt(-2.3, 7.2), euclid.Pt(0.5, 8.2)}

// All returns the catalogue, in a fixed order.
func All() []Theorem {
	return []Theorem{
		{"Euler line", eulerLine},
		{"Reim", reim},
		{"Incenter equidistance", incenter},
		{"Symmedian barycentric", symmedian},
		{"Harmonic quadrilateral", harmonic},
		{"Nine-point circle", ninePoint},
		{"Simson line", simson},
		{"Inversion round trip", inversion},
	}
}

// offLine returns the distance of p from the line through a and b.
func offLine(a, b, p euclid.Point) (float64, error) {
	l, err := euclid.LineFromPoints(a, b)
	if err != nil {
		return 0, err
	}
	return euclid.Distance(p, l)
}

// sinBetween returns the sine of the angle between two lines. Unlike the
// angle itself it stays accurate near zero.
func sinBetween(l, k euclid.Line) float64 {
	n, m := l.Normal(), k.Normal()
	return n.Cross(m) / (n.Hypot() * m.Hypot())
}

// offCircle returns the signed distance of p from c.
func offCircle(c euclid.Circle, p euclid.Point) float64 {
	return p.Distance(c.Center) - c.Radius
}

func eulerLine() (Result, error) {
	o, err := scalene.Circumcenter()
	if err != nil {
		return Result{}, err
	}
	h, err := scalene.Orthocenter()
	if err != nil {
		return Result{}, err
	}
	g := scalene.Centroid()
	d, err := offLine(o, h, g)
	if err != nil {
		return Result{}, err
	}
	return residuals(d, h.Distance(g)-2*g.Distance(o)), nil
}

func reim() (Result, error) {
	c1 := euclid.Circle{Center: euclid.Pt(2, 1), Radius: 3}
	c2 := euclid.Circle{Center: euclid.Pt(-3, 0), Radius: 4}
	xs, err := euclid.Inter(c1, c2)
	if err != nil {
		return Result{}, err
	}
	if len(xs) != 2 {
		return Result{}, errNoIntersection
	}
	a, b := xs[0], xs[1]
	c := euclid.OnCircle(c1, 120*euclid.Deg)
	d := euclid.OnCircle(c1, 180*euclid.Deg)
	ca, err := euclid.LineFromPoints(c, a)
	if err != nil {
		return Result{}, err
	}
	db, err := euclid.LineFromPoints(d, b)
	if err != nil {
		return Result{}, err
	}
	e, err := euclid.InterOther(ca, c2, a)
	if err != nil {
		return Result{}, err
	}
	f, err := euclid.InterOther(db, c2, b)
	if err != nil {
		return Result{}, err
	}
	ef, err := euclid.LineFromPoints(e, f)
	if err != nil {
		return Result{}, err
	}
	cd, err := euclid.LineFromPoints(c, d)
	if err != nil {
		return Result{}, err
	}
	return residuals(sinBetween(ef, cd)), nil
}

func incenter() (Result, error) {
	i, err := scalene.Incenter()
	if err != nil {
		return Result{}, err
	}
	var ds [3]float64
	for k := range ds {
		side, err := scalene.Side(k)
		if err != nil {
			return Result{}, err
		}
		if ds[k], err = euclid.Distance(i, side); err != nil {
			return Result{}, err
		}
	}
	return residuals(ds[0]-ds[1], ds[1]-ds[2]), nil
}

func symmedian() (Result, error) {
	l := scalene.SideLengths()
	k, err := scalene.Symmedian()
	if err != nil {
		return Result{}, err
	}
	k0, err := scalene.FromBarycentric(l[0]*l[0], l[1]*l[1], l[2]*l[2])
	if err != nil {
		return Result{}, err
	}
	g := scalene.Centroid()
	k1, err := scalene.IsogonalConjugate(g)
	if err != nil {
		return Result{}, err
	}
	return residuals(k.Distance(k0), k.Distance(k1)), nil
}

// harmonic checks that ABCD is harmonic when BD passes through the pole of AC.
func harmonic() (Result, error) {
	c := euclid.Circle{Center: euclid.Pt(0, 0), Radius: 1}
	a := euclid.OnCircle(c, 0)
	b := euclid.OnCircle(c, 62*euclid.Deg)
	cc := euclid.OnCircle(c, 118*euclid.Deg)
	ta, err := euclid.Tangent(a, c)
	if err != nil {
		return Result{}, err
	}
	tc, err := euclid.Tangent(cc, c)
	if err != nil {
		return Result{}, err
	}
	if len(ta) != 1 || len(tc) != 1 {
		return Result{}, errNoTangent
	}
	t, err := euclid.InterLL(ta[0], tc[0])
	if err != nil {
		return Result{}, err
	}
	tb, err := euclid.LineFromPoints(t, b)
	if err != nil {
		return Result{}, err
	}
	d, err := euclid.InterOther(tb, c, b)
	if err != nil {
		return Result{}, err
	}
	x := a.Distance(b) * cc.Distance(d)
	y := b.Distance(cc) * d.Distance(a)
	return residuals(x - y), nil
}

func ninePoint() (Result, error) {
	n, err := scalene.NinePointCircle()
	if err != nil {
		return Result{}, err
	}
	h, err := scalene.Orthocenter()
	if err != nil {
		return Result{}, err
	}
	var rs []float64
	for i, v := range scalene {
		side, err := scalene.Side(i)
		if err != nil {
			return Result{}, err
		}
		rs = append(rs,
			offCircle(n, euclid.Midpoint(scalene[(i+1)%3], scalene[(i+2)%3])),
			offCircle(n, euclid.Projection(v, side)),
			offCircle(n, euclid.Midpoint(v, h)),
		)
	}
	return residuals(rs...), nil
}

func simson() (Result, error) {
	o, err := scalene.Circumcircle()
	if err != nil {
		return Result{}, err
	}
	p := euclid.OnCircle(o, 200*euclid.Deg)
	var feet [3]euclid.Point
	for i := range feet {
		side, err := scalene.Side(i)
		if err != nil {
			return Result{}, err
		}
		feet[i] = euclid.Projection(p, side)
	}
	d, err := offLine(feet[0], feet[1], feet[2])
	if err != nil {
		return Result{}, err
	}
	return residuals(d), nil
}

// inversion maps a circle to a circle and back, checking that points on it
// stay on its image.
func inversion() (Result, error) {
	o := euclid.Pt(0.5, -1.25)
	const power = 3
	c := euclid.Circle{Center: euclid.Pt(2, 2), Radius: 1.5}
	img, err := euclid.Invert(c, o, power)
	if err != nil {
		return Result{}, err
	}
	ic, ok := img.(euclid.Circle)
	if !ok {
		return Result{}, errNotCircle
	}
	var rs []float64
	for _, th := range []s1.Angle{0, 75 * euclid.Deg, 190 * euclid.Deg, 300 * euclid.Deg} {
		p := euclid.OnCircle(c, th)
		q, err := euclid.Invert(p, o, power)
		if err != nil {
			return Result{}, err
		}
		qp := q.(euclid.Point)
		rs = append(rs, offCircle(ic, qp))
		back, err := euclid.Invert(qp, o, power)
		if err != nil {
			return Result{}, err
		}
		rs = append(rs, back.(euclid.Point).Distance(p))
	}
	back, err := euclid.Invert(ic, o, power)
	if err != nil {
		return Result{}, err
	}
	bc, ok := back.(euclid.Circle)
	if !ok {
		return Result{}, errNotCircle
	}
	rs = append(rs, bc.Center.Distance(c.Center), bc.Radius-c.Radius)
	return residuals(rs...), nil
}
