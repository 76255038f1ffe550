package triangle

import (
	"honnef.co/go/euclid"
)

// Circumcenter returns the center of the circle through the three vertices.
func (t Triangle) Circumcenter() (euclid.Point, error) {
	a, b, c := t[0], t[1], t[2]
	l, err := euclid.PerpBisect(a, b)
	if err != nil {
		return euclid.Point{}, err
	}
	k, err := euclid.PerpBisect(b, c)
	if err != nil {
		return euclid.Point{}, err
	}
	return euclid.InterLL(l, k)
}

// Circumcircle returns the circle through the three vertices.
func (t Triangle) Circumcircle() (euclid.Circle, error) {
	o, err := t.Circumcenter()
	if err != nil {
		return euclid.Circle{}, err
	}
	return euclid.CircleThrough(o, t[0]), nil
}

// Incenter returns the center of the inscribed circle, where the internal
// angle bisectors meet.
func (t Triangle) Incenter() (euclid.Point, error) {
	a, b, c := t[0], t[1], t[2]
	l, err := euclid.AngleBisectAt(a, b, c)
	if err != nil {
		return euclid.Point{}, err
	}
	k, err := euclid.AngleBisectAt(b, c, a)
	if err != nil {
		return euclid.Point{}, err
	}
	return euclid.InterLL(l[0], k[0])
}

// Incircle returns the inscribed circle.
func (t Triangle) Incircle() (euclid.Circle, error) {
	i, err := t.Incenter()
	if err != nil {
		return euclid.Circle{}, err
	}
	side, err := t.Side(0)
	if err != nil {
		return euclid.Circle{}, err
	}
	return euclid.CircleThrough(i, euclid.Projection(i, side)), nil
}

// Excenter returns the center of the excircle inside the angle BAC, which
// touches the side BC. It lies on the internal bisector at A and the external
// bisector at B.
func (t Triangle) Excenter() (euclid.Point, error) {
	a, b, c := t[0], t[1], t[2]
	l, err := euclid.AngleBisectAt(b, a, c)
	if err != nil {
		return euclid.Point{}, err
	}
	k, err := euclid.AngleBisectAt(a, b, c)
	if err != nil {
		return euclid.Point{}, err
	}
	return euclid.InterLL(l[0], k[1])
}

// Orthocenter returns the intersection of the altitudes.
func (t Triangle) Orthocenter() (euclid.Point, error) {
	a, b, c := t[0], t[1], t[2]
	bc, err := euclid.LineFromPoints(b, c)
	if err != nil {
		return euclid.Point{}, err
	}
	ca, err := euclid.LineFromPoints(c, a)
	if err != nil {
		return euclid.Point{}, err
	}
	return euclid.InterLL(euclid.Perp(a, bc), euclid.Perp(b, ca))
}

// Centroid returns the intersection of the medians.
func (t Triangle) Centroid() euclid.Point {
	// Center only fails without points.
	g, _ := euclid.Center(t[0], t[1], t[2])
	return g
}

// NinePointCenter returns the center of the nine-point circle, the midpoint
// of the orthocenter and the circumcenter.
func (t Triangle) NinePointCenter() (euclid.Point, error) {
	h, err := t.Orthocenter()
	if err != nil {
		return euclid.Point{}, err
	}
	o, err := t.Circumcenter()
	if err != nil {
		return euclid.Point{}, err
	}
	return euclid.Midpoint(h, o), nil
}

// NinePointCircle returns the circle through the midpoints of the sides.
func (t Triangle) NinePointCircle() (euclid.Circle, error) {
	n, err := t.NinePointCenter()
	if err != nil {
		return euclid.Circle{}, err
	}
	return euclid.CircleThrough(n, euclid.Midpoint(t[1], t[2])), nil
}

// Symmedian returns the symmedian point, with barycentric coordinates
// a² : b² : c².
func (t Triangle) Symmedian() (euclid.Point, error) {
	s := t.sidesSquared()
	return t.FromBarycentric(s[0], s[1], s[2])
}

// Gergonne returns the Gergonne point, where the lines from the vertices to
// the opposite touch points of the incircle meet. Its barycentric coordinates
// are (s−a) : (s−b) : (s−c) for the semiperimeter s.
func (t Triangle) Gergonne() (euclid.Point, error) {
	l := t.SideLengths()
	s := (l[0] + l[1] + l[2]) / 2
	return t.FromBarycentric(s-l[0], s-l[1], s-l[2])
}
