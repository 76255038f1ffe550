package euclid

// PolarLine returns the polar of p with respect to c, the line of points X
// with (X−O)·(p−O) = r² for the circle's center O and radius r. When p lies
// on c, its polar is the tangent at p.
//
// The center has no polar and fails with [ErrInversionCenter].
func PolarLine(p Point, c Circle) (Line, error) {
	if p.Overlaps(c.Center) {
		return Line{}, fail(ErrInversionCenter, "PolarLine", "%s is the center of %s", p, c)
	}
	n := p.Sub(c.Center)
	return Line{n.X, n.Y, -n.Dot(Vec2(c.Center)) - c.Radius*c.Radius}, nil
}

// Tangent returns the tangents from p to c. A point on the circle has one
// tangent, a point outside it two, and a point inside none.
//
// The two tangents are ordered like the points of contact returned by
// [InterLC] for the polar of p.
func Tangent(p Point, c Circle) ([]Line, error) {
	polar, err := PolarLine(p, c)
	if err != nil {
		return nil, err
	}
	if IsThrough(c, p) {
		return []Line{polar}, nil
	}
	if c.Power(p) < 0 {
		return nil, nil
	}
	pts := InterLC(polar, c)
	out := make([]Line, 0, len(pts))
	for _, q := range pts {
		out = append(out, lineFromPoints(p, q))
	}
	return out, nil
}
