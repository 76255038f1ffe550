package euclid

import "math"

// InterLL returns the intersection of two lines. Parallel lines, including
// overlapping ones, fail with [ErrParallel].
//
// The result does not depend on the order of the arguments.
func InterLL(l, k Line) (Point, error) {
	if IsParallel(l, k) {
		return Point{}, fail(ErrParallel, "InterLL", "%s and %s have no intersection", l, k)
	}
	// Cramer's rule.
	a := l.B*k.C - k.B*l.C
	b := l.C*k.A - k.C*l.A
	d := l.A*k.B - k.A*l.B
	return Point{a / d, b / d}, nil
}

// InterLC returns the intersections of a line and a circle.
//
// The result has no elements when the line misses the circle, and otherwise
// two, ordered by the sign of the square root of the discriminant (+√D first).
// A tangent line produces the point of tangency twice.
func InterLC(l Line, c Circle) []Point {
	o := c.Center
	r := c.Radius
	if l.A != 0 {
		// Substitute x = −(B·y + C) / A and solve for y.
		ya := l.A*l.A + l.B*l.B
		yb := 2 * ((l.A*o.X+l.C)*l.B - l.A*l.A*o.Y)
		yc := l.A*l.A*(o.Y*o.Y-r*r) + (l.A*o.X+l.C)*(l.A*o.X+l.C)
		d := yb*yb - 4*ya*yc
		if d < 0 {
			return nil
		}
		d = math.Sqrt(d)
		y1 := (-yb + d) / ya / 2
		y2 := (-yb - d) / ya / 2
		return []Point{
			{-(l.B*y1 + l.C) / l.A, y1},
			{-(l.B*y2 + l.C) / l.A, y2},
		}
	}
	// Horizontal line, y = −C / B. Solve for x.
	xa := l.B * l.B
	xb := -2 * l.B * l.B * o.X
	xc := l.B*l.B*(o.X*o.X-r*r) + (l.B*o.Y+l.C)*(l.B*o.Y+l.C)
	d := xb*xb - 4*xa*xc
	if d < 0 {
		return nil
	}
	d = math.Sqrt(d)
	y := -l.C / l.B
	return []Point{
		{(-xb + d) / xa / 2, y},
		{(-xb - d) / xa / 2, y},
	}
}

// InterLCOther returns the second intersection of a line and a circle, given
// a point common to both.
//
// The known root is subtracted from the sum of roots instead of solving the
// quadratic, which stays accurate when the two intersections are close. If
// common lies on the line and the circle, so does the result.
func InterLCOther(l Line, c Circle, common Point) Point {
	o := c.Center
	if l.A != 0 {
		ya := l.A*l.A + l.B*l.B
		yb := 2 * ((l.A*o.X+l.C)*l.B - l.A*l.A*o.Y)
		y := -yb/ya - common.Y
		return Point{-(l.B*y + l.C) / l.A, y}
	}
	xa := l.B * l.B
	xb := -2 * l.B * l.B * o.X
	return Point{-xb/xa - common.X, -l.C / l.B}
}

// RadicalAxis returns the radical axis of two circles, the line of points with
// equal power with respect to both. Concentric circles have no radical axis
// and fail with [ErrDegenerate].
func RadicalAxis(c, d Circle) (Line, error) {
	if c.Center.Overlaps(d.Center) {
		return Line{}, fail(ErrDegenerate, "RadicalAxis", "%s and %s are concentric", c, d)
	}
	return radicalAxis(c, d), nil
}

func radicalAxis(c, d Circle) Line {
	d1 := -2 * c.Center.X
	e1 := -2 * c.Center.Y
	f1 := c.Center.X*c.Center.X + c.Center.Y*c.Center.Y - c.Radius*c.Radius
	d2 := -2 * d.Center.X
	e2 := -2 * d.Center.Y
	f2 := d.Center.X*d.Center.X + d.Center.Y*d.Center.Y - d.Radius*d.Radius
	return Line{d1 - d2, e1 - e2, f1 - f2}
}

// InterCC returns the intersections of two circles, ordered as [InterLC]
// orders the intersections of their radical axis with c.
//
// Distinct concentric circles do not meet and produce an empty result.
// Overlapping circles have infinitely many common points and fail with
// [ErrDegenerate].
func InterCC(c, d Circle) ([]Point, error) {
	if c.Center.Overlaps(d.Center) {
		if approxEqual(c.Radius, d.Radius) {
			return nil, fail(ErrDegenerate, "InterCC", "%s and %s overlap", c, d)
		}
		return nil, nil
	}
	return InterLC(radicalAxis(c, d), c), nil
}

// InterCCOther returns the second intersection of two circles, given a point
// common to both. See [InterLCOther].
func InterCCOther(c, d Circle, common Point) (Point, error) {
	ax, err := RadicalAxis(c, d)
	if err != nil {
		return Point{}, err
	}
	return InterLCOther(ax, c, common), nil
}

// Inter returns the intersections of two lines or circles, dispatching to
// [InterLL], [InterLC] or [InterCC]. Two lines produce a single point. When a
// circle comes first and a line second, the arguments are swapped before
// calling InterLC, which does not change the order of the result.
func Inter(x, y Curve) ([]Point, error) {
	switch x := x.(type) {
	case Line:
		switch y := y.(type) {
		case Line:
			p, err := InterLL(x, y)
			if err != nil {
				return nil, err
			}
			return []Point{p}, nil
		case Circle:
			return InterLC(x, y), nil
		}
	case Circle:
		switch y := y.(type) {
		case Line:
			return InterLC(y, x), nil
		case Circle:
			return InterCC(x, y)
		}
	}
	return nil, fail(ErrUnsupported, "Inter", "%T and %T", x, y)
}

// InterOther is like [Inter] but, for a line or circle meeting a circle,
// returns the intersection other than common. Two lines ignore common.
func InterOther(x, y Curve, common Point) (Point, error) {
	switch x := x.(type) {
	case Line:
		switch y := y.(type) {
		case Line:
			return InterLL(x, y)
		case Circle:
			return InterLCOther(x, y, common), nil
		}
	case Circle:
		switch y := y.(type) {
		case Line:
			return InterLCOther(y, x, common), nil
		case Circle:
			return InterCCOther(x, y, common)
		}
	}
	return Point{}, fail(ErrUnsupported, "InterOther", "%T and %T", x, y)
}
