package euclid

// IsParallel reports whether two lines are parallel. A line is parallel to
// itself.
func IsParallel(l, k Line) bool {
	return proportional(l.A, l.B, k.A, k.B)
}

// IsCollinear reports whether three points lie on one line.
func IsCollinear(a, b, c Point) bool {
	return proportional(a.X-b.X, a.Y-b.Y, a.X-c.X, a.Y-c.Y)
}

// IsThrough reports whether p lies on the line or circle x, which must not be
// nil.
func IsThrough(x Curve, p Point) bool {
	switch x := x.(type) {
	case Line:
		return approxEqual(x.Eval(p), 0)
	case Circle:
		return approxEqual(p.DistanceSquared(x.Center), x.Radius*x.Radius)
	default:
		panic("unreachable")
	}
}

// IsOverlap reports whether x and y are the same object up to [Epsilon]. Both
// must be of the same kind; comparing a point with a line, for example,
// returns [ErrUnsupported].
//
// Points overlap when their coordinates match. Lines overlap when their
// coefficients are proportional. Circles overlap when their centers overlap and
// their radii match.
func IsOverlap(x, y Object) (bool, error) {
	switch x := x.(type) {
	case Point:
		if y, ok := y.(Point); ok {
			return x.Overlaps(y), nil
		}
	case Line:
		if y, ok := y.(Line); ok {
			return x.Overlaps(y), nil
		}
	case Circle:
		if y, ok := y.(Circle); ok {
			return x.Overlaps(y), nil
		}
	}
	return false, fail(ErrUnsupported, "IsOverlap", "%T and %T", x, y)
}
