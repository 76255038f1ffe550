package euclid

import "math"

// DistanceSq returns the squared distance between two points, between a point
// and a line (in either order), or between two parallel lines. Lines that are
// not parallel fail with [ErrNotParallel]; circles are not supported.
func DistanceSq(x, y Object) (float64, error) {
	switch x := x.(type) {
	case Point:
		switch y := y.(type) {
		case Point:
			return x.DistanceSquared(y), nil
		case Line:
			return y.DistanceSquaredTo(x), nil
		}
	case Line:
		switch y := y.(type) {
		case Point:
			return x.DistanceSquaredTo(y), nil
		case Line:
			return lineDistanceSq(x, y)
		}
	}
	return 0, fail(ErrUnsupported, "DistanceSq", "%T and %T", x, y)
}

// Distance is the square root of [DistanceSq].
func Distance(x, y Object) (float64, error) {
	d, err := DistanceSq(x, y)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(d), nil
}

func lineDistanceSq(l, k Line) (float64, error) {
	if !IsParallel(l, k) {
		return 0, fail(ErrNotParallel, "DistanceSq", "%s and %s", l, k)
	}
	// Bring k to l's scale so that the offsets are comparable.
	var f float64
	if math.Abs(k.A) > math.Abs(k.B) {
		f = l.A / k.A
	} else {
		f = l.B / k.B
	}
	z := l.C - f*k.C
	return z * z / (l.A*l.A + l.B*l.B), nil
}
