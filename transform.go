package euclid

import (
	"math"

	"github.com/golang/geo/s1"
)

// Reflect reflects x across a point or a line. Reflection across a mirror is
// an isometry, so the result is of the same kind as x.
//
// x and m must not be nil interfaces; use [ReflectIn] for values of unknown
// provenance.
func Reflect[T Object](x T, m Mirror) T {
	var res Object
	switch m := m.(type) {
	case Point:
		res = reflectInPoint(x, m)
	case Line:
		res = reflectInLine(x, m)
	default:
		panic("unreachable")
	}
	return res.(T)
}

// ReflectIn reflects x in y.
//
// When y is a point or a line this is the reflection computed by [Reflect].
// When y is a circle it is not a reflection in the metric sense but the
// inversion in that circle, computed by [Invert] with the circle's center and
// its squared radius as the power. An inverted line or circle may change kind.
func ReflectIn(x, y Object) (Object, error) {
	if x == nil {
		return nil, fail(ErrUnsupported, "ReflectIn", "%T in %T", x, y)
	}
	switch y := y.(type) {
	case Point:
		return Reflect(x, y), nil
	case Line:
		return Reflect(x, y), nil
	case Circle:
		return Invert(x, y.Center, y.Radius*y.Radius)
	}
	return nil, fail(ErrUnsupported, "ReflectIn", "%T in %T", x, y)
}

func reflectInPoint(x Object, y Point) Object {
	switch x := x.(type) {
	case Point:
		return Point{2*y.X - x.X, 2*y.Y - x.Y}
	case Line:
		return Line{x.A, x.B, -x.C - 2*(x.A*y.X+x.B*y.Y)}
	case Circle:
		return Circle{reflectInPoint(x.Center, y).(Point), x.Radius}
	default:
		panic("unreachable")
	}
}

func reflectInLine(x Object, y Line) Object {
	switch x := x.(type) {
	case Point:
		m := y.B*y.B + y.A*y.A
		n := y.B*y.B - y.A*y.A
		return Point{
			(x.X*n - 2*y.A*(y.B*x.Y+y.C)) / m,
			(-x.Y*n - 2*y.B*(y.A*x.X+y.C)) / m,
		}
	case Line:
		if IsParallel(x, y) {
			// Mirror the offset after bringing y to x's scale.
			var f float64
			if math.Abs(y.A) > math.Abs(y.B) {
				f = x.A / y.A
			} else {
				f = x.B / y.B
			}
			return Line{x.A, x.B, 2*f*y.C - x.C}
		}
		// Reflect x's normal in y's normal.
		a0 := y.A*y.A*x.A + 2*y.A*y.B*x.B - y.B*y.B*x.A
		b0 := 2*y.A*y.B*x.A + (y.B*y.B-y.A*y.A)*x.B
		p, err := InterLL(x, y)
		if err != nil {
			panic(err)
		}
		return lineThrough(a0, b0, p)
	case Circle:
		return Circle{reflectInLine(x.Center, y).(Point), x.Radius}
	default:
		panic("unreachable")
	}
}

// Invert applies the inversion with center o and power p to x: every point X
// other than o maps to the point on ray oX at distance p / |oX| from o. A
// negative power additionally reflects through o.
//
// Lines through o map to themselves, other lines to circles through o. Circles
// through o map to lines, other circles to circles. Inverting o itself fails
// with [ErrInversionCenter], and a zero power with [ErrDegenerate].
func Invert(x Object, o Point, p float64) (Object, error) {
	if p == 0 {
		return nil, fail(ErrDegenerate, "Invert", "zero power")
	}
	switch x := x.(type) {
	case Point:
		return invertPoint(x, o, p)
	case Line:
		if IsThrough(x, o) {
			return x, nil
		}
		// The foot of the perpendicular from o maps to the point of the image
		// circle diametrically opposite o.
		foot, err := invertPoint(Projection(o, x), o, p)
		if err != nil {
			return nil, err
		}
		return CircleThrough(Midpoint(foot, o), o), nil
	case Circle:
		if IsThrough(x, o) {
			// The point diametrically opposite o maps to the foot of the
			// perpendicular from o onto the image line. Halving the inverse of
			// the center finds it.
			c, err := invertPoint(x.Center, o, p)
			if err != nil {
				return nil, err
			}
			foot := Midpoint(c, o)
			return lineThrough(foot.X-o.X, foot.Y-o.Y, foot), nil
		}
		if x.Center.Overlaps(o) {
			return Circle{x.Center, math.Abs(p) / x.Radius}, nil
		}
		// The line through o and the center meets the circle at the ends of a
		// diameter, whose images are the ends of a diameter of the image.
		u := x.Center.Sub(o)
		u = u.Mul(x.Radius / u.Hypot())
		a, err := invertPoint(x.Center.Translate(u), o, p)
		if err != nil {
			return nil, err
		}
		b, err := invertPoint(x.Center.Translate(u.Negate()), o, p)
		if err != nil {
			return nil, err
		}
		return CircleThrough(Midpoint(a, b), a), nil
	}
	return nil, fail(ErrUnsupported, "Invert", "%T", x)
}

func invertPoint(x, o Point, p float64) (Point, error) {
	if x.Overlaps(o) {
		return Point{}, fail(ErrInversionCenter, "Invert", "%s is the center", x)
	}
	d := x.Sub(o)
	return o.Translate(d.Mul(p / d.Hypot2())), nil
}

// Rotate rotates x counter-clockwise by th about o.
func Rotate[T Object](x T, o Point, th s1.Angle) T {
	var res Object
	switch x := any(x).(type) {
	case Point:
		res = x.Transform(RotateAbout(th, o))
	case Circle:
		res = Circle{x.Center.Transform(RotateAbout(th, o)), x.Radius}
	case Line:
		res = x.Transform(RotateAbout(th, o))
	default:
		panic("unreachable")
	}
	return res.(T)
}

// Scale applies the homothety with center o and ratio r to x. With r = 0 a
// line becomes its parallel through o.
//
// A negative ratio reverses orientation; r = −1 is the reflection through o.
// The radius of a scaled circle is multiplied by |r| and so stays
// non-negative.
func Scale[T Object](x T, o Point, r float64) T {
	var res Object
	switch x := any(x).(type) {
	case Point:
		res = x.Transform(Homothety(o, r))
	case Circle:
		res = Circle{x.Center.Transform(Homothety(o, r)), math.Abs(r) * x.Radius}
	case Line:
		if r == 0 {
			// Everything collapses onto o.
			res = Parallel(o, x)
		} else {
			res = x.Transform(Homothety(o, r))
		}
	default:
		panic("unreachable")
	}
	return res.(T)
}
