package euclid

import (
	"fmt"
	"math"
)

// Circle is the set of points at distance Radius from Center.
//
// Radius is the true, non-squared radius and is never negative. A radius of
// zero describes a circle collapsed onto its center.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle returns the circle with the given center and radius.
func NewCircle(center Point, r float64) (Circle, error) {
	if r < 0 || math.IsNaN(r) {
		return Circle{}, fail(ErrDegenerate, "NewCircle", "invalid radius %g", r)
	}
	return Circle{center, r}, nil
}

// CircleThrough returns the circle with the given center that passes through p.
func CircleThrough(center, p Point) Circle {
	return Circle{center, center.Distance(p)}
}

// CircleFromPoints returns the circle through three points. It fails with
// [ErrDegenerate] if the points are collinear or two of them overlap.
func CircleFromPoints(a, b, c Point) (Circle, error) {
	if IsCollinear(a, b, c) {
		return Circle{}, fail(ErrDegenerate, "CircleFromPoints", "%s, %s and %s are collinear", a, b, c)
	}
	o, err := InterLL(perpBisect(a, b), perpBisect(b, c))
	if err != nil {
		return Circle{}, err
	}
	return CircleThrough(o, b), nil
}

func (c Circle) String() string {
	return fmt.Sprintf("⊙(%s, %g)", c.Center, c.Radius)
}

// Overlaps reports whether c and o have overlapping centers and equal radii.
func (c Circle) Overlaps(o Circle) bool {
	return c.Center.Overlaps(o.Center) && approxEqual(c.Radius, o.Radius)
}

// Power returns the power of p with respect to the circle, |p−O|² − r².
func (c Circle) Power(p Point) float64 {
	return p.DistanceSquared(c.Center) - c.Radius*c.Radius
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}
