package euclid

import (
	"math"

	"github.com/golang/geo/s1"
)

// OnCircle returns the point of c at angle th, measured counter-clockwise from
// the direction of the positive x axis.
func OnCircle(c Circle, th s1.Angle) Point {
	sin, cos := math.Sincos(th.Radians())
	return c.Center.Translate(Vec(cos, sin).Mul(c.Radius))
}

// OnSegment returns the point r·b + (1−r)·a. r = 0 gives a, r = 1 gives b, and
// values outside [0, 1] extend the segment beyond its ends.
func OnSegment(a, b Point, r float64) Point {
	return Point{
		r*b.X + (1-r)*a.X,
		r*b.Y + (1-r)*a.Y,
	}
}
