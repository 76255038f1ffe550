// Package euclid provides analytic geometry in the Euclidean plane: points,
// lines and circles, and the classical constructions built from them. It is
// meant for expressing synthetic geometry problems, such as those found in
// mathematical olympiads, in coordinates, and for checking their claims
// numerically.
//
// # Objects
//
// The three objects of this package are [Point], [Line] and [Circle]. All of
// them are small immutable values; every operation returns a new value.
//
// A [Line] is stored as the coefficients (A, B, C) of A·x + B·y + C = 0. The
// coefficients are not normalized, so the same line has many representations
// and lines must be compared with [Line.Overlaps] or [IsOverlap]. A [Circle]
// is stored as its center and its true (not squared) radius.
//
// Lines and circles are created by named constructors, one per way of
// describing them: [NewLine], [LineThrough] and [LineFromPoints] for lines,
// [NewCircle], [CircleThrough] and [CircleFromPoints] for circles.
//
// [Object] is the closed union of the three kinds. Operations that make sense
// for several kinds, such as [ReflectIn], [Invert], [Rotate], [Scale] and
// [IsOverlap], accept an Object and dispatch on its dynamic type.
//
// # Tolerance
//
// All values are floating-point approximations. Every comparison in this
// package treats two quantities as equal if they differ by at most [Epsilon]
// (10⁻¹⁰). Lines are compared by cross-multiplying their coefficients rather
// than by subtracting them, which makes the comparison independent of scale.
//
// # Errors
//
// Operations either return a result or fail with an error wrapping one of
// [ErrDegenerate], [ErrParallel], [ErrNotParallel], [ErrInversionCenter] and
// [ErrUnsupported]. A line missing a circle is not an error: [InterLC] and
// [InterCC] return an empty slice. No operation returns NaN coordinates
// instead of failing.
//
// # Intersections with a known point
//
// When one intersection of a line or circle with a circle is already known,
// for example because the line was drawn through it, [InterLCOther],
// [InterCCOther] and [InterOther] return the other one. They use the sum of
// the roots of the underlying quadratic instead of solving it, which is both
// cheaper and more accurate when the two intersections are close.
//
// # Concurrency
//
// All functions are pure and safe for concurrent use. The only package state is
// the logger installed by [SetLogger].
package euclid
