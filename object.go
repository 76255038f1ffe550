package euclid

import "fmt"

// Object is one of [Point], [Line] or [Circle]. The set is closed: no other
// type can implement it.
//
// Functions that accept an Object dispatch on its dynamic type and return
// [ErrUnsupported] for combinations they have no case for.
type Object interface {
	fmt.Stringer
	object()
}

// Curve is an Object that points can lie on, that is a [Line] or a [Circle].
type Curve interface {
	Object
	curve()
}

// Mirror is an Object that reflection is an isometry across, that is a [Point]
// or a [Line].
type Mirror interface {
	Object
	mirror()
}

func (Point) object()  {}
func (Line) object()   {}
func (Circle) object() {}

func (Line) curve()   {}
func (Circle) curve() {}

func (Point) mirror() {}
func (Line) mirror()  {}

var (
	_ Mirror = Point{}
	_ Mirror = Line{}
	_ Curve  = Line{}
	_ Curve  = Circle{}
)
