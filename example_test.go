package euclid_test

import (
	"errors"
	"fmt"

	"honnef.co/go/euclid"
)

func ExampleInterCC() {
	c := euclid.Circle{Center: euclid.Pt(0, 0), Radius: 5}
	d := euclid.Circle{Center: euclid.Pt(6, 0), Radius: 5}
	xs, err := euclid.InterCC(c, d)
	if err != nil {
		panic(err)
	}
	fmt.Println(xs)
	// Output: [(3, 4) (3, -4)]
}

func ExampleInterOther() {
	l := euclid.Line{A: 0, B: 1, C: -4}
	c := euclid.Circle{Center: euclid.Pt(0, 0), Radius: 5}
	p, err := euclid.InterOther(l, c, euclid.Pt(3, 4))
	if err != nil {
		panic(err)
	}
	fmt.Println(p)
	// Output: (-3, 4)
}

func ExampleReflect() {
	diag := euclid.Line{A: 1, B: -1, C: 0}
	p := euclid.Reflect(euclid.Pt(1, 2), diag)
	fmt.Printf("(%.2f, %.2f)\n", p.X, p.Y)
	// Output: (2.00, 1.00)
}

func ExampleAngle() {
	l := euclid.Line{A: 1, B: 0, C: 0}
	k := euclid.Line{A: 1, B: -1, C: 0}
	fmt.Printf("%.1f°\n", euclid.Angle(l, k).Degrees())
	// Output: 45.0°
}

func ExampleLineFromPoints() {
	p := euclid.Pt(1, 1)
	_, err := euclid.LineFromPoints(p, p)
	fmt.Println(errors.Is(err, euclid.ErrDegenerate))
	// Output: true
}

func ExampleTangent() {
	ts, err := euclid.Tangent(euclid.Pt(0, 5), euclid.Circle{Center: euclid.Pt(0, 0), Radius: 3})
	if err != nil {
		panic(err)
	}
	fmt.Println(len(ts))
	// Output: 2
}
