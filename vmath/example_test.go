package vmath_test

import (
	"fmt"

	"github.com/velocity-lang/velocity/vmath"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleClamp
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Normalize a raw sensor reading into the unit interval, then scale it to
//	an angle within one full turn.
//
// Use case:
//
//	Input sanitization in generated code, where Velocity's `clamp` builtin
//	lowers onto vmath.Clamp.
func ExampleClamp() {
	reading := 1.37
	unit := vmath.Clamp(reading, 0.0, 1.0)
	angle := unit * vmath.Tau

	fmt.Printf("unit=%.2f\n", unit)
	fmt.Printf("angle=%.5f\n", angle)
	// Output:
	// unit=1.00
	// angle=6.28319
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSign
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Branch on the direction of a velocity delta without losing its type:
//	Sign returns an int for ints and a float for floats.
func ExampleSign() {
	fmt.Println(vmath.Sign(-250))
	fmt.Println(vmath.Sign(0.75))
	fmt.Println(vmath.Sign(0))
	// Output:
	// -1
	// 1
	// 0
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleHypot
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Distance of a point from the origin, the classic 3-4-5 triangle.
func ExampleHypot() {
	fmt.Println(vmath.Hypot(3.0, 4.0))
	// Output:
	// 5
}
