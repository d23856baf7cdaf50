package union_test

import (
	"fmt"

	"github.com/velocity-lang/velocity/format"
	"github.com/velocity-lang/velocity/union"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleU2
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A Velocity `union Number = int | float` compiles to U2[int, float64].
//	The tag decides which accessor is legal; probes keep control flow
//	panic-free.
func ExampleU2() {
	n := union.U2A[int, float64](3)

	if v, ok := n.TryA(); ok {
		fmt.Println("int:", v)
	}

	n.SetB(2.5)
	fmt.Println("active:", n.Active())
	format.Println("value = {}", n)
	// Output:
	// int: 3
	// active: B
	// value = TaggedUnion{arg = 2.5}
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleU3_Format
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Formatting is a dynamic switch on the tag into the active payload's
//	static capability — the same value renders differently as its
//	alternative changes.
func ExampleU3_Format() {
	var state union.U3[int, bool, string]
	fmt.Println(state.Format())

	state.SetB(true)
	fmt.Println(state.Format())

	state.SetC("ready")
	fmt.Println(state.Format())
	// Output:
	// TaggedUnion{arg = 0}
	// TaggedUnion{arg = true}
	// TaggedUnion{arg = ready}
}
