// Package union provides Velocity's closed sum types: a value that is
// exactly one of a fixed set of alternatives, with the active alternative
// tracked at runtime and every typed access checked against it.
//
// 🚀 What is a tagged union here?
//
//	Three generic shapes — U2, U3, U4 — covering the alternative counts
//	the code generator emits:
//	  • Constructors per alternative: U2A, U2B, U3A, … record the tag
//	  • Checked access: GetA/GetB/… panic on the wrong alternative
//	  • Probes: TryA/TryB/… for flow without panics
//	  • Assignment: SetA/SetB/… switch the active alternative
//	  • Active() reports the current tag
//
// ✨ Contract:
//   - Exactly one alternative is live at any time; the zero value is
//     alternative A holding A's zero value, matching first-member default
//     construction.
//   - Reading the wrong alternative is a programmer error: it panics with
//     an error wrapping ErrWrongAlt, never returns garbage.
//   - Payloads are embedded inline and owned by the union value; copying
//     the union copies the payload.
//   - Formatting is the boundary the design preserves: a dynamic switch on
//     the tag re-dispatches into the formatting protocol's static per-type
//     capability, producing the stable text `TaggedUnion{arg = X}`.
//
// ⚙️ Usage:
//
//	import "github.com/velocity-lang/velocity/union"
//
//	v := union.U2A[int, string](7)
//	v.Active()              // union.AltA
//	n := v.GetA()           // 7
//	if s, ok := v.TryB(); ok { … }   // not taken
//	v.SetB("now a string")
//
// Sharing a union across goroutines needs external synchronization, same as
// any struct value.
package union
