// Package vmath is the elementary math surface for compiled Velocity
// programs: the fixed catalogue of numeric builtins the code generator
// lowers `abs`, `sin`, `pow` and friends onto.
//
// 🚀 What is vmath?
//
//	A thin generic veneer over the standard math package:
//	  • Ordering helpers: Abs, Min, Max, Clamp, Sign
//	  • Rounding family: Floor, Ceil, Round, Trunc, Frac
//	  • Division family: Mod (integer), FMod, Rem (IEEE remainder)
//	  • Exponential / logarithmic: Pow, Sqrt, Cbrt, Exp*, Log*, Lgamma
//	  • Trigonometric & hyperbolic: Sin … Atan2, Sinh … Atanh
//
// ✨ Semantics:
//   - Every function takes and returns one consistent numeric type —
//     Velocity has no implicit numeric conversions, so neither does vmath.
//   - IEEE-754 throughout: domain errors yield NaN or ±Inf exactly as the
//     standard math package produces them. Nothing here panics.
//   - Float computation happens in float64 and converts back, matching how
//     compiled programs represent `float`.
//
// ⚙️ Usage:
//
//	import "github.com/velocity-lang/velocity/vmath"
//
//	r := vmath.Hypot(3.0, 4.0)          // 5.0
//	k := vmath.Clamp(v, 0.0, vmath.Tau) // wrap angles into one turn
//	s := vmath.Sign(-12)                // -1, still an int
//
// Hand-written Go should usually call the math package directly; vmath earns
// its keep as a stable, generic target for generated code.
package vmath
