// Package format is the formatting protocol and template interpreter behind
// Velocity's `println` and `formatted` builtins — the one genuinely
// engineered piece of the runtime.
//
// 🚀 What ships here?
//
//	Two cooperating mechanisms:
//	  • A per-type formatting capability: implement Formatter and your type
//	    owns its textual form; arithmetic types, bool and string fall back
//	    to a canonical default. Resolution is Formatted(v).
//	  • A `{}` template interpreter: one left-to-right pass with
//	    two-character lookahead substitutes arguments positionally, honors
//	    `{{` / `}}` escapes, and rejects lone braces.
//
// ✨ Contract:
//   - Custom capabilities win over defaults, are resolved per concrete
//     type, and must not mutate the value they render.
//   - Composition is the point: a capability builds its text from its
//     members' Formatted text, so containers of custom types format
//     through the same mechanism with no extra wiring.
//   - The k-th `{}` binds the k-th argument. Surplus arguments are ignored;
//     surplus placeholders are an error. A malformed template produces no
//     partial output in any call mode.
//   - Sprintf reports template problems as errors; Println treats them as
//     fatal at format time, since generated programs have no recovery
//     path for a template they emitted themselves.
//
// ⚙️ Usage:
//
//	import "github.com/velocity-lang/velocity/format"
//
//	format.Println("{} and {}", 1, 2)      // prints "1 and 2"
//	s, err := format.Sprintf("{{}} = {}", 7) // "{} = 7"
//
//	type Point struct{ X, Y int }
//	func (p Point) Format() string {
//	    return "(" + format.Formatted(p.X) + ", " + format.Formatted(p.Y) + ")"
//	}
//
// Missing capabilities are normally caught when code is generated — the
// compiler refuses to emit a `println` for an unformattable type — so the
// run-time ErrNoFormatter panic only concerns hand-written callers.
package format
