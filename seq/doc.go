// Package seq provides the growable, ordered sequence behind Velocity's
// built-in Array type: array ergonomics over a plain Go slice, with every
// index checked.
//
// 🚀 What is Seq?
//
//	A thin ergonomic layer, not a new data structure:
//	  • Stack vocabulary: Push, Pop, First, Last
//	  • Checked access: At, Set — out of range fails fast, never wraps
//	  • Positional edits: Insert, Remove (O(n) shifts, as expected)
//	  • Growth controls: Resize, Reserve, Clear
//	  • Value semantics: Clone, Slice and AppendSeq always produce
//	    fresh, disjoint storage
//
// ✨ Contract:
//   - Element storage and growth strategy are delegated to the Go slice;
//     the package's sole value-add is named operations plus checked indexing.
//   - Precondition violations (empty Pop, out-of-range index, negative
//     count) panic with an error wrapping ErrEmpty, ErrOutOfRange or
//     ErrNegativeCount. They are programmer errors, not runtime conditions;
//     recover and errors.Is make them observable in tests.
//   - No internal locking. A Seq shared across goroutines needs external
//     synchronization, same as the slice it wraps.
//
// ⚙️ Usage:
//
//	import "github.com/velocity-lang/velocity/seq"
//
//	xs := seq.Of(1, 2, 3)
//	xs.Push(4)
//	head := xs.Slice(0, 2)     // independent copy of [1, 2]
//	xs.Insert(0, 0)            // [0, 1, 2, 3, 4]
//	_ = head.At(1)             // 2
//
// Iteration goes through Values, which exposes the backing slice read-only:
//
//	for _, x := range xs.Values() { … }
package seq
