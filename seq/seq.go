package seq

import (
	"slices"
	"strings"

	"github.com/velocity-lang/velocity/format"
)

// Seq is an owned, contiguous, ordered collection of T with checked access.
// The zero value is ready to use as an empty sequence, though constructors
// are the usual entry point.
type Seq[T any] struct {
	elems []T
}

// New returns an empty sequence.
func New[T any]() *Seq[T] {
	return &Seq[T]{}
}

// Make returns a sequence of n zero values. Negative n is a precondition
// violation.
func Make[T any](n int) *Seq[T] {
	if n < 0 {
		panic(errCount("Make", n))
	}
	return &Seq[T]{elems: make([]T, n)}
}

// Repeat returns a sequence of n copies of v. Negative n is a precondition
// violation.
func Repeat[T any](v T, n int) *Seq[T] {
	if n < 0 {
		panic(errCount("Repeat", n))
	}
	elems := make([]T, n)
	for i := range elems {
		elems[i] = v
	}
	return &Seq[T]{elems: elems}
}

// Of returns a sequence holding the given values. The variadic slice is
// copied, so later mutations do not alias the caller's storage.
func Of[T any](vs ...T) *Seq[T] {
	return &Seq[T]{elems: slices.Clone(vs)}
}

// FromSlice returns a sequence holding a copy of vs.
func FromSlice[T any](vs []T) *Seq[T] {
	return &Seq[T]{elems: slices.Clone(vs)}
}

// Take returns a sequence holding a copy of the first n elements of vs.
// n outside [0, len(vs)] is a precondition violation.
func Take[T any](vs []T, n int) *Seq[T] {
	if n < 0 || n > len(vs) {
		panic(errBounds("Take", n, len(vs)))
	}
	return &Seq[T]{elems: slices.Clone(vs[:n])}
}

// Wrap adopts vs as the sequence's backing storage without copying. The
// caller must not use vs afterwards.
func Wrap[T any](vs []T) *Seq[T] {
	return &Seq[T]{elems: vs}
}

// Clone returns a deep-independent copy: element-wise copied into fresh
// storage, so mutating either sequence never affects the other.
func (s *Seq[T]) Clone() *Seq[T] {
	return &Seq[T]{elems: slices.Clone(s.elems)}
}

// Len returns the number of live elements.
func (s *Seq[T]) Len() int {
	return len(s.elems)
}

// Cap returns the current storage capacity.
func (s *Seq[T]) Cap() int {
	return cap(s.elems)
}

// IsEmpty reports whether the sequence holds no elements.
func (s *Seq[T]) IsEmpty() bool {
	return len(s.elems) == 0
}

// Push appends v at the end. Amortized O(1).
func (s *Seq[T]) Push(v T) {
	s.elems = append(s.elems, v)
}

// Pop removes and returns the last element. An empty receiver is a
// precondition violation.
func (s *Seq[T]) Pop() T {
	n := len(s.elems)
	if n == 0 {
		panic(errEmpty("Pop"))
	}
	v := s.elems[n-1]
	var zero T
	s.elems[n-1] = zero // release the slot so T's references can be collected
	s.elems = s.elems[:n-1]
	return v
}

// First returns the first element. An empty receiver is a precondition
// violation.
func (s *Seq[T]) First() T {
	if len(s.elems) == 0 {
		panic(errEmpty("First"))
	}
	return s.elems[0]
}

// Last returns the last element. An empty receiver is a precondition
// violation.
func (s *Seq[T]) Last() T {
	if len(s.elems) == 0 {
		panic(errEmpty("Last"))
	}
	return s.elems[len(s.elems)-1]
}

// At returns the element at index i. i outside [0, Len()) is a precondition
// violation; access never wraps or extends.
func (s *Seq[T]) At(i int) T {
	if i < 0 || i >= len(s.elems) {
		panic(errBounds("At", i, len(s.elems)))
	}
	return s.elems[i]
}

// Set replaces the element at index i. Same bounds contract as At.
func (s *Seq[T]) Set(i int, v T) {
	if i < 0 || i >= len(s.elems) {
		panic(errBounds("Set", i, len(s.elems)))
	}
	s.elems[i] = v
}

// Insert places v at index i, shifting the tail right. i may equal Len()
// (append position); i outside [0, Len()] is a precondition violation. O(n).
func (s *Seq[T]) Insert(i int, v T) {
	if i < 0 || i > len(s.elems) {
		panic(errBounds("Insert", i, len(s.elems)))
	}
	s.elems = slices.Insert(s.elems, i, v)
}

// Remove deletes and returns the element at index i, shifting the tail left.
// i outside [0, Len()) is a precondition violation. O(n).
func (s *Seq[T]) Remove(i int) T {
	if i < 0 || i >= len(s.elems) {
		panic(errBounds("Remove", i, len(s.elems)))
	}
	v := s.elems[i]
	s.elems = slices.Delete(s.elems, i, i+1)
	return v
}

// Append extends the sequence with the given values in order.
func (s *Seq[T]) Append(vs ...T) {
	s.elems = append(s.elems, vs...)
}

// AppendSeq extends the sequence with all elements of other, which is left
// unchanged. Appending a sequence to itself is safe.
func (s *Seq[T]) AppendSeq(other *Seq[T]) {
	s.elems = append(s.elems, other.elems...)
}

// Slice returns a new independent sequence holding copies of the elements in
// [start, end). The receiver is never mutated. Bounds outside
// 0 <= start <= end <= Len() are precondition violations.
func (s *Seq[T]) Slice(start, end int) *Seq[T] {
	if start < 0 || start > len(s.elems) {
		panic(errBounds("Slice", start, len(s.elems)))
	}
	if end < start || end > len(s.elems) {
		panic(errBounds("Slice", end, len(s.elems)))
	}
	return &Seq[T]{elems: slices.Clone(s.elems[start:end])}
}

// SliceFrom returns Slice(start, Len()).
func (s *Seq[T]) SliceFrom(start int) *Seq[T] {
	return s.Slice(start, len(s.elems))
}

// Clear removes all elements, keeping capacity for reuse.
func (s *Seq[T]) Clear() {
	clear(s.elems)
	s.elems = s.elems[:0]
}

// Resize sets the length to n, extending with zero values or truncating.
// Negative n is a precondition violation.
func (s *Seq[T]) Resize(n int) {
	if n < 0 {
		panic(errCount("Resize", n))
	}
	if n <= len(s.elems) {
		clear(s.elems[n:])
		s.elems = s.elems[:n]
		return
	}
	s.elems = append(s.elems, make([]T, n-len(s.elems))...)
}

// Reserve grows the capacity to at least capacity. It never shrinks and
// never changes Len. Negative capacity is a precondition violation.
func (s *Seq[T]) Reserve(capacity int) {
	if capacity < 0 {
		panic(errCount("Reserve", capacity))
	}
	if capacity <= cap(s.elems) {
		return
	}
	grown := make([]T, len(s.elems), capacity)
	copy(grown, s.elems)
	s.elems = grown
}

// Values exposes the backing slice for range loops. Callers must treat it as
// read-only; it aliases the sequence until the next growth.
func (s *Seq[T]) Values() []T {
	return s.elems
}

// Format renders the sequence as "[e1, e2, …]", each element through the
// formatting protocol, which makes sequences of formattable types themselves
// formattable.
func (s *Seq[T]) Format() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(format.Formatted(v))
	}
	b.WriteByte(']')
	return b.String()
}
