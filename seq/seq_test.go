package seq_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velocity-lang/velocity/seq"
)

// mustPanic runs fn and asserts it panics with an error wrapping want.
func mustPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", want)
		err, ok := r.(error)
		require.True(t, ok, "panic value must be an error, got %T", r)
		assert.ErrorIs(t, err, want)
	}()
	fn()
}

// TestConstructors covers every construction path and its invariants.
func TestConstructors(t *testing.T) {
	t.Run("new_empty", func(t *testing.T) {
		s := seq.New[int]()
		assert.True(t, s.IsEmpty())
		assert.Zero(t, s.Len())
	})

	t.Run("make_zero_values", func(t *testing.T) {
		s := seq.Make[int](3)
		assert.Equal(t, []int{0, 0, 0}, s.Values())
	})

	t.Run("repeat_fill", func(t *testing.T) {
		s := seq.Repeat("x", 2)
		assert.Equal(t, []string{"x", "x"}, s.Values())
	})

	t.Run("of_literal", func(t *testing.T) {
		s := seq.Of(1, 2, 3)
		assert.Equal(t, 3, s.Len())
		assert.Equal(t, 2, s.At(1))
	})

	t.Run("from_slice_copies", func(t *testing.T) {
		src := []int{1, 2, 3}
		s := seq.FromSlice(src)
		s.Set(0, 99)
		assert.Equal(t, 1, src[0], "FromSlice must not alias the input")
	})

	t.Run("take_prefix", func(t *testing.T) {
		s := seq.Take([]int{1, 2, 3, 4}, 2)
		assert.Equal(t, []int{1, 2}, s.Values())
	})

	t.Run("wrap_adopts", func(t *testing.T) {
		backing := []int{1, 2}
		s := seq.Wrap(backing)
		s.Set(0, 99)
		assert.Equal(t, 99, backing[0], "Wrap shares the given storage")
	})

	t.Run("negative_counts", func(t *testing.T) {
		mustPanic(t, seq.ErrNegativeCount, func() { seq.Make[int](-1) })
		mustPanic(t, seq.ErrNegativeCount, func() { seq.Repeat(0, -1) })
		mustPanic(t, seq.ErrOutOfRange, func() { seq.Take([]int{1}, 5) })
	})
}

// TestPushPop verifies stack ordering and the empty-receiver precondition.
func TestPushPop(t *testing.T) {
	s := seq.New[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)

	assert.Equal(t, 3, s.Pop())
	assert.Equal(t, 2, s.Pop())
	assert.Equal(t, 1, s.Pop())
	assert.True(t, s.IsEmpty())

	mustPanic(t, seq.ErrEmpty, func() { s.Pop() })
}

// TestFirstLast covers boundary access and its empty-receiver precondition.
func TestFirstLast(t *testing.T) {
	s := seq.Of(10, 20, 30)
	assert.Equal(t, 10, s.First())
	assert.Equal(t, 30, s.Last())

	empty := seq.New[int]()
	mustPanic(t, seq.ErrEmpty, func() { empty.First() })
	mustPanic(t, seq.ErrEmpty, func() { empty.Last() })
}

// TestAtSet verifies checked element access never wraps or extends.
func TestAtSet(t *testing.T) {
	s := seq.Of(1, 2, 3)
	s.Set(1, 20)
	assert.Equal(t, 20, s.At(1))

	mustPanic(t, seq.ErrOutOfRange, func() { s.At(-1) })
	mustPanic(t, seq.ErrOutOfRange, func() { s.At(3) })
	mustPanic(t, seq.ErrOutOfRange, func() { s.Set(3, 0) })
}

// TestInsert verifies the insert contract at every legal position: the
// element lands at the index and the length grows by exactly one.
func TestInsert(t *testing.T) {
	cases := []struct {
		name string
		at   int
		want []int
	}{
		{"front", 0, []int{9, 1, 2, 3}},
		{"middle", 1, []int{1, 9, 2, 3}},
		{"end", 3, []int{1, 2, 3, 9}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := seq.Of(1, 2, 3)
			before := s.Len()
			s.Insert(tc.at, 9)
			assert.Equal(t, 9, s.At(tc.at), "inserted value must land at the index")
			assert.Equal(t, before+1, s.Len(), "length must grow by exactly 1")
			assert.Equal(t, tc.want, s.Values())
		})
	}

	s := seq.Of(1)
	mustPanic(t, seq.ErrOutOfRange, func() { s.Insert(-1, 0) })
	mustPanic(t, seq.ErrOutOfRange, func() { s.Insert(2, 0) })
}

// TestRemove verifies positional deletion shifts the tail and returns the
// removed element.
func TestRemove(t *testing.T) {
	s := seq.Of(1, 2, 3)
	assert.Equal(t, 2, s.Remove(1))
	assert.Equal(t, []int{1, 3}, s.Values())

	mustPanic(t, seq.ErrOutOfRange, func() { s.Remove(2) })
}

// TestAppend covers both value and sequence extension, including the
// argument-untouched and self-append guarantees.
func TestAppend(t *testing.T) {
	t.Run("values", func(t *testing.T) {
		s := seq.Of(1)
		s.Append(2, 3)
		assert.Equal(t, []int{1, 2, 3}, s.Values())
	})

	t.Run("sequence_argument_untouched", func(t *testing.T) {
		s := seq.Of(1, 2)
		other := seq.Of(3, 4)
		s.AppendSeq(other)
		assert.Equal(t, []int{1, 2, 3, 4}, s.Values())
		assert.Equal(t, []int{3, 4}, other.Values(), "AppendSeq must not mutate its argument")
	})

	t.Run("self_append", func(t *testing.T) {
		s := seq.Of(1, 2)
		s.AppendSeq(s)
		assert.Equal(t, []int{1, 2, 1, 2}, s.Values())
	})
}

// TestSlice verifies the half-open copy contract and that the source is
// never mutated.
func TestSlice(t *testing.T) {
	s := seq.Of(1, 2, 3, 4, 5)

	sub := s.Slice(1, 4)
	assert.Equal(t, []int{2, 3, 4}, sub.Values())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Values(), "Slice must not mutate the source")

	sub.Set(0, 99)
	assert.Equal(t, 2, s.At(1), "slices own independent storage")

	assert.Equal(t, []int{4, 5}, s.SliceFrom(3).Values())
	assert.Zero(t, s.Slice(2, 2).Len(), "empty range yields an empty sequence")

	mustPanic(t, seq.ErrOutOfRange, func() { s.Slice(-1, 2) })
	mustPanic(t, seq.ErrOutOfRange, func() { s.Slice(0, 6) })
	mustPanic(t, seq.ErrOutOfRange, func() { s.Slice(3, 2) })
}

// TestClone verifies deep independence in both directions.
func TestClone(t *testing.T) {
	s := seq.Of(1, 2, 3)
	c := s.Clone()

	c.Set(0, 99)
	c.Push(4)
	assert.Equal(t, []int{1, 2, 3}, s.Values(), "mutating the clone must not change the source")

	s.Set(2, 88)
	assert.Equal(t, 3, c.At(2), "mutating the source must not change the clone")
}

// TestClearResizeReserve covers the growth controls.
func TestClearResizeReserve(t *testing.T) {
	t.Run("clear_keeps_capacity", func(t *testing.T) {
		s := seq.Of(1, 2, 3)
		capBefore := s.Cap()
		s.Clear()
		assert.True(t, s.IsEmpty())
		assert.Equal(t, capBefore, s.Cap())
	})

	t.Run("resize_grows_with_zeros", func(t *testing.T) {
		s := seq.Of(7)
		s.Resize(3)
		assert.Equal(t, []int{7, 0, 0}, s.Values())
	})

	t.Run("resize_truncates", func(t *testing.T) {
		s := seq.Of(1, 2, 3)
		s.Resize(1)
		assert.Equal(t, []int{1}, s.Values())
	})

	t.Run("reserve_grows_capacity_only", func(t *testing.T) {
		s := seq.Of(1)
		s.Reserve(16)
		assert.GreaterOrEqual(t, s.Cap(), 16)
		assert.Equal(t, 1, s.Len(), "Reserve must not change length")

		capBefore := s.Cap()
		s.Reserve(2)
		assert.Equal(t, capBefore, s.Cap(), "smaller Reserve is a no-op")
	})

	t.Run("negative_arguments", func(t *testing.T) {
		s := seq.New[int]()
		mustPanic(t, seq.ErrNegativeCount, func() { s.Resize(-1) })
		mustPanic(t, seq.ErrNegativeCount, func() { s.Reserve(-1) })
	})
}

// TestFormat verifies the bracketed rendering, including nesting through the
// formatting protocol.
func TestFormat(t *testing.T) {
	assert.Equal(t, "[1, 2, 3]", seq.Of(1, 2, 3).Format())
	assert.Equal(t, "[]", seq.New[string]().Format())

	nested := seq.Of(seq.Of(1), seq.Of(2, 3))
	assert.Equal(t, "[[1], [2, 3]]", nested.Format())
}

// TestPanicValuesAreErrors pins the contract that every precondition panic
// carries an error value usable with errors.Is.
func TestPanicValuesAreErrors(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, seq.ErrOutOfRange))
		assert.Contains(t, err.Error(), "At(5)")
	}()
	seq.Of(1).At(5)
}
