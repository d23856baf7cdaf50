// Package seq: sentinel error set.
// Sequence preconditions are programmer errors, so violations panic rather
// than return; the panic value is always an error wrapping one of these
// sentinels, checkable with errors.Is after recover.

package seq

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates an index outside the valid bounds of the
	// operation (see each method for its exact range).
	ErrOutOfRange = errors.New("seq: index out of range")

	// ErrEmpty indicates Pop, First or Last was called on an empty sequence.
	ErrEmpty = errors.New("seq: empty sequence")

	// ErrNegativeCount indicates a negative size or capacity argument.
	ErrNegativeCount = errors.New("seq: negative count")
)

// errBounds builds the panic value for an index violation, e.g.
// "seq: index out of range: At(7) with length 3".
func errBounds(op string, i, n int) error {
	return fmt.Errorf("%w: %s(%d) with length %d", ErrOutOfRange, op, i, n)
}

// errEmpty builds the panic value for boundary access on an empty sequence.
func errEmpty(op string) error {
	return fmt.Errorf("%w: %s", ErrEmpty, op)
}

// errCount builds the panic value for a negative size or capacity.
func errCount(op string, n int) error {
	return fmt.Errorf("%w: %s(%d)", ErrNegativeCount, op, n)
}
