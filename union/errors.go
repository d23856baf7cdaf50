// Package union: sentinel error set.
// Wrong-alternative access is a programmer error and panics; the panic value
// wraps ErrWrongAlt and names both the requested and the active alternative.

package union

import (
	"errors"
	"fmt"
)

// ErrWrongAlt indicates a typed access to an alternative that is not the
// active one.
var ErrWrongAlt = errors.New("union: access to inactive alternative")

// errWrongAlt builds the panic value, e.g.
// "union: access to inactive alternative: GetB while A is active".
func errWrongAlt(op string, active Alt) error {
	return fmt.Errorf("%w: %s while %s is active", ErrWrongAlt, op, active)
}
