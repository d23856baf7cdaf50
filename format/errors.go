// Package format: sentinel error set.
// Template problems surface as returned errors from Sprintf/Fprintln and as
// panics from Println; a missing capability always panics. Either way the
// value wraps one of these sentinels.

package format

import (
	"errors"
	"fmt"
)

var (
	// ErrBadTemplate indicates an unescaped lone '{' or '}' in a template.
	ErrBadTemplate = errors.New("format: invalid format string")

	// ErrMissingArgument indicates a template with more `{}` placeholders
	// than supplied arguments.
	ErrMissingArgument = errors.New("format: missing argument for placeholder")

	// ErrNoFormatter indicates a value whose type has neither a custom
	// Formatter implementation nor a default capability.
	ErrNoFormatter = errors.New("format: no formatting capability")
)

// errBadTemplate pins the byte offset of the offending brace.
func errBadTemplate(pos int) error {
	return fmt.Errorf("%w: lone brace at byte %d", ErrBadTemplate, pos)
}

// errMissingArgument names the placeholder that had no argument left.
func errMissingArgument(placeholder int) error {
	return fmt.Errorf("%w: placeholder %d", ErrMissingArgument, placeholder)
}
