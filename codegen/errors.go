// Package codegen: sentinel error set.
// Problems in the velocity source surface as positioned diag errors; this
// file covers the other failure class, where the generator itself produced
// Go that the formatter rejects.

package codegen

import "errors"

// ErrFormat indicates the emitted source failed go/format. The velocity
// input was accepted, so this is a generator defect, not a user error.
var ErrFormat = errors.New("codegen: generated source does not format")
