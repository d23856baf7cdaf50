package format

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Formatter is the per-type formatting capability. A type that implements it
// owns its canonical textual form; the implementation must not mutate the
// receiver. Capabilities compose: build the text from the members' Formatted
// output and any container of the type formats for free.
type Formatter interface {
	Format() string
}

// Formatted resolves the canonical text of v:
//
//  1. a custom capability (Formatter) always wins;
//  2. arithmetic types, bool and string use the default capability below;
//  3. any other type has no capability and panics with an error wrapping
//     ErrNoFormatter.
//
// The default capability renders every integer type numerically — rune is
// int32, so a Velocity char prints as its code point, as the numeric default
// dictates. Floats use the shortest fixed-notation decimal that round-trips.
func Formatted(v any) string {
	if f, ok := v.(Formatter); ok {
		return f.Format()
	}
	if s, ok := defaultText(v); ok {
		return s
	}
	panic(fmt.Errorf("%w: %T", ErrNoFormatter, v))
}

// Sprint is the statically-checked entry for types carrying a custom
// capability: it does not compile for a type without Format.
func Sprint[T Formatter](v T) string {
	return v.Format()
}

// Number is the statically-checked entry for the default numeric capability:
// it does not compile for a non-numeric type.
func Number[N constraints.Integer | constraints.Float](v N) string {
	s, _ := defaultText(v)
	return s
}

// defaultText implements the default capability. The bool false return means
// the type has no default and the caller decides how to fail.
func defaultText(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case bool:
		return strconv.FormatBool(x), true
	case int:
		return strconv.Itoa(x), true
	case int8:
		return strconv.FormatInt(int64(x), 10), true
	case int16:
		return strconv.FormatInt(int64(x), 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint8:
		return strconv.FormatUint(uint64(x), 10), true
	case uint16:
		return strconv.FormatUint(uint64(x), 10), true
	case uint32:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case uintptr:
		return strconv.FormatUint(uint64(x), 10), true
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	default:
		return "", false
	}
}
