package vmath

import (
	"golang.org/x/exp/constraints"
)

// Circle and growth constants, declared untyped so they adopt whatever float
// width the call site needs.
const (
	// Pi is the ratio of a circle's circumference to its diameter.
	Pi = 3.14159265358979323846
	// E is Euler's number, the base of natural logarithms.
	E = 2.71828182845904523536
	// Tau is one full turn, 2·Pi.
	Tau = 6.28318530717958647692
)

// Number is any built-in integer or floating-point type. It is the element
// constraint shared by the ordering helpers below.
type Number interface {
	constraints.Integer | constraints.Float
}

// Abs returns the absolute value of x. For floats, Abs(NaN) is NaN; for the
// minimum value of a signed integer type the result wraps, as it does in the
// underlying negation.
func Abs[N Number](x N) N {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b. Float NaN handling follows the built-in
// min: a NaN operand yields NaN.
func Min[N Number](a, b N) N {
	return min(a, b)
}

// Max returns the larger of a and b.
func Max[N Number](a, b N) N {
	return max(a, b)
}

// Clamp limits v to the inclusive range [lo, hi]. Callers must ensure
// lo <= hi; the bounds are not reordered.
func Clamp[N Number](v, lo, hi N) N {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign reports the sign of x as a value of the same type: 1 for positive,
// -1 for negative, 0 otherwise (including NaN and both zeros).
func Sign[N Number](x N) N {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Mod returns a % b for integers. Division by zero panics exactly as the
// native operator does.
func Mod[I constraints.Integer](a, b I) I {
	return a % b
}
