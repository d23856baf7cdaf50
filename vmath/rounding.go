package vmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Floor returns the greatest integer value less than or equal to x.
func Floor[F constraints.Float](x F) F {
	return F(math.Floor(float64(x)))
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil[F constraints.Float](x F) F {
	return F(math.Ceil(float64(x)))
}

// Round returns the nearest integer value, rounding half away from zero.
func Round[F constraints.Float](x F) F {
	return F(math.Round(float64(x)))
}

// Trunc returns the integer part of x, dropping the fraction toward zero.
func Trunc[F constraints.Float](x F) F {
	return F(math.Trunc(float64(x)))
}

// Frac returns the fractional part of x, computed as x - Trunc(x). The result
// keeps x's sign: Frac(-1.25) is -0.25.
func Frac[F constraints.Float](x F) F {
	return x - Trunc(x)
}
