package vmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Pow returns base raised to the power exp.
func Pow[F constraints.Float](base, exp F) F {
	return F(math.Pow(float64(base), float64(exp)))
}

// Sqrt returns the square root of x. Sqrt of a negative value is NaN.
func Sqrt[F constraints.Float](x F) F {
	return F(math.Sqrt(float64(x)))
}

// Cbrt returns the cube root of x. Unlike Sqrt it is defined for negatives.
func Cbrt[F constraints.Float](x F) F {
	return F(math.Cbrt(float64(x)))
}

// Hypot returns sqrt(a*a + b*b) without intermediate overflow or underflow.
func Hypot[F constraints.Float](a, b F) F {
	return F(math.Hypot(float64(a), float64(b)))
}

// Exp returns e**x.
func Exp[F constraints.Float](x F) F {
	return F(math.Exp(float64(x)))
}

// Exp2 returns 2**x.
func Exp2[F constraints.Float](x F) F {
	return F(math.Exp2(float64(x)))
}

// Expm1 returns e**x - 1, accurate for x near zero.
func Expm1[F constraints.Float](x F) F {
	return F(math.Expm1(float64(x)))
}

// Log returns the natural logarithm of x.
func Log[F constraints.Float](x F) F {
	return F(math.Log(float64(x)))
}

// Log10 returns the decimal logarithm of x.
func Log10[F constraints.Float](x F) F {
	return F(math.Log10(float64(x)))
}

// Log2 returns the binary logarithm of x.
func Log2[F constraints.Float](x F) F {
	return F(math.Log2(float64(x)))
}

// Log1p returns the natural logarithm of 1+x, accurate for x near zero.
func Log1p[F constraints.Float](x F) F {
	return F(math.Log1p(float64(x)))
}

// Logb returns the binary exponent of x as a float.
func Logb[F constraints.Float](x F) F {
	return F(math.Logb(float64(x)))
}

// Ilogb returns the binary exponent of x, truncated to an integer value of
// the operand type.
func Ilogb[F constraints.Float](x F) F {
	return F(math.Ilogb(float64(x)))
}

// Lgamma returns the natural logarithm of the absolute value of the gamma
// function of x. The sign of Gamma(x) is discarded.
func Lgamma[F constraints.Float](x F) F {
	v, _ := math.Lgamma(float64(x))
	return F(v)
}

// FMod returns the floating-point remainder of a/b with the sign of a.
func FMod[F constraints.Float](a, b F) F {
	return F(math.Mod(float64(a), float64(b)))
}

// Rem returns the IEEE 754 remainder of a/b: a - n*b for the integer n
// nearest to a/b.
func Rem[F constraints.Float](a, b F) F {
	return F(math.Remainder(float64(a), float64(b)))
}
