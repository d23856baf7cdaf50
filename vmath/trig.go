package vmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Sin returns the sine of x (in radians).
func Sin[F constraints.Float](x F) F {
	return F(math.Sin(float64(x)))
}

// Cos returns the cosine of x (in radians).
func Cos[F constraints.Float](x F) F {
	return F(math.Cos(float64(x)))
}

// Tan returns the tangent of x (in radians).
func Tan[F constraints.Float](x F) F {
	return F(math.Tan(float64(x)))
}

// Asin returns the arcsine of x in radians. |x| > 1 yields NaN.
func Asin[F constraints.Float](x F) F {
	return F(math.Asin(float64(x)))
}

// Acos returns the arccosine of x in radians. |x| > 1 yields NaN.
func Acos[F constraints.Float](x F) F {
	return F(math.Acos(float64(x)))
}

// Atan returns the arctangent of x in radians.
func Atan[F constraints.Float](x F) F {
	return F(math.Atan(float64(x)))
}

// Atan2 returns the angle of the point (x, y) in radians, using the signs of
// both operands to pick the quadrant.
func Atan2[F constraints.Float](y, x F) F {
	return F(math.Atan2(float64(y), float64(x)))
}

// Sinh returns the hyperbolic sine of x.
func Sinh[F constraints.Float](x F) F {
	return F(math.Sinh(float64(x)))
}

// Cosh returns the hyperbolic cosine of x.
func Cosh[F constraints.Float](x F) F {
	return F(math.Cosh(float64(x)))
}

// Tanh returns the hyperbolic tangent of x.
func Tanh[F constraints.Float](x F) F {
	return F(math.Tanh(float64(x)))
}

// Asinh returns the inverse hyperbolic sine of x.
func Asinh[F constraints.Float](x F) F {
	return F(math.Asinh(float64(x)))
}

// Acosh returns the inverse hyperbolic cosine of x. x < 1 yields NaN.
func Acosh[F constraints.Float](x F) F {
	return F(math.Acosh(float64(x)))
}

// Atanh returns the inverse hyperbolic tangent of x. |x| > 1 yields NaN.
func Atanh[F constraints.Float](x F) F {
	return F(math.Atanh(float64(x)))
}
