package vmath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velocity-lang/velocity/vmath"
)

const eps = 1e-12

// TestAbs_Integers verifies absolute value over signed integers, including
// the zero fixed point.
func TestAbs_Integers(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int
	}{
		{"negative", -7, 7},
		{"positive", 12, 12},
		{"zero", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, vmath.Abs(tc.in))
		})
	}
}

// TestAbs_Floats verifies absolute value over floats and NaN propagation.
func TestAbs_Floats(t *testing.T) {
	assert.Equal(t, 2.5, vmath.Abs(-2.5))
	assert.Equal(t, 2.5, vmath.Abs(2.5))
	assert.True(t, math.IsNaN(vmath.Abs(math.NaN())), "Abs must propagate NaN")
}

// TestMinMax_Ordering checks Min/Max over both integer and float operands.
func TestMinMax_Ordering(t *testing.T) {
	assert.Equal(t, 3, vmath.Min(3, 9))
	assert.Equal(t, 9, vmath.Max(3, 9))
	assert.Equal(t, -1.5, vmath.Min(-1.5, 0.0))
	assert.Equal(t, 0.0, vmath.Max(-1.5, 0.0))
}

// TestClamp_Bounds checks below-range, in-range and above-range inputs.
func TestClamp_Bounds(t *testing.T) {
	assert.Equal(t, 2, vmath.Clamp(-5, 2, 8))
	assert.Equal(t, 5, vmath.Clamp(5, 2, 8))
	assert.Equal(t, 8, vmath.Clamp(99, 2, 8))
	assert.Equal(t, 0.25, vmath.Clamp(0.25, 0.0, 1.0))
}

// TestSign_Values covers positive, negative, zero and NaN operands. NaN has
// no order against zero, so its sign reports 0.
func TestSign_Values(t *testing.T) {
	assert.Equal(t, 1, vmath.Sign(42))
	assert.Equal(t, -1, vmath.Sign(-42))
	assert.Equal(t, 0, vmath.Sign(0))
	assert.Equal(t, -1.0, vmath.Sign(-0.001))
	assert.Equal(t, 0.0, vmath.Sign(math.NaN()))
}

// TestMod_TruncatesTowardZero pins Go's native remainder semantics: the
// result takes the dividend's sign.
func TestMod_TruncatesTowardZero(t *testing.T) {
	assert.Equal(t, 1, vmath.Mod(7, 3))
	assert.Equal(t, -1, vmath.Mod(-7, 3))
	assert.Equal(t, 1, vmath.Mod(7, -3))
}

// TestRounding_Family exercises Floor/Ceil/Round/Trunc on both signs,
// including the half-away-from-zero rule for Round.
func TestRounding_Family(t *testing.T) {
	cases := []struct {
		name                          string
		in                            float64
		floor, ceil, round, truncated float64
	}{
		{"positive", 2.6, 2, 3, 3, 2},
		{"negative", -2.6, -3, -2, -3, -2},
		{"half_up", 2.5, 2, 3, 3, 2},
		{"half_down", -2.5, -3, -2, -3, -2},
		{"integral", 4.0, 4, 4, 4, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.floor, vmath.Floor(tc.in), "Floor")
			assert.Equal(t, tc.ceil, vmath.Ceil(tc.in), "Ceil")
			assert.Equal(t, tc.round, vmath.Round(tc.in), "Round")
			assert.Equal(t, tc.truncated, vmath.Trunc(tc.in), "Trunc")
		})
	}
}

// TestFrac_KeepsSign verifies the fractional part carries the operand's sign.
func TestFrac_KeepsSign(t *testing.T) {
	assert.InDelta(t, 0.25, vmath.Frac(1.25), eps)
	assert.InDelta(t, -0.25, vmath.Frac(-1.25), eps)
	assert.Equal(t, 0.0, vmath.Frac(3.0))
}

// TestExpLog_Inverses checks the exponential and logarithmic families against
// each other.
func TestExpLog_Inverses(t *testing.T) {
	assert.InDelta(t, 1.7, vmath.Log(vmath.Exp(1.7)), eps)
	assert.InDelta(t, 3.0, vmath.Log2(vmath.Exp2(3.0)), eps)
	assert.InDelta(t, 2.0, vmath.Log10(100.0), eps)
	assert.InDelta(t, 0.5, vmath.Expm1(vmath.Log1p(0.5)), eps)
	assert.InDelta(t, 5.0, vmath.Sqrt(25.0), eps)
	assert.InDelta(t, -3.0, vmath.Cbrt(-27.0), eps)
	assert.InDelta(t, 8.0, vmath.Pow(2.0, 3.0), eps)
}

// TestDomainErrors_YieldNaN confirms IEEE semantics: out-of-domain operands
// produce NaN, never a panic.
func TestDomainErrors_YieldNaN(t *testing.T) {
	assert.True(t, math.IsNaN(vmath.Sqrt(-1.0)))
	assert.True(t, math.IsNaN(vmath.Log(-1.0)))
	assert.True(t, math.IsNaN(vmath.Asin(2.0)))
	assert.True(t, math.IsNaN(vmath.Acosh(0.5)))
	assert.True(t, math.IsInf(vmath.Log(0.0), -1), "Log(0) is -Inf")
}

// TestRemainders distinguishes FMod (sign of dividend) from Rem (nearest
// integer quotient).
func TestRemainders(t *testing.T) {
	assert.Equal(t, 3.0, vmath.FMod(7.0, 4.0))
	assert.Equal(t, -3.0, vmath.FMod(-7.0, 4.0))
	assert.Equal(t, -1.0, vmath.Rem(7.0, 4.0), "7/4 rounds to 2, 7-8 = -1")
	assert.Equal(t, 1.0, vmath.Rem(5.0, 4.0))
}

// TestTrig_KnownAngles spot-checks the trigonometric family at angles with
// closed-form values.
func TestTrig_KnownAngles(t *testing.T) {
	assert.InDelta(t, 1.0, vmath.Sin(vmath.Pi/2), eps)
	assert.InDelta(t, -1.0, vmath.Cos(vmath.Pi), eps)
	assert.InDelta(t, 1.0, vmath.Tan(vmath.Pi/4), eps)
	assert.InDelta(t, vmath.Pi/4, vmath.Atan2(1.0, 1.0), eps)
	assert.InDelta(t, vmath.Pi/2, vmath.Asin(1.0), eps)
	assert.InDelta(t, 5.0, vmath.Hypot(3.0, 4.0), eps)
}

// TestHyperbolic_Inverses round-trips each hyperbolic function through its
// inverse.
func TestHyperbolic_Inverses(t *testing.T) {
	assert.InDelta(t, 0.75, vmath.Asinh(vmath.Sinh(0.75)), eps)
	assert.InDelta(t, 1.25, vmath.Acosh(vmath.Cosh(1.25)), eps)
	assert.InDelta(t, 0.5, vmath.Atanh(vmath.Tanh(0.5)), eps)
}

// TestExponentExtraction pins Logb/Ilogb on exact powers of two.
func TestExponentExtraction(t *testing.T) {
	assert.Equal(t, 3.0, vmath.Logb(8.0))
	assert.Equal(t, 3.0, vmath.Ilogb(8.0))
	assert.Equal(t, -1.0, vmath.Ilogb(0.5))
}

// TestLgamma checks the gamma function's zeros at 1 and 2.
func TestLgamma(t *testing.T) {
	assert.InDelta(t, 0.0, vmath.Lgamma(1.0), eps)
	assert.InDelta(t, 0.0, vmath.Lgamma(2.0), eps)
}

// TestConstants fixes Tau as exactly one doubling of Pi.
func TestConstants(t *testing.T) {
	assert.Equal(t, 2*float64(vmath.Pi), float64(vmath.Tau))
	assert.InDelta(t, math.Pi, vmath.Pi, eps)
	assert.InDelta(t, math.E, vmath.E, eps)
}
