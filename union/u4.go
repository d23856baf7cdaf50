package union

import "github.com/velocity-lang/velocity/format"

// U4 is a closed sum over four alternatives. The zero value holds a
// zero-valued A.
type U4[A, B, C, D any] struct {
	tag Alt
	a   A
	b   B
	c   C
	d   D
}

// U4A returns a U4 holding v as alternative A.
func U4A[A, B, C, D any](v A) U4[A, B, C, D] {
	return U4[A, B, C, D]{tag: AltA, a: v}
}

// U4B returns a U4 holding v as alternative B.
func U4B[A, B, C, D any](v B) U4[A, B, C, D] {
	return U4[A, B, C, D]{tag: AltB, b: v}
}

// U4C returns a U4 holding v as alternative C.
func U4C[A, B, C, D any](v C) U4[A, B, C, D] {
	return U4[A, B, C, D]{tag: AltC, c: v}
}

// U4D returns a U4 holding v as alternative D.
func U4D[A, B, C, D any](v D) U4[A, B, C, D] {
	return U4[A, B, C, D]{tag: AltD, d: v}
}

// Active reports which alternative is live.
func (u U4[A, B, C, D]) Active() Alt {
	return u.tag
}

// GetA returns the payload as alternative A. Calling it while another
// alternative is active is a precondition violation.
func (u U4[A, B, C, D]) GetA() A {
	if u.tag != AltA {
		panic(errWrongAlt("GetA", u.tag))
	}
	return u.a
}

// GetB returns the payload as alternative B. Same precondition as GetA.
func (u U4[A, B, C, D]) GetB() B {
	if u.tag != AltB {
		panic(errWrongAlt("GetB", u.tag))
	}
	return u.b
}

// GetC returns the payload as alternative C. Same precondition as GetA.
func (u U4[A, B, C, D]) GetC() C {
	if u.tag != AltC {
		panic(errWrongAlt("GetC", u.tag))
	}
	return u.c
}

// GetD returns the payload as alternative D. Same precondition as GetA.
func (u U4[A, B, C, D]) GetD() D {
	if u.tag != AltD {
		panic(errWrongAlt("GetD", u.tag))
	}
	return u.d
}

// TryA returns the A payload and true when A is active.
func (u U4[A, B, C, D]) TryA() (A, bool) {
	if u.tag != AltA {
		var zero A
		return zero, false
	}
	return u.a, true
}

// TryB returns the B payload and true when B is active.
func (u U4[A, B, C, D]) TryB() (B, bool) {
	if u.tag != AltB {
		var zero B
		return zero, false
	}
	return u.b, true
}

// TryC returns the C payload and true when C is active.
func (u U4[A, B, C, D]) TryC() (C, bool) {
	if u.tag != AltC {
		var zero C
		return zero, false
	}
	return u.c, true
}

// TryD returns the D payload and true when D is active.
func (u U4[A, B, C, D]) TryD() (D, bool) {
	if u.tag != AltD {
		var zero D
		return zero, false
	}
	return u.d, true
}

// SetA makes A the active alternative holding v. Inactive payloads are
// zeroed so their references can be collected.
func (u *U4[A, B, C, D]) SetA(v A) {
	var (
		zeroB B
		zeroC C
		zeroD D
	)
	u.tag, u.a, u.b, u.c, u.d = AltA, v, zeroB, zeroC, zeroD
}

// SetB makes B the active alternative holding v.
func (u *U4[A, B, C, D]) SetB(v B) {
	var (
		zeroA A
		zeroC C
		zeroD D
	)
	u.tag, u.a, u.b, u.c, u.d = AltB, zeroA, v, zeroC, zeroD
}

// SetC makes C the active alternative holding v.
func (u *U4[A, B, C, D]) SetC(v C) {
	var (
		zeroA A
		zeroB B
		zeroD D
	)
	u.tag, u.a, u.b, u.c, u.d = AltC, zeroA, zeroB, v, zeroD
}

// SetD makes D the active alternative holding v.
func (u *U4[A, B, C, D]) SetD(v D) {
	var (
		zeroA A
		zeroB B
		zeroC C
	)
	u.tag, u.a, u.b, u.c, u.d = AltD, zeroA, zeroB, zeroC, v
}

// Format renders the union as "TaggedUnion{arg = X}" through the active
// payload's capability.
func (u U4[A, B, C, D]) Format() string {
	switch u.tag {
	case AltB:
		return wrapArg(format.Formatted(u.b))
	case AltC:
		return wrapArg(format.Formatted(u.c))
	case AltD:
		return wrapArg(format.Formatted(u.d))
	default:
		return wrapArg(format.Formatted(u.a))
	}
}
