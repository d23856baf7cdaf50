package union

import "github.com/velocity-lang/velocity/format"

// U3 is a closed sum over three alternatives. The zero value holds a
// zero-valued A.
type U3[A, B, C any] struct {
	tag Alt
	a   A
	b   B
	c   C
}

// U3A returns a U3 holding v as alternative A.
func U3A[A, B, C any](v A) U3[A, B, C] {
	return U3[A, B, C]{tag: AltA, a: v}
}

// U3B returns a U3 holding v as alternative B.
func U3B[A, B, C any](v B) U3[A, B, C] {
	return U3[A, B, C]{tag: AltB, b: v}
}

// U3C returns a U3 holding v as alternative C.
func U3C[A, B, C any](v C) U3[A, B, C] {
	return U3[A, B, C]{tag: AltC, c: v}
}

// Active reports which alternative is live.
func (u U3[A, B, C]) Active() Alt {
	return u.tag
}

// GetA returns the payload as alternative A. Calling it while another
// alternative is active is a precondition violation.
func (u U3[A, B, C]) GetA() A {
	if u.tag != AltA {
		panic(errWrongAlt("GetA", u.tag))
	}
	return u.a
}

// GetB returns the payload as alternative B. Same precondition as GetA.
func (u U3[A, B, C]) GetB() B {
	if u.tag != AltB {
		panic(errWrongAlt("GetB", u.tag))
	}
	return u.b
}

// GetC returns the payload as alternative C. Same precondition as GetA.
func (u U3[A, B, C]) GetC() C {
	if u.tag != AltC {
		panic(errWrongAlt("GetC", u.tag))
	}
	return u.c
}

// TryA returns the A payload and true when A is active.
func (u U3[A, B, C]) TryA() (A, bool) {
	if u.tag != AltA {
		var zero A
		return zero, false
	}
	return u.a, true
}

// TryB returns the B payload and true when B is active.
func (u U3[A, B, C]) TryB() (B, bool) {
	if u.tag != AltB {
		var zero B
		return zero, false
	}
	return u.b, true
}

// TryC returns the C payload and true when C is active.
func (u U3[A, B, C]) TryC() (C, bool) {
	if u.tag != AltC {
		var zero C
		return zero, false
	}
	return u.c, true
}

// SetA makes A the active alternative holding v. Inactive payloads are
// zeroed so their references can be collected.
func (u *U3[A, B, C]) SetA(v A) {
	var (
		zeroB B
		zeroC C
	)
	u.tag, u.a, u.b, u.c = AltA, v, zeroB, zeroC
}

// SetB makes B the active alternative holding v.
func (u *U3[A, B, C]) SetB(v B) {
	var (
		zeroA A
		zeroC C
	)
	u.tag, u.a, u.b, u.c = AltB, zeroA, v, zeroC
}

// SetC makes C the active alternative holding v.
func (u *U3[A, B, C]) SetC(v C) {
	var (
		zeroA A
		zeroB B
	)
	u.tag, u.a, u.b, u.c = AltC, zeroA, zeroB, v
}

// Format renders the union as "TaggedUnion{arg = X}" through the active
// payload's capability.
func (u U3[A, B, C]) Format() string {
	switch u.tag {
	case AltB:
		return wrapArg(format.Formatted(u.b))
	case AltC:
		return wrapArg(format.Formatted(u.c))
	default:
		return wrapArg(format.Formatted(u.a))
	}
}
