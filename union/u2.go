package union

import "github.com/velocity-lang/velocity/format"

// U2 is a closed sum over two alternatives. The zero value holds a
// zero-valued A.
type U2[A, B any] struct {
	tag Alt
	a   A
	b   B
}

// U2A returns a U2 holding v as alternative A.
func U2A[A, B any](v A) U2[A, B] {
	return U2[A, B]{tag: AltA, a: v}
}

// U2B returns a U2 holding v as alternative B.
func U2B[A, B any](v B) U2[A, B] {
	return U2[A, B]{tag: AltB, b: v}
}

// Active reports which alternative is live.
func (u U2[A, B]) Active() Alt {
	return u.tag
}

// GetA returns the payload as alternative A. Calling it while another
// alternative is active is a precondition violation.
func (u U2[A, B]) GetA() A {
	if u.tag != AltA {
		panic(errWrongAlt("GetA", u.tag))
	}
	return u.a
}

// GetB returns the payload as alternative B. Same precondition as GetA.
func (u U2[A, B]) GetB() B {
	if u.tag != AltB {
		panic(errWrongAlt("GetB", u.tag))
	}
	return u.b
}

// TryA returns the A payload and true when A is active.
func (u U2[A, B]) TryA() (A, bool) {
	if u.tag != AltA {
		var zero A
		return zero, false
	}
	return u.a, true
}

// TryB returns the B payload and true when B is active.
func (u U2[A, B]) TryB() (B, bool) {
	if u.tag != AltB {
		var zero B
		return zero, false
	}
	return u.b, true
}

// SetA makes A the active alternative holding v. The inactive payload is
// zeroed so its references can be collected.
func (u *U2[A, B]) SetA(v A) {
	var zeroB B
	u.tag, u.a, u.b = AltA, v, zeroB
}

// SetB makes B the active alternative holding v.
func (u *U2[A, B]) SetB(v B) {
	var zeroA A
	u.tag, u.a, u.b = AltB, zeroA, v
}

// Format renders the union as "TaggedUnion{arg = X}": a dynamic switch on
// the tag re-dispatches into the active payload's static capability.
func (u U2[A, B]) Format() string {
	switch u.tag {
	case AltB:
		return wrapArg(format.Formatted(u.b))
	default:
		return wrapArg(format.Formatted(u.a))
	}
}

// wrapArg is the stable, user-visible wrapper shared by every union shape.
func wrapArg(payload string) string {
	return "TaggedUnion{arg = " + payload + "}"
}
