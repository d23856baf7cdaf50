package union

// Alt identifies the active alternative of a union value. The zero tag is
// AltA, which makes the zero value of every union shape hold its first
// alternative, zero-valued.
type Alt uint8

const (
	// AltA is the first alternative.
	AltA Alt = iota
	// AltB is the second alternative.
	AltB
	// AltC is the third alternative (U3 and U4 only).
	AltC
	// AltD is the fourth alternative (U4 only).
	AltD
)

// Format returns the alternative's letter, giving tags a formatting
// capability so they can appear in templates.
func (a Alt) Format() string {
	return a.String()
}

// String returns the alternative's letter for diagnostics.
func (a Alt) String() string {
	switch a {
	case AltA:
		return "A"
	case AltB:
		return "B"
	case AltC:
		return "C"
	case AltD:
		return "D"
	default:
		return "?"
	}
}
