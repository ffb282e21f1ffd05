package fhtypes

import "strconv"

// Base selects the fixed base factor of a transform size. Supported
// transform lengths have the form base * 2^k. Base1 is the plain
// power-of-two transform with no dense base kernel.
type Base int

const (
	Base1  Base = 1
	Base12 Base = 12
	Base20 Base = 20
	Base28 Base = 28
	Base40 Base = 40
)

// Valid reports whether b is a supported base factor.
func (b Base) Valid() bool {
	switch b {
	case Base1, Base12, Base20, Base28, Base40:
		return true
	default:
		return false
	}
}

// String returns a human-readable name for the base factor.
func (b Base) String() string {
	switch b {
	case Base1:
		return "pow2"
	case Base12, Base20, Base28, Base40:
		return strconv.Itoa(int(b)) + "n"
	default:
		return "invalid(" + strconv.Itoa(int(b)) + ")"
	}
}
