package algofht

import "github.com/cwbudde/algo-fht/internal/fhtypes"

// Float is a type constraint for the element types supported by the
// transform. The canonical definition is in internal/fhtypes.
type Float = fhtypes.Float

// Base selects the fixed base factor of a transform size. Supported
// transform lengths have the form base * 2^k.
// The canonical definition is in internal/fhtypes.
type Base = fhtypes.Base

// Supported base factors. Base1 selects the plain power-of-two transform.
const (
	Base1  = fhtypes.Base1
	Base12 = fhtypes.Base12
	Base20 = fhtypes.Base20
	Base28 = fhtypes.Base28
	Base40 = fhtypes.Base40
)
