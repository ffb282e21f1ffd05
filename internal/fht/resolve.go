package fht

import (
	"github.com/cwbudde/algo-fht/internal/fhtypes"
)

// MaxPaddedLen caps the padded transform size. Requests that would pad
// beyond this bound fail with ErrInvalidLength instead of allocating
// unbounded scratch.
const MaxPaddedLen = 1 << 26

// Resolve returns the smallest supported padded length base*2^k >= length,
// together with the number of implicit zero entries appended to reach it.
func Resolve(length int, base fhtypes.Base) (padded, pad int, err error) {
	if !base.Valid() {
		return 0, 0, ErrInvalidBase
	}

	if length <= 0 || length > MaxPaddedLen {
		return 0, 0, ErrInvalidLength
	}

	padded = int(base)
	for padded < length {
		padded <<= 1
	}

	if padded > MaxPaddedLen {
		return 0, 0, ErrInvalidLength
	}

	return padded, padded - length, nil
}
