package fht

import "errors"

// Sentinel errors shared with the public package.
var (
	// ErrInvalidLength is returned when a transform length is not positive
	// or exceeds the maximum supported padded size for the requested base.
	ErrInvalidLength = errors.New("algofht: invalid transform length")

	// ErrInvalidBase is returned when the base factor is not one of
	// 1, 12, 20, 28 or 40.
	ErrInvalidBase = errors.New("algofht: invalid base factor")
)
