package algofht

import (
	"errors"

	"github.com/cwbudde/algo-fht/internal/fht"
)

// Sentinel errors returned by transform operations.
var (
	// ErrInvalidLength is returned when a row length is not positive or
	// exceeds the maximum supported padded size for the requested base.
	ErrInvalidLength = fht.ErrInvalidLength

	// ErrInvalidBase is returned when the base factor is not one of
	// 1, 12, 20, 28 or 40.
	ErrInvalidBase = fht.ErrInvalidBase

	// ErrInvalidScale is returned when the scale multiplier is NaN or
	// infinite.
	ErrInvalidScale = errors.New("algofht: scale is not finite")

	// ErrNilSlice is returned when a nil slice is passed to a transform
	// method.
	ErrNilSlice = errors.New("algofht: nil slice")

	// ErrLengthMismatch is returned when input/output slice sizes don't
	// match the Plan's expected dimensions.
	ErrLengthMismatch = errors.New("algofht: slice length mismatch")

	// ErrInvalidStride is returned when a stride parameter is invalid
	// for the given data layout.
	ErrInvalidStride = errors.New("algofht: invalid stride")

	// ErrBufferTooSmall is returned when an in-place transform needs
	// implicit zero padding but the supplied buffer's capacity is smaller
	// than the resolved padded length.
	ErrBufferTooSmall = errors.New("algofht: in-place buffer smaller than padded length")

	// ErrOracleUnavailable is returned by TransformReference when no
	// dense linear-algebra oracle has been registered. Importing the
	// oracle subpackage registers one.
	ErrOracleUnavailable = errors.New("algofht: no dense oracle registered")
)
