package fhtypes

// Float is a type constraint for the element types supported by the
// Hadamard transform. All kernels are generic over this constraint.
type Float interface {
	~float32 | ~float64
}

// Kernel is a fully unrolled transform for a specific fixed size.
// Unlike the staged butterfly, kernels have a hardcoded size and perform
// no runtime checks beyond a length guard. It reports whether it handled
// the buffer; false means the caller must fall back to the staged path.
type Kernel[T Float] func(buf []T) bool
