// Package algofht implements the fast Walsh-Hadamard transform for rows of
// length base * 2^k, with base in {1, 12, 20, 28, 40}.
//
// The power-of-two factor runs as an O(n log n) in-place add/subtract
// butterfly; the non-power-of-two bases apply fixed dense Hadamard-equivalent
// matrices of order 12, 20, 28 or 40, composed with the butterfly through the
// Kronecker identity H_{base*2^k} = M_base (x) H_{2^k}. Lengths that are not
// of a supported form are implicitly zero-padded to the next supported size
// and the output is truncated back.
//
// Every transform matrix H used by this package is symmetric and satisfies
// H*H = n*I. Two consequences the API leans on:
//
//   - applying the transform twice recovers the input scaled by n, and
//   - the vector-Jacobian product of the transform is the transform itself,
//     so Fn.Backward re-applies the forward pass to the upstream gradient.
//
// # Usage
//
// One-shot calls pad, transform, scale and truncate in a single step:
//
//	out, err := algofht.Transform(x, 1.0, false)
//
// For repeated transforms of the same length, create a Plan once and reuse
// it. A Plan owns its padded scratch buffer and is not safe for concurrent
// use; NewExecutor clones the plan with private scratch for each goroutine.
//
// The reference oracle in the oracle subpackage validates the fast path
// against an explicit dense matrix product and is not a production path.
package algofht
