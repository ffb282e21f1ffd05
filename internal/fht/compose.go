package fht

import (
	"github.com/cwbudde/algo-fht/internal/cpu"
	"github.com/cwbudde/algo-fht/internal/fhtypes"
)

// Transform applies the Hadamard transform of order len(buf) to buf in
// place. len(buf) must be a supported size base*2^k. The composed matrix
// is M_base (x) H_{2^k} under the index convention i = a*2^k + b: the
// power-of-two butterfly runs over each of the base contiguous chunks of
// length 2^k, then the base kernel runs across the strided lanes. The two
// passes act on orthogonal axes of the Kronecker structure, so their order
// is interchangeable; this implementation fixes butterfly-first.
func Transform[T fhtypes.Float](buf []T, base fhtypes.Base, features cpu.Features) {
	m := matrixFor(base)
	if m == nil {
		Pow2(buf, features)
		return
	}

	stride := len(buf) / m.n
	for c := 0; c < m.n; c++ {
		Pow2(buf[c*stride:(c+1)*stride], features)
	}

	applyBaseStrided(m, buf, stride)
}
