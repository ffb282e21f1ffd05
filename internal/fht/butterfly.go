package fht

import (
	"github.com/cwbudde/algo-fht/internal/cpu"
	"github.com/cwbudde/algo-fht/internal/fhtypes"
)

// Pow2 applies the Walsh-Hadamard butterfly to buf in place.
// len(buf) must be a power of two. After the call buf holds H_n * buf
// where H_n is the order-n Sylvester Hadamard matrix.
func Pow2[T fhtypes.Float](buf []T, features cpu.Features) {
	n := len(buf)
	if n < 2 {
		return
	}

	if !features.ForceGeneric {
		if k := selectKernel[T](n); k != nil && k(buf) {
			return
		}

		if n >= 32 {
			// Cover the first four stages with the unrolled size-16
			// codelet, then finish with the staged loop.
			for i := 0; i < n; i += 16 {
				wht16(buf[i : i+16])
			}

			stages(buf, 16)

			return
		}
	}

	stages(buf, 1)
}

// stages runs the butterfly from half-block size h0 upward. Each stage
// pairs element j of a block's first half with element j+h of its second
// half and replaces (a, b) with (a+b, a-b). Stage s+1 reads values written
// by stage s, so the loop order is the required ordering barrier.
func stages[T fhtypes.Float](buf []T, h0 int) {
	n := len(buf)
	for h := h0; h < n; h <<= 1 {
		for i := 0; i < n; i += h << 1 {
			for j := i; j < i+h; j++ {
				a, b := buf[j], buf[j+h]
				buf[j], buf[j+h] = a+b, a-b
			}
		}
	}
}
