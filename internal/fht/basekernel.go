package fht

import "github.com/cwbudde/algo-fht/internal/fhtypes"

// applyBaseStrided multiplies each of the stride lanes of buf by the base
// kernel matrix m. Lane b consists of the elements buf[b+a*stride] for
// a in [0, m.n); len(buf) must equal m.n*stride. The multiply is a pure
// sign-sum: no floating multiplications are performed.
func applyBaseStrided[T fhtypes.Float](m *baseMatrix, buf []T, stride int) {
	var lane [MaxBase]T

	n := m.n
	for b := 0; b < stride; b++ {
		for a := 0; a < n; a++ {
			lane[a] = buf[b+a*stride]
		}

		for r := 0; r < n; r++ {
			row := m.signs[r*n : r*n+n]

			acc := lane[0]
			if row[0] < 0 {
				acc = -acc
			}

			for c := 1; c < n; c++ {
				if row[c] > 0 {
					acc += lane[c]
				} else {
					acc -= lane[c]
				}
			}

			buf[b+r*stride] = acc
		}
	}
}
