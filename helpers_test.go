package algofht

import (
	"math"
	"math/bits"
)

// denseHadamardRef computes y[i] = sum_j (-1)^popcount(i&j) x[j] for a
// power-of-two length, the exact dense product the fast path must match.
func denseHadamardRef(x []float64) []float64 {
	n := len(x)
	y := make([]float64, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if bits.OnesCount(uint(i&j))%2 == 0 {
				y[i] += x[j]
			} else {
				y[i] -= x[j]
			}
		}
	}

	return y
}

func absDiff(a, b float64) float64 {
	return math.Abs(a - b)
}
