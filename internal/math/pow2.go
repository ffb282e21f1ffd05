package math

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOf2 returns the smallest power of two >= n.
// n must be positive and small enough that the result does not overflow.
func NextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// Log2 returns floor(log2(n)) for positive n.
func Log2(n int) int {
	k := 0
	for n > 1 {
		n >>= 1
		k++
	}

	return k
}
