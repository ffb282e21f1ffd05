package math

import "testing"

func TestIsPowerOf2(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n    int
		want bool
	}{
		{-4, false},
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{4, true},
		{12, false},
		{1024, true},
		{1 << 26, true},
		{(1 << 26) - 1, false},
	}

	for _, tc := range cases {
		if got := IsPowerOf2(tc.n); got != tc.want {
			t.Errorf("IsPowerOf2(%d) = %v, want %v", tc.n, got, tc.want)
		}
	}
}

func TestNextPowerOf2(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n    int
		want int
	}{
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 8},
		{100, 128},
		{128, 128},
		{129, 256},
	}

	for _, tc := range cases {
		if got := NextPowerOf2(tc.n); got != tc.want {
			t.Errorf("NextPowerOf2(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestLog2(t *testing.T) {
	t.Parallel()

	for k := 0; k <= 26; k++ {
		if got := Log2(1 << k); got != k {
			t.Errorf("Log2(%d) = %d, want %d", 1<<k, got, k)
		}
	}

	if got := Log2(24); got != 4 {
		t.Errorf("Log2(24) = %d, want 4", got)
	}
}
