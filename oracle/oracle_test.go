package oracle

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	algofht "github.com/cwbudde/algo-fht"
)

func TestSylvesterDense_SmallOrders(t *testing.T) {
	t.Parallel()

	h2 := sylvesterDense(2)
	want2 := [][]float64{{1, 1}, {1, -1}}

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if h2.At(i, j) != want2[i][j] {
				t.Errorf("H2[%d][%d] = %v, want %v", i, j, h2.At(i, j), want2[i][j])
			}
		}
	}

	// H_n entries are (-1)^popcount(i&j).
	h8 := sylvesterDense(8)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			want := 1.0
			if popcount(i&j)%2 == 1 {
				want = -1.0
			}

			if h8.At(i, j) != want {
				t.Errorf("H8[%d][%d] = %v, want %v", i, j, h8.At(i, j), want)
			}
		}
	}
}

func popcount(v int) int {
	c := 0
	for v != 0 {
		c += v & 1
		v >>= 1
	}

	return c
}

func TestDense_SymmetricInvolution(t *testing.T) {
	t.Parallel()

	cases := []struct {
		base algofht.Base
		n    int
	}{
		{algofht.Base1, 16},
		{algofht.Base12, 12},
		{algofht.Base12, 48},
		{algofht.Base20, 40},
		{algofht.Base28, 28},
		{algofht.Base40, 80},
	}

	for _, tc := range cases {
		h, err := Dense(tc.base, tc.n)
		if err != nil {
			t.Fatalf("Dense(%v, %d) failed: %v", tc.base, tc.n, err)
		}

		r, c := h.Dims()
		if r != tc.n || c != tc.n {
			t.Fatalf("Dense(%v, %d) dims = (%d, %d)", tc.base, tc.n, r, c)
		}

		for i := 0; i < tc.n; i++ {
			for j := 0; j < tc.n; j++ {
				if h.At(i, j) != h.At(j, i) {
					t.Fatalf("base=%v n=%d: matrix not symmetric at (%d, %d)", tc.base, tc.n, i, j)
				}
			}
		}

		var sq mat.Dense
		sq.Mul(h, h)

		for i := 0; i < tc.n; i++ {
			for j := 0; j < tc.n; j++ {
				want := 0.0
				if i == j {
					want = float64(tc.n)
				}

				if math.Abs(sq.At(i, j)-want) > 1e-9 {
					t.Fatalf("base=%v n=%d: (H*H)[%d][%d] = %v, want %v",
						tc.base, tc.n, i, j, sq.At(i, j), want)
				}
			}
		}
	}
}

func TestDense_InvalidArguments(t *testing.T) {
	t.Parallel()

	if _, err := Dense(algofht.Base1, 24); err == nil {
		t.Error("Dense(Base1, 24) succeeded, want error for non-power-of-two order")
	}

	if _, err := Dense(algofht.Base12, 30); err == nil {
		t.Error("Dense(Base12, 30) succeeded, want error for unsupported order")
	}

	if _, err := Dense(algofht.Base(5), 20); err == nil {
		t.Error("Dense(Base(5), 20) succeeded, want error for invalid base")
	}
}

func TestMulVec_Validation(t *testing.T) {
	t.Parallel()

	o := &gonumOracle{dense: make(map[int]*mat.Dense)}

	if _, err := o.MulVec(8, make([]float64, 4)); err == nil {
		t.Error("MulVec(8, len 4) succeeded, want length mismatch error")
	}

	if _, err := o.MulVec(12, make([]float64, 12)); err == nil {
		t.Error("MulVec(12) succeeded, want non-power-of-two error")
	}
}

func TestMulVec_Impulse(t *testing.T) {
	t.Parallel()

	o := &gonumOracle{dense: make(map[int]*mat.Dense)}

	x := make([]float64, 16)
	x[0] = 1

	y, err := o.MulVec(16, x)
	if err != nil {
		t.Fatalf("MulVec() failed: %v", err)
	}

	for i, v := range y {
		if v != 1 {
			t.Errorf("y[%d] = %v, want 1", i, v)
		}
	}
}
