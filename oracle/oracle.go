// Package oracle provides the dense linear-algebra backend for
// algofht.TransformReference, built on gonum's mat package.
//
// Importing this package registers the backend:
//
//	import _ "github.com/cwbudde/algo-fht/oracle"
//
// The dense matrices here are the ground truth the fast butterfly and
// Kronecker paths are tested against; nothing in this package is a
// production path.
package oracle

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	algofht "github.com/cwbudde/algo-fht"
	"github.com/cwbudde/algo-fht/internal/fht"
	m "github.com/cwbudde/algo-fht/internal/math"
)

func init() {
	algofht.RegisterOracle(&gonumOracle{dense: make(map[int]*mat.Dense)})
}

// gonumOracle caches the Sylvester Hadamard matrix per order.
type gonumOracle struct {
	mu    sync.Mutex
	dense map[int]*mat.Dense
}

// MulVec left-multiplies x by the dense order-n Hadamard matrix.
func (o *gonumOracle) MulVec(n int, x []float64) ([]float64, error) {
	if len(x) != n {
		return nil, fmt.Errorf("oracle: vector length %d does not match order %d", len(x), n)
	}

	h, err := o.sylvester(n)
	if err != nil {
		return nil, err
	}

	var y mat.VecDense
	y.MulVec(h, mat.NewVecDense(n, x))

	out := make([]float64, n)
	copy(out, y.RawVector().Data)

	return out, nil
}

func (o *gonumOracle) sylvester(n int) (*mat.Dense, error) {
	if !m.IsPowerOf2(n) {
		return nil, fmt.Errorf("oracle: order %d is not a power of two", n)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if h, ok := o.dense[n]; ok {
		return h, nil
	}

	h := sylvesterDense(n)
	o.dense[n] = h

	return h, nil
}

// sylvesterDense builds H_n by Kronecker doubling from H_2, matching the
// recursion H_{2m} = [[H_m, H_m], [H_m, -H_m]] the butterfly unrolls.
func sylvesterDense(n int) *mat.Dense {
	h := mat.NewDense(1, 1, []float64{1})
	h2 := mat.NewDense(2, 2, []float64{1, 1, 1, -1})

	for size := 1; size < n; size *= 2 {
		var next mat.Dense
		next.Kronecker(h2, h)
		h = &next
	}

	return h
}

// Dense returns the explicit transform matrix of order n for the given
// base factor, composed as M_base (x) H_{n/base}. n must be a supported
// size base*2^k. The matrix is symmetric and satisfies M*M = n*I; tests
// use it to check every composition path against a direct product.
func Dense(base algofht.Base, n int) (*mat.Dense, error) {
	signs := fht.BaseSigns(base)
	if signs == nil {
		if base != algofht.Base1 {
			return nil, algofht.ErrInvalidBase
		}

		if !m.IsPowerOf2(n) {
			return nil, algofht.ErrInvalidLength
		}

		return sylvesterDense(n), nil
	}

	b := int(base)
	if n%b != 0 || !m.IsPowerOf2(n/b) {
		return nil, algofht.ErrInvalidLength
	}

	data := make([]float64, b*b)
	for i, s := range signs {
		data[i] = float64(s)
	}

	var out mat.Dense
	out.Kronecker(mat.NewDense(b, b, data), sylvesterDense(n/b))

	return &out, nil
}
