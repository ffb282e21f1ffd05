package algofht

import (
	"sync"

	m "github.com/cwbudde/algo-fht/internal/math"
)

// Oracle is the dense linear-algebra facility backing TransformReference.
// MulVec left-multiplies x by the explicit dense Hadamard matrix of order
// n, where n is a power of two and len(x) == n.
//
// The facility is a registered capability rather than a hard dependency:
// the fast path never needs it, so it is wired up only when the oracle
// subpackage is imported (typically from tests).
type Oracle interface {
	MulVec(n int, x []float64) ([]float64, error)
}

var (
	oracleMu sync.RWMutex
	oracle   Oracle
)

// RegisterOracle installs the dense-matrix backend used by
// TransformReference. The oracle subpackage calls this from its init;
// passing nil unregisters the current backend.
func RegisterOracle(o Oracle) {
	oracleMu.Lock()
	defer oracleMu.Unlock()

	oracle = o
}

func registeredOracle() Oracle {
	oracleMu.RLock()
	defer oracleMu.RUnlock()

	return oracle
}

// TransformReference computes Transform through an explicit dense
// Hadamard matrix product: x is zero-padded to the next power of two,
// multiplied by the dense matrix, scaled, and truncated back to len(x).
//
// This path exists solely to validate the fast path in tests; it is
// O(n^2) and must not be used for production throughput. It returns
// ErrOracleUnavailable unless a dense backend has been registered.
func TransformReference[T Float](x []T, scale T) ([]T, error) {
	o := registeredOracle()
	if o == nil {
		return nil, ErrOracleUnavailable
	}

	if x == nil {
		return nil, ErrNilSlice
	}

	if len(x) == 0 {
		return nil, ErrInvalidLength
	}

	if !isFiniteScale(scale) {
		return nil, ErrInvalidScale
	}

	padded := m.NextPowerOf2(len(x))

	row := make([]float64, padded)
	for i, v := range x {
		row[i] = float64(v)
	}

	y, err := o.MulVec(padded, row)
	if err != nil {
		return nil, err
	}

	out := make([]T, len(x))
	for i := range out {
		out[i] = T(y[i] * float64(scale))
	}

	return out, nil
}
