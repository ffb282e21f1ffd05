package fht

import (
	"fmt"

	"github.com/cwbudde/algo-fht/internal/fhtypes"
)

// The base-factor kernels are fixed symmetric Hadamard-equivalent matrices
// M of order 12, 20, 28 and 40, each satisfying M*M = order*I. Orders 12,
// 20 and 28 come from Paley's second construction over GF(5), GF(9) and
// GF(13); order 40 is H_2 (x) M_20. Rows are encoded as '+'/'-' strings
// and decoded once at package init.

// hadamardRows12 encodes the symmetric Hadamard-equivalent matrix of order 12.
var hadamardRows12 = [12]string{
	"+-++++++++++",
	"--+-+-+-+-+-",
	"+++-++----++",
	"+---+--+-++-",
	"+++++-++----",
	"+-+---+--+-+",
	"++--+++-++--",
	"+--++---+--+",
	"++----+++-++",
	"+--+-++---+-",
	"++++----+++-",
	"+-+--+-++---",
}

// hadamardRows20 encodes the symmetric Hadamard-equivalent matrix of order 20.
var hadamardRows20 = [20]string{
	"+-++++++++++++++++++",
	"--+-+-+-+-+-+-+-+-+-",
	"+++-++++++----++----",
	"+---+-+-+--+-++--+-+",
	"+++++-++--++----++--",
	"+-+---+--++--+-++--+",
	"+++++++-----++----++",
	"+-+-+----+-++--+-++-",
	"++++----+-++++++----",
	"+-+--+-+--+-+-+--+-+",
	"++--++--+++-++--++--",
	"+--++--++---+--++--+",
	"++----+++++++-----++",
	"+--+-++-+-+----+-++-",
	"++++----++----+-++++",
	"+-+--+-++--+-+--+-+-",
	"++--++----++--+++-++",
	"+--++--+-++--++---+-",
	"++----++----+++++++-",
	"+--+-++--+-++-+-+---",
}

// hadamardRows28 encodes the symmetric Hadamard-equivalent matrix of order 28.
var hadamardRows28 = [28]string{
	"+-++++++++++++++++++++++++++",
	"--+-+-+-+-+-+-+-+-+-+-+-+-+-",
	"+++-++--++++--------++++--++",
	"+---+--++-+--+-+-+-++-+--++-",
	"+++++-++--++++--------++++--",
	"+-+---+--++-+--+-+-+-++-+--+",
	"++--+++-++--++++--------++++",
	"+--++---+--++-+--+-+-+-++-+-",
	"++++--+++-++--++++--------++",
	"+-+--++---+--++-+--+-+-+-++-",
	"++++++--+++-++--++++--------",
	"+-+-+--++---+--++-+--+-+-+-+",
	"++--++++--+++-++--++++------",
	"+--++-+--++---+--++-+--+-+-+",
	"++----++++--+++-++--++++----",
	"+--+-++-+--++---+--++-+--+-+",
	"++------++++--+++-++--++++--",
	"+--+-+-++-+--++---+--++-+--+",
	"++--------++++--+++-++--++++",
	"+--+-+-+-++-+--++---+--++-+-",
	"++++--------++++--+++-++--++",
	"+-+--+-+-+-++-+--++---+--++-",
	"++++++--------++++--+++-++--",
	"+-+-+--+-+-+-++-+--++---+--+",
	"++--++++--------++++--+++-++",
	"+--++-+--+-+-+-++-+--++---+-",
	"++++--++++--------++++--+++-",
	"+-+--++-+--+-+-+-++-+--++---",
}

// hadamardRows40 encodes the symmetric Hadamard-equivalent matrix of order 40.
var hadamardRows40 = [40]string{
	"+-+++++++++++++++++++-++++++++++++++++++",
	"--+-+-+-+-+-+-+-+-+---+-+-+-+-+-+-+-+-+-",
	"+++-++++++----++----+++-++++++----++----",
	"+---+-+-+--+-++--+-++---+-+-+--+-++--+-+",
	"+++++-++--++----++--+++++-++--++----++--",
	"+-+---+--++--+-++--++-+---+--++--+-++--+",
	"+++++++-----++----+++++++++-----++----++",
	"+-+-+----+-++--+-++-+-+-+----+-++--+-++-",
	"++++----+-++++++----++++----+-++++++----",
	"+-+--+-+--+-+-+--+-++-+--+-+--+-+-+--+-+",
	"++--++--+++-++--++--++--++--+++-++--++--",
	"+--++--++---+--++--++--++--++---+--++--+",
	"++----+++++++-----++++----+++++++-----++",
	"+--+-++-+-+----+-++-+--+-++-+-+----+-++-",
	"++++----++----+-++++++++----++----+-++++",
	"+-+--+-++--+-+--+-+-+-+--+-++--+-+--+-+-",
	"++--++----++--+++-++++--++----++--+++-++",
	"+--++--+-++--++---+-+--++--+-++--++---+-",
	"++----++----+++++++-++----++----+++++++-",
	"+--+-++--+-++-+-+---+--+-++--+-++-+-+---",
	"+-++++++++++++++++++-+------------------",
	"--+-+-+-+-+-+-+-+-+-++-+-+-+-+-+-+-+-+-+",
	"+++-++++++----++-------+------++++--++++",
	"+---+-+-+--+-++--+-+-+++-+-+-++-+--++-+-",
	"+++++-++--++----++-------+--++--++++--++",
	"+-+---+--++--+-++--+-+-+++-++--++-+--++-",
	"+++++++-----++----++-------+++++--++++--",
	"+-+-+----+-++--+-++--+-+-++++-+--++-+--+",
	"++++----+-++++++--------++++-+------++++",
	"+-+--+-+--+-+-+--+-+-+-++-+-++-+-+-++-+-",
	"++--++--+++-++--++----++--++---+--++--++",
	"+--++--++---+--++--+-++--++--+++-++--++-",
	"++----+++++++-----++--++++-------+++++--",
	"+--+-++-+-+----+-++--++-+--+-+-++++-+--+",
	"++++----++----+-++++----++++--++++-+----",
	"+-+--+-++--+-+--+-+--+-++-+--++-+-++-+-+",
	"++--++----++--+++-++--++--++++--++---+--",
	"+--++--+-++--++---+--++--++-+--++--+++-+",
	"++----++----+++++++---++++--++++-------+",
	"+--+-++--+-++-+-+----++-+--++-+--+-+-+++",
}

// MaxBase is the largest supported base factor.
const MaxBase = 40

// baseMatrix holds a decoded order-n sign matrix in row-major order.
type baseMatrix struct {
	n     int
	signs []int8
}

var (
	base12 = mustDecode(hadamardRows12[:])
	base20 = mustDecode(hadamardRows20[:])
	base28 = mustDecode(hadamardRows28[:])
	base40 = mustDecode(hadamardRows40[:])
)

// matrixFor returns the decoded base kernel matrix, or nil for Base1.
func matrixFor(base fhtypes.Base) *baseMatrix {
	switch base {
	case fhtypes.Base12:
		return base12
	case fhtypes.Base20:
		return base20
	case fhtypes.Base28:
		return base28
	case fhtypes.Base40:
		return base40
	default:
		return nil
	}
}

// BaseSigns exposes the raw row-major sign table of a base kernel matrix.
// It returns nil for Base1 and unsupported bases. The slice is shared
// constant data and must not be modified.
func BaseSigns(base fhtypes.Base) []int8 {
	m := matrixFor(base)
	if m == nil {
		return nil
	}

	return m.signs
}

func mustDecode(rows []string) *baseMatrix {
	n := len(rows)
	signs := make([]int8, 0, n*n)

	for i, row := range rows {
		if len(row) != n {
			panic(fmt.Sprintf("algofht: malformed sign row %d: length %d, want %d", i, len(row), n))
		}

		for j := 0; j < n; j++ {
			switch row[j] {
			case '+':
				signs = append(signs, 1)
			case '-':
				signs = append(signs, -1)
			default:
				panic(fmt.Sprintf("algofht: malformed sign row %d: byte %q", i, row[j]))
			}
		}
	}

	return &baseMatrix{n: n, signs: signs}
}
