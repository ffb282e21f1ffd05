package algofht

import (
	"math"

	"github.com/cwbudde/algo-fht/internal/cpu"
	"github.com/cwbudde/algo-fht/internal/fht"
)

// Plan holds the resolved geometry and scratch storage for transforms of a
// fixed row length. Creating a plan validates the length and base once;
// transform calls only validate their slices.
//
// A Plan is not safe for concurrent use: every call shares the plan's
// scratch buffer. Use NewExecutor to obtain independent clones for
// concurrent callers, or BatchForward which does so internally.
type Plan[T Float] struct {
	dim      int
	base     Base
	padded   int
	pad      int
	features cpu.Features
	scratch  []T
}

// NewPlan creates a plan for rows of length dim using the plain
// power-of-two transform. Rows whose length is not a power of two are
// implicitly zero-padded to the next power of two.
func NewPlan[T Float](dim int) (*Plan[T], error) {
	return NewVariantPlan[T](dim, Base1)
}

// NewVariantPlan creates a plan for rows of length dim using the transform
// of size base*2^k, padding dim up to the smallest such size.
func NewVariantPlan[T Float](dim int, base Base) (*Plan[T], error) {
	padded, pad, err := fht.Resolve(dim, base)
	if err != nil {
		return nil, err
	}

	return &Plan[T]{
		dim:      dim,
		base:     base,
		padded:   padded,
		pad:      pad,
		features: cpu.DetectFeatures(),
		scratch:  make([]T, padded),
	}, nil
}

// NewPlan32 creates a power-of-two plan for float32 rows.
func NewPlan32(dim int) (*Plan[float32], error) {
	return NewPlan[float32](dim)
}

// NewPlan64 creates a power-of-two plan for float64 rows.
func NewPlan64(dim int) (*Plan[float64], error) {
	return NewPlan[float64](dim)
}

// Len returns the caller-visible row length.
func (p *Plan[T]) Len() int {
	return p.dim
}

// PaddedLen returns the resolved transform size base*2^k.
func (p *Plan[T]) PaddedLen() int {
	return p.padded
}

// Pad returns the number of implicit zero entries appended to each row.
func (p *Plan[T]) Pad() int {
	return p.pad
}

// Base returns the plan's base factor.
func (p *Plan[T]) Base() Base {
	return p.base
}

// Forward transforms src into dst out of place: dst = H*src * scale,
// truncated to Len() elements. src is left unmodified unless dst aliases
// it; the transform itself runs in the plan's scratch, so aliasing is safe.
//
// Returns ErrNilSlice, ErrLengthMismatch or ErrInvalidScale; on error dst
// is untouched.
func (p *Plan[T]) Forward(dst, src []T, scale T) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) < p.dim || len(src) < p.dim {
		return ErrLengthMismatch
	}

	if !isFiniteScale(scale) {
		return ErrInvalidScale
	}

	w := p.scratch
	copy(w, src[:p.dim])
	clear(w[p.dim:])

	p.run(w, scale)
	copy(dst[:p.dim], w)

	return nil
}

// InPlace transforms data in place. The first Len() elements hold the
// truncated result; when padding is required the region data[Len():padded]
// is used as workspace and clobbered.
//
// When Pad() > 0 the buffer's capacity must cover the padded length, or
// the call fails with ErrBufferTooSmall before mutating anything. There is
// no silent fallback to a temporary buffer: in-place means the caller's
// storage, or an error.
func (p *Plan[T]) InPlace(data []T, scale T) error {
	if data == nil {
		return ErrNilSlice
	}

	if len(data) < p.dim {
		return ErrLengthMismatch
	}

	if !isFiniteScale(scale) {
		return ErrInvalidScale
	}

	if cap(data) < p.padded {
		return ErrBufferTooSmall
	}

	w := data[:p.padded]
	clear(w[p.dim:])
	p.run(w, scale)

	return nil
}

// run executes the transform and scale over a padded buffer. Both the
// in-place and out-of-place paths funnel through here, so for identical
// input content they perform the identical floating-point op sequence.
func (p *Plan[T]) run(w []T, scale T) {
	fht.Transform(w, p.base, p.features)

	if scale != 1 {
		for i := range w {
			w[i] *= scale
		}
	}
}

func isFiniteScale[T Float](scale T) bool {
	s := float64(scale)

	return !math.IsNaN(s) && !math.IsInf(s, 0)
}
