package algofht

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minParallelRows is the batch size below which BatchForward stays on the
// calling goroutine. Small batches don't amortize the executor clones.
const minParallelRows = 16

// BatchForward transforms rows independent rows of length Len(), stored
// contiguously in src, into dst. Every row is padded, transformed, scaled
// and truncated independently; rows above minParallelRows are distributed
// over runtime.GOMAXPROCS workers, each with a private executor.
func (p *Plan[T]) BatchForward(dst, src []T, rows int, scale T) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if rows < 0 || len(dst) < rows*p.dim || len(src) < rows*p.dim {
		return ErrLengthMismatch
	}

	if !isFiniteScale(scale) {
		return ErrInvalidScale
	}

	if rows < minParallelRows {
		for r := 0; r < rows; r++ {
			off := r * p.dim
			if err := p.Forward(dst[off:off+p.dim], src[off:off+p.dim], scale); err != nil {
				return err
			}
		}

		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > rows {
		workers = rows
	}

	chunk := (rows + workers - 1) / workers

	var g errgroup.Group

	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, rows)

		if start >= end {
			break
		}

		ex := p.NewExecutor()

		g.Go(func() error {
			for r := start; r < end; r++ {
				off := r * p.dim
				if err := ex.Forward(dst[off:off+p.dim], src[off:off+p.dim], scale); err != nil {
					return err
				}
			}

			return nil
		})
	}

	return g.Wait()
}

// BatchInPlace transforms rows contiguous rows of length Len() in place.
// Contiguous rows leave no room for per-row padding, so the plan's pad
// must be zero; otherwise the call fails with ErrBufferTooSmall before
// touching the data.
func (p *Plan[T]) BatchInPlace(data []T, rows int, scale T) error {
	if data == nil {
		return ErrNilSlice
	}

	if rows < 0 || len(data) < rows*p.dim {
		return ErrLengthMismatch
	}

	if !isFiniteScale(scale) {
		return ErrInvalidScale
	}

	if p.pad != 0 {
		return ErrBufferTooSmall
	}

	if rows < minParallelRows {
		for r := 0; r < rows; r++ {
			off := r * p.dim
			if err := p.InPlace(data[off:off+p.dim:off+p.dim], scale); err != nil {
				return err
			}
		}

		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > rows {
		workers = rows
	}

	chunk := (rows + workers - 1) / workers

	var g errgroup.Group

	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, rows)

		if start >= end {
			break
		}

		ex := p.NewExecutor()

		g.Go(func() error {
			for r := start; r < end; r++ {
				off := r * p.dim
				if err := ex.InPlace(data[off:off+p.dim:off+p.dim], scale); err != nil {
					return err
				}
			}

			return nil
		})
	}

	return g.Wait()
}
