package algofht

// ForwardStrided transforms strided input/output data out of place.
//
// The stride parameter specifies the distance between consecutive row
// elements. For example, stride=numCols transforms a matrix column in
// row-major storage.
//
// Returns ErrNilSlice if dst or src is nil.
// Returns ErrInvalidStride if stride < 1 or overflows index computation.
// Returns ErrLengthMismatch if slices are too short for the given stride.
func (p *Plan[T]) ForwardStrided(dst, src []T, stride int, scale T) error {
	if err := p.validateStridedSlices(dst, src, stride); err != nil {
		return err
	}

	if !isFiniteScale(scale) {
		return ErrInvalidScale
	}

	if stride == 1 {
		return p.Forward(dst[:p.dim], src[:p.dim], scale)
	}

	w := p.scratch
	for i := 0; i < p.dim; i++ {
		w[i] = src[i*stride]
	}

	clear(w[p.dim:])
	p.run(w, scale)

	for i := 0; i < p.dim; i++ {
		dst[i*stride] = w[i]
	}

	return nil
}

func (p *Plan[T]) validateStridedSlices(dst, src []T, stride int) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if stride < 1 {
		return ErrInvalidStride
	}

	if stride == 1 {
		if len(dst) < p.dim || len(src) < p.dim {
			return ErrLengthMismatch
		}

		return nil
	}

	maxInt := int(^uint(0) >> 1)
	maxIndex := p.dim - 1
	if maxIndex > (maxInt-1)/stride {
		return ErrInvalidStride
	}

	required := 1 + maxIndex*stride
	if len(dst) < required || len(src) < required {
		return ErrLengthMismatch
	}

	return nil
}
