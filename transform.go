package algofht

// Transform multiplies the row x by the Hadamard transform matrix and by
// scale. If len(x) is not a power of two, x is implicitly zero-padded to
// the next power of two and the result truncated back.
//
// With inplace=false a fresh buffer is returned and x is left unmodified.
// With inplace=true the result is written into x's storage and x itself is
// returned; when padding is required, cap(x) must cover the padded length
// (see Plan.InPlace) or the call fails with ErrBufferTooSmall.
func Transform[T Float](x []T, scale T, inplace bool) ([]T, error) {
	return TransformVariant(x, Base1, scale, inplace)
}

// TransformVariant is Transform for sizes of the form base * 2^k: x is
// implicitly zero-padded to the next base * 2^k and the result truncated
// back to len(x).
func TransformVariant[T Float](x []T, base Base, scale T, inplace bool) ([]T, error) {
	if x == nil {
		return nil, ErrNilSlice
	}

	p, err := NewVariantPlan[T](len(x), base)
	if err != nil {
		return nil, err
	}

	if inplace {
		if err := p.InPlace(x, scale); err != nil {
			return nil, err
		}

		return x, nil
	}

	out := make([]T, len(x))
	if err := p.Forward(out, x, scale); err != nil {
		return nil, err
	}

	return out, nil
}
