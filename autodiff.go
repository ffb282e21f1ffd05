package algofht

// Fn couples the forward transform with its vector-Jacobian product for
// use with reverse-mode differentiation. The transform matrix H is
// symmetric, so the backward pass multiplies the upstream gradient by
// its transpose, which is H itself: Backward is the forward operation
// re-applied to the gradient, including the scale multiplier.
//
// Scale and base are configuration captured at construction, not
// gradient-bearing inputs; no gradient is ever produced for them. One Fn
// covers every base factor — there is no per-base wrapper type.
//
// Fn carries no tape and no global state. An engine that records
// operations registers the (Forward, Backward) pair as the op's closures;
// without an engine, Backward can be invoked manually.
type Fn[T Float] struct {
	plan  *Plan[T]
	scale T
}

// NewFn creates a differentiation-ready transform for rows of length dim
// with the given base factor and scale.
func NewFn[T Float](dim int, base Base, scale T) (*Fn[T], error) {
	if !isFiniteScale(scale) {
		return nil, ErrInvalidScale
	}

	plan, err := NewVariantPlan[T](dim, base)
	if err != nil {
		return nil, err
	}

	return &Fn[T]{plan: plan, scale: scale}, nil
}

// Len returns the row length the Fn was built for.
func (f *Fn[T]) Len() int {
	return f.plan.Len()
}

// Forward computes y = H*x * scale into dst.
func (f *Fn[T]) Forward(dst, x []T) error {
	return f.plan.Forward(dst, x, f.scale)
}

// ForwardInPlace computes the forward pass in x's storage.
// See Plan.InPlace for the padding capacity requirement.
func (f *Fn[T]) ForwardInPlace(x []T) error {
	return f.plan.InPlace(x, f.scale)
}

// Backward computes the input gradient dx = H*dout * scale into dst,
// given the upstream gradient dout of the forward output.
func (f *Fn[T]) Backward(dst, dout []T) error {
	return f.plan.Forward(dst, dout, f.scale)
}

// BackwardInPlace computes the backward pass in dout's storage.
func (f *Fn[T]) BackwardInPlace(dout []T) error {
	return f.plan.InPlace(dout, f.scale)
}
