package algofht

// Executor wraps a clone of a Plan with private scratch storage, so that
// several goroutines can run transforms from one configured plan without
// sharing buffers.
type Executor[T Float] struct {
	plan *Plan[T]
}

// NewExecutor returns an executor backed by an independent copy of the
// plan. The clone shares the plan's immutable geometry but owns its own
// scratch buffer.
func (p *Plan[T]) NewExecutor() *Executor[T] {
	clone := *p
	clone.scratch = make([]T, p.padded)

	return &Executor[T]{plan: &clone}
}

// Forward transforms src into dst out of place. See Plan.Forward.
func (e *Executor[T]) Forward(dst, src []T, scale T) error {
	return e.plan.Forward(dst, src, scale)
}

// InPlace transforms data in place. See Plan.InPlace.
func (e *Executor[T]) InPlace(data []T, scale T) error {
	return e.plan.InPlace(data, scale)
}
