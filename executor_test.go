package algofht

import (
	"math/rand"
	"sync"
	"testing"
)

func TestNewExecutor_ClonesPlan(t *testing.T) {
	t.Parallel()

	plan, err := NewPlan64(64)
	if err != nil {
		t.Fatalf("NewPlan64(64) failed: %v", err)
	}

	executor := plan.NewExecutor()
	if executor == nil {
		t.Fatal("NewExecutor() returned nil")
	}

	if executor.plan == plan {
		t.Error("NewExecutor() did not clone the plan - executor shares plan with original")
	}

	if &executor.plan.scratch[0] == &plan.scratch[0] {
		t.Error("NewExecutor() shares scratch storage with the original plan")
	}
}

func TestExecutor_Forward(t *testing.T) {
	t.Parallel()

	plan, err := NewPlan64(128)
	if err != nil {
		t.Fatalf("NewPlan64(128) failed: %v", err)
	}

	executor := plan.NewExecutor()

	src := make([]float64, 128)
	src[0] = 1

	dst := make([]float64, 128)
	if err := executor.Forward(dst, src, 1); err != nil {
		t.Fatalf("executor.Forward() failed: %v", err)
	}

	for i, v := range dst {
		if v != 1 {
			t.Errorf("dst[%d] = %v, want 1", i, v)
		}
	}
}

func TestExecutor_ConcurrentForward(t *testing.T) {
	t.Parallel()

	plan, err := NewVariantPlan[float64](100, Base20)
	if err != nil {
		t.Fatalf("NewVariantPlan(100, Base20) failed: %v", err)
	}

	rnd := rand.New(rand.NewSource(16))

	src := make([]float64, 100)
	for i := range src {
		src[i] = rnd.NormFloat64()
	}

	want := make([]float64, 100)
	if err := plan.Forward(want, src, 1); err != nil {
		t.Fatalf("Forward() failed: %v", err)
	}

	const goroutines = 8

	var wg sync.WaitGroup

	results := make([][]float64, goroutines)

	for g := 0; g < goroutines; g++ {
		ex := plan.NewExecutor()
		out := make([]float64, 100)
		results[g] = out

		wg.Add(1)

		go func() {
			defer wg.Done()

			for iter := 0; iter < 50; iter++ {
				if err := ex.Forward(out, src, 1); err != nil {
					t.Errorf("executor.Forward() failed: %v", err)
					return
				}
			}
		}()
	}

	wg.Wait()

	for g, out := range results {
		for i := range out {
			if out[i] != want[i] {
				t.Errorf("goroutine %d: out[%d] = %v, want %v", g, i, out[i], want[i])
			}
		}
	}
}
