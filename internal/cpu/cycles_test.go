package cpu

import (
	"testing"
	"time"
)

func TestCyclesMonotonic(t *testing.T) {
	t.Parallel()

	start := Cycles()
	time.Sleep(time.Millisecond)
	elapsed := CyclesSince(start)

	if elapsed <= 0 {
		t.Fatalf("CyclesSince = %d, want > 0", elapsed)
	}
}

func TestCyclesToNanosecondsRoughlyTracksWallClock(t *testing.T) {
	t.Parallel()

	const sleep = 20 * time.Millisecond

	start := Cycles()
	time.Sleep(sleep)
	ns := CyclesToNanoseconds(CyclesSince(start))

	// Sleep can overshoot considerably under load; only check the
	// order of magnitude.
	if ns < sleep.Nanoseconds()/2 {
		t.Fatalf("converted %v, want at least %v", time.Duration(ns), sleep/2)
	}

	if ns > 100*sleep.Nanoseconds() {
		t.Fatalf("converted %v, implausibly large for a %v sleep", time.Duration(ns), sleep)
	}
}

func TestCyclesToNanosecondsZero(t *testing.T) {
	t.Parallel()

	if got := CyclesToNanoseconds(0); got != 0 {
		t.Fatalf("CyclesToNanoseconds(0) = %d, want 0", got)
	}
}
