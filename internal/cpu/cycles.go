package cpu

import "time"

// Cycles reads the CPU cycle counter (TSC on amd64, CNTVCT_EL0 on
// arm64). Platforms without a counter fall back to the monotonic
// clock, in which case readings are already nanoseconds.
func Cycles() int64 {
	return readCycles()
}

// CyclesSince returns the cycles elapsed since start.
func CyclesSince(start int64) int64 {
	return readCycles() - start
}

// CyclesToNanoseconds converts an elapsed cycle count to approximate
// nanoseconds using the calibration performed at package init. The
// result is only suitable for reporting.
func CyclesToNanoseconds(cycles int64) int64 {
	if counterFrequencyHz != 0 {
		return (cycles * 1_000_000_000) / counterFrequencyHz
	}

	if cyclesPerNanosecond == 0 {
		return cycles
	}

	return cycles / cyclesPerNanosecond
}

// cyclesPerNanosecond holds the calibrated TSC rate on amd64.
var cyclesPerNanosecond int64

// counterFrequencyHz holds the fixed counter frequency on arm64
// (CNTFRQ_EL0). Zero everywhere else.
var counterFrequencyHz int64

func init() {
	counterFrequencyHz = counterFrequency()
	if counterFrequencyHz == 0 {
		calibrate()
	}
}

// calibrate estimates cycles per nanosecond by spinning for a short,
// known wall-clock interval. Used where no frequency register exists.
func calibrate() {
	const window = 10 * time.Millisecond

	start := time.Now()
	startCycles := readCycles()

	for time.Since(start) < window {
	}

	cycles := readCycles() - startCycles
	ns := time.Since(start).Nanoseconds()

	if ns > 0 && cycles > 0 {
		cyclesPerNanosecond = cycles / ns
	}
}
