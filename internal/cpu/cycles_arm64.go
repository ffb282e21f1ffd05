//go:build arm64 && !purego

package cpu

// readCycles reads the virtual counter CNTVCT_EL0.
// Implemented in cycles_arm64.s.
//
//go:noescape
func readCycles() int64

// counterFrequency reads the fixed counter frequency CNTFRQ_EL0.
// Implemented in cycles_arm64.s.
//
//go:noescape
func counterFrequency() int64
