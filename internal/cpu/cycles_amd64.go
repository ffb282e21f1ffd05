//go:build amd64 && !purego

package cpu

// readCycles reads the timestamp counter via RDTSC.
// Implemented in cycles_amd64.s.
//
//go:noescape
func readCycles() int64

// counterFrequency returns 0 on amd64; the TSC rate is calibrated
// against the wall clock instead.
func counterFrequency() int64 {
	return 0
}
