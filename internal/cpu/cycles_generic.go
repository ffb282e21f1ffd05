//go:build (!amd64 && !arm64) || purego

package cpu

import "time"

// readCycles falls back to the wall clock; readings are nanoseconds.
func readCycles() int64 {
	return time.Now().UnixNano()
}

// counterFrequency returns 0 so conversion treats readings as
// nanoseconds directly.
func counterFrequency() int64 {
	return 0
}
