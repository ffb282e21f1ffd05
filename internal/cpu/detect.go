package cpu

import (
	"runtime"

	xcpu "golang.org/x/sys/cpu"
)

// Features describes CPU capabilities relevant to kernel selection.
// ForceGeneric disables all unrolled codelets; tests use it to compare
// codelet output against the staged reference path.
type Features struct {
	HasAVX2      bool
	HasAVX512    bool
	HasSSE2      bool
	HasNEON      bool
	ForceGeneric bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasAVX2:      xcpu.X86.HasAVX2,
		HasAVX512:    xcpu.X86.HasAVX512F,
		HasSSE2:      xcpu.X86.HasSSE2,
		HasNEON:      xcpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
