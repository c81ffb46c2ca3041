package vector

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectWidth is replaced in tests.
var detectWidth = laneWidth

// laneWidth returns the float32 SIMD width of the running CPU, or 0 when the
// CPU has no SIMD unit this backend targets.
func laneWidth() int {
	switch runtime.GOARCH {
	case "amd64":
		if cpu.X86.HasAVX2 {
			return 8
		}
		if cpu.X86.HasSSE2 {
			return 4
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			return 4
		}
	}
	return 0
}

// Features lists the SIMD-related CPU features detected on this machine.
func Features() []string {
	var f []string
	switch runtime.GOARCH {
	case "amd64":
		for _, feat := range []struct {
			name string
			ok   bool
		}{
			{"sse2", cpu.X86.HasSSE2},
			{"sse41", cpu.X86.HasSSE41},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"fma", cpu.X86.HasFMA},
			{"avx512f", cpu.X86.HasAVX512F},
		} {
			if feat.ok {
				f = append(f, feat.name)
			}
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			f = append(f, "asimd")
		}
		if cpu.ARM64.HasFP {
			f = append(f, "fp")
		}
	}
	return f
}
