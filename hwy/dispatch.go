package hwy

import (
	"fmt"
	"strings"
	"unsafe"
)

// DispatchLevel identifies a backend: the instruction set an operation is
// expressed in.
type DispatchLevel int

const (
	// DispatchScalar is the null backend: the element-wise reference
	// evaluator, pure Go.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit). Sequences that
	// only need 128 bits use the SSE2 forms.
	DispatchAVX2

	// DispatchNEON indicates ARM NEON instructions (128-bit).
	DispatchNEON

	// DispatchAltiVec indicates POWER AltiVec/VMX instructions (128-bit,
	// POWER8 baseline).
	DispatchAltiVec
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchNEON:
		return "neon"
	case DispatchAltiVec:
		return "altivec"
	default:
		return "unknown"
	}
}

// Width returns the register width of the level in bytes.
func (d DispatchLevel) Width() int {
	if d == DispatchAVX2 {
		return 32
	}
	return 16
}

// ParseDispatchLevel parses the name printed by DispatchLevel.String.
// "null" is accepted as an alias of "scalar".
func ParseDispatchLevel(name string) (DispatchLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "scalar", "null":
		return DispatchScalar, nil
	case "sse2":
		return DispatchSSE2, nil
	case "avx2":
		return DispatchAVX2, nil
	case "neon":
		return DispatchNEON, nil
	case "altivec", "vmx":
		return DispatchAltiVec, nil
	}
	return 0, fmt.Errorf("hwy: unknown dispatch level %q", name)
}

// NativeBytes is the register width in bytes of the compiled-in backend:
// 32 for AVX2, 16 for everything else.
const NativeBytes = int(unsafe.Sizeof(nativeReg{}))

// CurrentLevel returns the compiled-in backend. It never changes at run
// time; the backend is selected by GOARCH and build tags.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2.
func CurrentWidth() int {
	return NativeBytes
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// HardwareInstructions reports whether the compiled-in backend issues real
// vector instructions. It is false for the scalar backend and for backends
// that run instruction models, which compute the same results in pure Go.
func HardwareInstructions() bool {
	return hardwareBackend
}

// HostSupported reports whether the CPU running the program implements the
// compiled-in instruction set. It is diagnostic only: operations never
// consult it.
func HostSupported() bool {
	return hostSupported()
}
