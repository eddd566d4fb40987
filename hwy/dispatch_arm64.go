//go:build arm64 && !noasm

package hwy

import (
	"github.com/go-highway/lanes/hwy/isa"
	"golang.org/x/sys/cpu"
)

type (
	activeBackend = neonBackend
	nativeReg     = isa.Reg128
)

const currentLevel = DispatchNEON

const hardwareBackend = false

var active activeBackend

// ARM64 (AArch64) always has NEON (ASIMD); it is part of the ARMv8-A base
// architecture.
func hostSupported() bool {
	return cpu.ARM64.HasASIMD
}
