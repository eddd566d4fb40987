//go:build (ppc64 || ppc64le) && !noasm

package hwy

import (
	"github.com/go-highway/lanes/hwy/isa"
	"golang.org/x/sys/cpu"
)

type (
	activeBackend = altivecBackend
	nativeReg     = isa.Reg128
)

const currentLevel = DispatchAltiVec

const hardwareBackend = false

var active activeBackend

// The AltiVec backend relies on POWER8 doubleword shifts (vsld).
func hostSupported() bool {
	return cpu.PPC64.IsPOWER8
}
