//go:build noasm || !(amd64 || arm64 || ppc64 || ppc64le)

package hwy

import "github.com/go-highway/lanes/hwy/isa"

// The null backend is used with the noasm tag and on architectures without
// a SIMD backend. It keeps 16-byte chunks so that chunk boundaries match the
// 128-bit backends.
type (
	activeBackend = nullBackend
	nativeReg     = isa.Reg128
)

const currentLevel = DispatchScalar

const hardwareBackend = false

var active activeBackend

func hostSupported() bool {
	return true
}
