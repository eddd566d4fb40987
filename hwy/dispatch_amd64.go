// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64 && !noasm && !hwy_avx2 && !goexperiment.simd

package hwy

import (
	"github.com/go-highway/lanes/hwy/isa"
	"golang.org/x/sys/cpu"
)

// SSE2 is part of the x86-64 baseline, so it is the default amd64 backend.
// Build with -tags hwy_avx2 for the 256-bit backend, and with
// GOEXPERIMENT=simd for the archsimd forms of both.
type (
	activeBackend = sse2Backend
	nativeReg     = isa.Reg128
)

const currentLevel = DispatchSSE2

// hardwareBackend reports whether the backend issues real instructions
// rather than running package isa models of them.
const hardwareBackend = false

var active activeBackend

func hostSupported() bool {
	return cpu.X86.HasSSE2
}
