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

//go:build amd64 && !noasm && hwy_avx2 && !goexperiment.simd

package hwy

import (
	"github.com/go-highway/lanes/hwy/isa"
	"golang.org/x/sys/cpu"
)

type (
	activeBackend = avx2Backend
	nativeReg     = isa.Reg256
)

const currentLevel = DispatchAVX2

const hardwareBackend = false

var active activeBackend

// AVX2 needs OS support for the YMM state as well, which x/sys/cpu folds
// into HasAVX2.
func hostSupported() bool {
	return cpu.X86.HasAVX2
}
