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

package hwy

import "github.com/go-highway/lanes/hwy/isa"

// chunkOps is the operation set every backend implements on one native
// register R. Operations are named by lane width; the public layer picks the
// width (and for avg the signedness) from the vector's lane type.
//
// Counts and lane indices reaching a backend have already been validated:
// shift counts are arbitrary, moveL8 receives 1..15 and broadcast lane
// indices are below the register's lane count.
type chunkOps[R any] interface {
	level() DispatchLevel
	width() int

	// load fills a register from up to width() bytes; missing bytes are
	// zero. store writes at most len(dst) bytes.
	load(src []byte) R
	store(r R, dst []byte)

	avgU8(a, b R) R
	avgI8(a, b R) R
	avgU16(a, b R) R
	avgI16(a, b R) R
	avgU32(a, b R) R
	avgI32(a, b R) R

	shiftL8(a R, count uint) R
	// shiftLConst8 is the fixed-count form of shiftL8; count is in [1, 7].
	shiftLConst8(a R, count uint) R
	shiftL16(a R, count uint) R
	shiftL32(a R, count uint) R
	shiftL64(a R, count uint) R

	// moveL8 moves every 16-byte block of a n bytes toward byte 0, zero
	// filling.
	moveL8(a R, n uint) R

	broadcast8(a R, lane uint) R
	broadcast16(a R, lane uint) R
	broadcast32(a R, lane uint) R
	broadcast64(a R, lane uint) R
}

// A backend missing an operation fails to build here.
var (
	_ chunkOps[isa.Reg128] = nullBackend{}
	_ chunkOps[isa.Reg128] = sse2Backend{}
	_ chunkOps[isa.Reg256] = avx2Backend{}
	_ chunkOps[isa.Reg128] = neonBackend{}
	_ chunkOps[isa.Reg128] = altivecBackend{}
)

// reg128 provides the register plumbing shared by the 128-bit backends.
type reg128 struct{}

func (reg128) width() int { return 16 }

func (reg128) load(src []byte) isa.Reg128 { return isa.Load128(src) }

func (reg128) store(r isa.Reg128, dst []byte) { isa.Store128(r, dst) }
