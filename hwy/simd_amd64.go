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

//go:build amd64 && goexperiment.simd

package hwy

import (
	"simd/archsimd"

	"github.com/go-highway/lanes/hwy/isa"
)

// Register images cross the chunkOps boundary as isa registers; archsimd
// vector types are only used inside a single operation.

func x128(r isa.Reg128) archsimd.Uint64x2 {
	return archsimd.LoadUint64x2((*[2]uint64)(&r))
}

func r128(v archsimd.Uint64x2) isa.Reg128 {
	var r isa.Reg128
	v.Store((*[2]uint64)(&r))
	return r
}

func x256(r isa.Reg256) archsimd.Uint64x4 {
	return archsimd.LoadUint64x4((*[4]uint64)(&r))
}

func r256(v archsimd.Uint64x4) isa.Reg256 {
	var r isa.Reg256
	v.Store((*[4]uint64)(&r))
	return r
}

func splat128(k uint64) archsimd.Uint64x2 {
	a := [2]uint64{k, k}
	return archsimd.LoadUint64x2(&a)
}

func splat256(k uint64) archsimd.Uint64x4 {
	a := [4]uint64{k, k, k, k}
	return archsimd.LoadUint64x4(&a)
}

// Per-lane constants, replicated to 64 bits.
const (
	bias8Word  = 0x8080808080808080
	bias16Word = 0x8000800080008000
	bias32Word = 0x8000000080000000
	ones32Word = 0x0000000100000001
	bytesWord  = 0x0101010101010101
)

// moveLIndex[n] is the VPSHUFB control that moves a 16-byte block n bytes
// toward byte 0. Bytes with the sign bit set select zero.
var moveLIndex = func() (t [17][2]uint64) {
	for n := range t {
		for i := 0; i < 16; i++ {
			b := uint64(0x80)
			if i+n < 16 {
				b = uint64(i + n)
			}
			t[n][i/8] |= b << (8 * (i % 8))
		}
	}
	return t
}()

// splatIndex is the VPSHUFB control word, replicated to 64 bits, that copies
// lane `lane` of size bytes into every lane of a 16-byte block.
func splatIndex(size, lane uint) uint64 {
	var w uint64
	for i := uint(0); i < size; i++ {
		w |= uint64(size*lane+i) << (8 * i)
	}
	for n := size; n < 8; n *= 2 {
		w |= w << (8 * n)
	}
	return w
}

func avgU32x4(x, y archsimd.Uint32x4) archsimd.Uint32x4 {
	d := x.Xor(y)
	return x.And(y).Add(d.ShiftAllRight(1)).Add(d.And(splat128(ones32Word).AsUint32x4()))
}

func avgU32x8(x, y archsimd.Uint32x8) archsimd.Uint32x8 {
	d := x.Xor(y)
	return x.And(y).Add(d.ShiftAllRight(1)).Add(d.And(splat256(ones32Word).AsUint32x8()))
}
