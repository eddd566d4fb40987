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

// sse2Native is the 128-bit x86 backend issuing real instructions through
// archsimd. archsimd emits the VEX encodings, so it needs AVX; the
// sequences are the SSE2 ones of sse2Backend except where a single SSSE3
// shuffle (VPSHUFB) replaces a chain of fixed shuffles.
type sse2Native struct{ reg128 }

var _ chunkOps[isa.Reg128] = sse2Native{}

func (sse2Native) level() DispatchLevel { return DispatchSSE2 }

func (sse2Native) avgU8(a, b isa.Reg128) isa.Reg128 {
	return r128(x128(a).AsUint8x16().Average(x128(b).AsUint8x16()).AsUint64x2())
}

func (sse2Native) avgI8(a, b isa.Reg128) isa.Reg128 {
	bias := splat128(bias8Word).AsUint8x16()
	x := x128(a).AsUint8x16().Xor(bias)
	y := x128(b).AsUint8x16().Xor(bias)
	return r128(x.Average(y).Xor(bias).AsUint64x2())
}

func (sse2Native) avgU16(a, b isa.Reg128) isa.Reg128 {
	return r128(x128(a).AsUint16x8().Average(x128(b).AsUint16x8()).AsUint64x2())
}

func (sse2Native) avgI16(a, b isa.Reg128) isa.Reg128 {
	bias := splat128(bias16Word).AsUint16x8()
	x := x128(a).AsUint16x8().Xor(bias)
	y := x128(b).AsUint16x8().Xor(bias)
	return r128(x.Average(y).Xor(bias).AsUint64x2())
}

func (sse2Native) avgU32(a, b isa.Reg128) isa.Reg128 {
	return r128(avgU32x4(x128(a).AsUint32x4(), x128(b).AsUint32x4()).AsUint64x2())
}

func (sse2Native) avgI32(a, b isa.Reg128) isa.Reg128 {
	bias := splat128(bias32Word).AsUint32x4()
	x := x128(a).AsUint32x4().Xor(bias)
	y := x128(b).AsUint32x4().Xor(bias)
	return r128(avgU32x4(x, y).Xor(bias).AsUint64x2())
}

func (be sse2Native) shiftL8(a isa.Reg128, count uint) isa.Reg128 {
	if count >= 8 {
		return isa.Reg128{}
	}
	return be.shiftLConst8(a, count)
}

// shiftLConst8 masks off the bits that would cross into the next byte, then
// shifts 16-bit lanes.
func (sse2Native) shiftLConst8(a isa.Reg128, count uint) isa.Reg128 {
	mask := splat128(uint64(0xFF>>count) * bytesWord)
	return r128(x128(a).And(mask).AsUint16x8().ShiftAllLeft(uint64(count)).AsUint64x2())
}

// Counts at or above the lane width produce zero.

func (sse2Native) shiftL16(a isa.Reg128, count uint) isa.Reg128 {
	if count >= 16 {
		return isa.Reg128{}
	}
	return r128(x128(a).AsUint16x8().ShiftAllLeft(uint64(count)).AsUint64x2())
}

func (sse2Native) shiftL32(a isa.Reg128, count uint) isa.Reg128 {
	if count >= 32 {
		return isa.Reg128{}
	}
	return r128(x128(a).AsUint32x4().ShiftAllLeft(uint64(count)).AsUint64x2())
}

func (sse2Native) shiftL64(a isa.Reg128, count uint) isa.Reg128 {
	if count >= 64 {
		return isa.Reg128{}
	}
	return r128(x128(a).ShiftAllLeft(uint64(count)))
}

func (sse2Native) moveL8(a isa.Reg128, n uint) isa.Reg128 {
	idx := archsimd.LoadUint64x2(&moveLIndex[n]).AsInt8x16()
	return r128(x128(a).AsUint8x16().PermuteOrZero(idx).AsUint64x2())
}

func (sse2Native) broadcast8(a isa.Reg128, lane uint) isa.Reg128 {
	return splatLane128(a, 1, lane)
}

func (sse2Native) broadcast16(a isa.Reg128, lane uint) isa.Reg128 {
	return splatLane128(a, 2, lane)
}

func (sse2Native) broadcast32(a isa.Reg128, lane uint) isa.Reg128 {
	return splatLane128(a, 4, lane)
}

func (sse2Native) broadcast64(a isa.Reg128, lane uint) isa.Reg128 {
	return splatLane128(a, 8, lane)
}

func splatLane128(a isa.Reg128, size, lane uint) isa.Reg128 {
	idx := splat128(splatIndex(size, lane)).AsInt8x16()
	return r128(x128(a).AsUint8x16().PermuteOrZero(idx).AsUint64x2())
}
