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

// avx2Native is the 256-bit backend issuing real AVX2 instructions through
// archsimd.
type avx2Native struct{}

var _ chunkOps[isa.Reg256] = avx2Native{}

func (avx2Native) level() DispatchLevel { return DispatchAVX2 }

func (avx2Native) width() int { return 32 }

func (avx2Native) load(src []byte) isa.Reg256 { return isa.Load256(src) }

func (avx2Native) store(r isa.Reg256, dst []byte) { isa.Store256(r, dst) }

func (avx2Native) avgU8(a, b isa.Reg256) isa.Reg256 {
	return r256(x256(a).AsUint8x32().Average(x256(b).AsUint8x32()).AsUint64x4())
}

func (avx2Native) avgI8(a, b isa.Reg256) isa.Reg256 {
	bias := splat256(bias8Word).AsUint8x32()
	x := x256(a).AsUint8x32().Xor(bias)
	y := x256(b).AsUint8x32().Xor(bias)
	return r256(x.Average(y).Xor(bias).AsUint64x4())
}

func (avx2Native) avgU16(a, b isa.Reg256) isa.Reg256 {
	return r256(x256(a).AsUint16x16().Average(x256(b).AsUint16x16()).AsUint64x4())
}

func (avx2Native) avgI16(a, b isa.Reg256) isa.Reg256 {
	bias := splat256(bias16Word).AsUint16x16()
	x := x256(a).AsUint16x16().Xor(bias)
	y := x256(b).AsUint16x16().Xor(bias)
	return r256(x.Average(y).Xor(bias).AsUint64x4())
}

func (avx2Native) avgU32(a, b isa.Reg256) isa.Reg256 {
	return r256(avgU32x8(x256(a).AsUint32x8(), x256(b).AsUint32x8()).AsUint64x4())
}

func (avx2Native) avgI32(a, b isa.Reg256) isa.Reg256 {
	bias := splat256(bias32Word).AsUint32x8()
	x := x256(a).AsUint32x8().Xor(bias)
	y := x256(b).AsUint32x8().Xor(bias)
	return r256(avgU32x8(x, y).Xor(bias).AsUint64x4())
}

func (be avx2Native) shiftL8(a isa.Reg256, count uint) isa.Reg256 {
	if count >= 8 {
		return isa.Reg256{}
	}
	return be.shiftLConst8(a, count)
}

func (avx2Native) shiftLConst8(a isa.Reg256, count uint) isa.Reg256 {
	mask := splat256(uint64(0xFF>>count) * bytesWord)
	return r256(x256(a).And(mask).AsUint16x16().ShiftAllLeft(uint64(count)).AsUint64x4())
}

func (avx2Native) shiftL16(a isa.Reg256, count uint) isa.Reg256 {
	if count >= 16 {
		return isa.Reg256{}
	}
	return r256(x256(a).AsUint16x16().ShiftAllLeft(uint64(count)).AsUint64x4())
}

func (avx2Native) shiftL32(a isa.Reg256, count uint) isa.Reg256 {
	if count >= 32 {
		return isa.Reg256{}
	}
	return r256(x256(a).AsUint32x8().ShiftAllLeft(uint64(count)).AsUint64x4())
}

func (avx2Native) shiftL64(a isa.Reg256, count uint) isa.Reg256 {
	if count >= 64 {
		return isa.Reg256{}
	}
	return r256(x256(a).ShiftAllLeft(uint64(count)))
}

// moveL8 shuffles each 128-bit half with the same control, which is the
// per-block semantics MoveL needs.
func (avx2Native) moveL8(a isa.Reg256, n uint) isa.Reg256 {
	m := moveLIndex[n]
	ctl := [4]uint64{m[0], m[1], m[0], m[1]}
	idx := archsimd.LoadUint64x4(&ctl).AsInt8x32()
	return r256(x256(a).AsUint8x32().PermuteOrZeroGrouped(idx).AsUint64x4())
}

// The broadcasts extract the 128-bit half holding the lane, move the lane to
// byte 0 and broadcast it with VPBROADCAST{B,W,D,Q}.

func (avx2Native) broadcast8(a isa.Reg256, lane uint) isa.Reg256 {
	return r256(laneToFront(a, lane).Broadcast1To32().AsUint64x4())
}

func (avx2Native) broadcast16(a isa.Reg256, lane uint) isa.Reg256 {
	return r256(laneToFront(a, 2*lane).AsUint16x8().Broadcast1To16().AsUint64x4())
}

func (avx2Native) broadcast32(a isa.Reg256, lane uint) isa.Reg256 {
	return r256(laneToFront(a, 4*lane).AsUint32x4().Broadcast1To8().AsUint64x4())
}

func (avx2Native) broadcast64(a isa.Reg256, lane uint) isa.Reg256 {
	return r256(laneToFront(a, 8*lane).AsUint64x2().Broadcast1To4())
}

// laneToFront returns the 128-bit half of a holding byte off, moved so that
// byte off is byte 0.
func laneToFront(a isa.Reg256, off uint) archsimd.Uint8x16 {
	v := x256(a).AsUint8x32()
	h := v.GetLo()
	if off >= 16 {
		h = v.GetHi()
	}
	idx := archsimd.LoadUint64x2(&moveLIndex[off%16]).AsInt8x16()
	return h.PermuteOrZero(idx)
}
