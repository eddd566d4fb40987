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

// avx2Backend works on 256-bit registers. Lane moves stay within each
// 128-bit half, matching the block semantics of MoveL.
type avx2Backend struct{}

func (avx2Backend) level() DispatchLevel { return DispatchAVX2 }

func (avx2Backend) width() int { return 32 }

func (avx2Backend) load(src []byte) isa.Reg256 { return isa.Load256(src) }

func (avx2Backend) store(r isa.Reg256, dst []byte) { isa.Store256(r, dst) }

func (avx2Backend) avgU8(a, b isa.Reg256) isa.Reg256 {
	return isa.Vpavgb(a, b)
}

func (avx2Backend) avgI8(a, b isa.Reg256) isa.Reg256 {
	return viaUnsigned(a, b, signBias8x32(), isa.Vpxor, isa.Vpavgb)
}

func (avx2Backend) avgU16(a, b isa.Reg256) isa.Reg256 {
	return isa.Vpavgw(a, b)
}

func (avx2Backend) avgI16(a, b isa.Reg256) isa.Reg256 {
	return viaUnsigned(a, b, signBias16x16(), isa.Vpxor, isa.Vpavgw)
}

func (avx2Backend) avgU32(a, b isa.Reg256) isa.Reg256 {
	x := isa.Vpxor(a, b)
	r := isa.Vpaddd(isa.Vpand(a, b), isa.Vpsrld(x, 1))
	return isa.Vpaddd(r, isa.Vpand(x, isa.Splat32x8(1)))
}

func (be avx2Backend) avgI32(a, b isa.Reg256) isa.Reg256 {
	return viaUnsigned(a, b, signBias32x8(), isa.Vpxor, be.avgU32)
}

// shiftL8 uses the same masked 16-bit shift as the SSE2 backend.
func (avx2Backend) shiftL8(a isa.Reg256, count uint) isa.Reg256 {
	mask := isa.Vpsllw(isa.Vpsrlw(isa.Ones256(), 16-count), 8)
	return isa.Vpandn(mask, isa.Vpsllw(a, count))
}

func (avx2Backend) shiftLConst8(a isa.Reg256, count uint) isa.Reg256 {
	return isa.Vpsllw(isa.Vpand(a, isa.Splat8x32(0xFF>>count)), count)
}

func (avx2Backend) shiftL16(a isa.Reg256, count uint) isa.Reg256 {
	return isa.Vpsllw(a, count)
}

func (avx2Backend) shiftL32(a isa.Reg256, count uint) isa.Reg256 {
	return isa.Vpslld(a, count)
}

func (avx2Backend) shiftL64(a isa.Reg256, count uint) isa.Reg256 {
	return isa.Vpsllq(a, count)
}

func (avx2Backend) moveL8(a isa.Reg256, n uint) isa.Reg256 {
	return isa.Vpsrldq(a, n)
}

// broadcast8 extracts the half holding the lane, moves the byte to position
// 0 and broadcasts it with vpbroadcastb.
func (avx2Backend) broadcast8(a isa.Reg256, lane uint) isa.Reg256 {
	x := isa.Vextracti128(a, uint8(lane/16))
	return isa.Vpbroadcastb(isa.Psrldq(x, lane%16))
}

func (avx2Backend) broadcast16(a isa.Reg256, lane uint) isa.Reg256 {
	x := isa.Vextracti128(a, uint8(lane/8))
	return isa.Vpbroadcastw(isa.Psrldq(x, 2*(lane%8)))
}

// broadcast32 splats the lane inside both halves, then copies the half that
// holds it to both positions.
func (avx2Backend) broadcast32(a isa.Reg256, lane uint) isa.Reg256 {
	l := uint8(lane % 4)
	x := isa.Vpshufd(a, isa.Shuffle4(l, l, l, l))
	h := uint8(lane / 4)
	return isa.Vperm2i128(x, x, h|h<<4)
}

func (avx2Backend) broadcast64(a isa.Reg256, lane uint) isa.Reg256 {
	l := uint8(lane)
	return isa.Vpermq(a, isa.Shuffle4(l, l, l, l))
}
