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

// sse2Backend expresses every operation in SSE2 instructions.
type sse2Backend struct{ reg128 }

func (sse2Backend) level() DispatchLevel { return DispatchSSE2 }

func (sse2Backend) avgU8(a, b isa.Reg128) isa.Reg128 {
	return isa.Pavgb(a, b)
}

func (sse2Backend) avgI8(a, b isa.Reg128) isa.Reg128 {
	return viaUnsigned(a, b, signBias8x16(), isa.Pxor, isa.Pavgb)
}

func (sse2Backend) avgU16(a, b isa.Reg128) isa.Reg128 {
	return isa.Pavgw(a, b)
}

func (sse2Backend) avgI16(a, b isa.Reg128) isa.Reg128 {
	return viaUnsigned(a, b, signBias16x8(), isa.Pxor, isa.Pavgw)
}

// avgU32 has no instruction: (a & b) + ((a ^ b) >> 1) + ((a ^ b) & 1).
func (sse2Backend) avgU32(a, b isa.Reg128) isa.Reg128 {
	x := isa.Pxor(a, b)
	r := isa.Paddd(isa.Pand(a, b), isa.Psrld(x, 1))
	return isa.Paddd(r, isa.Pand(x, isa.Splat32x4(1)))
}

func (be sse2Backend) avgI32(a, b isa.Reg128) isa.Reg128 {
	return viaUnsigned(a, b, signBias32x4(), isa.Pxor, be.avgU32)
}

// shiftL8 shifts 16-bit lanes and clears the bits that crossed from each
// low byte into its high byte. The mask is (0xFFFF >> (16-count)) << 8; for
// count >= 16 the unsigned 16-count wraps and both shifts saturate to zero.
func (sse2Backend) shiftL8(a isa.Reg128, count uint) isa.Reg128 {
	mask := isa.Psllw(isa.Psrlw(isa.Ones128(), 16-count), 8)
	return isa.Pandn(mask, isa.Psllw(a, count))
}

// shiftLConst8 clears the bits that would cross into the next byte before
// the 16-bit shift, so no mask is shifted at run time.
func (sse2Backend) shiftLConst8(a isa.Reg128, count uint) isa.Reg128 {
	return isa.Psllw(isa.Pand(a, isa.Splat8x16(0xFF>>count)), count)
}

func (sse2Backend) shiftL16(a isa.Reg128, count uint) isa.Reg128 {
	return isa.Psllw(a, count)
}

func (sse2Backend) shiftL32(a isa.Reg128, count uint) isa.Reg128 {
	return isa.Pslld(a, count)
}

func (sse2Backend) shiftL64(a isa.Reg128, count uint) isa.Reg128 {
	return isa.Psllq(a, count)
}

func (sse2Backend) moveL8(a isa.Reg128, n uint) isa.Reg128 {
	return isa.Psrldq(a, n)
}

// broadcast8 moves the byte to position 0, doubles it into a 16-bit lane and
// splats that lane.
func (sse2Backend) broadcast8(a isa.Reg128, lane uint) isa.Reg128 {
	x := isa.Psrldq(a, lane)
	x = isa.Punpcklbw(x, x)
	x = isa.Pshuflw(x, 0)
	return isa.Pshufd(x, 0)
}

func (sse2Backend) broadcast16(a isa.Reg128, lane uint) isa.Reg128 {
	if lane < 4 {
		l := uint8(lane)
		x := isa.Pshuflw(a, isa.Shuffle4(l, l, l, l))
		return isa.Pshufd(x, isa.Shuffle4(0, 1, 0, 1))
	}
	l := uint8(lane - 4)
	x := isa.Pshufhw(a, isa.Shuffle4(l, l, l, l))
	return isa.Pshufd(x, isa.Shuffle4(2, 3, 2, 3))
}

func (sse2Backend) broadcast32(a isa.Reg128, lane uint) isa.Reg128 {
	l := uint8(lane)
	return isa.Pshufd(a, isa.Shuffle4(l, l, l, l))
}

func (sse2Backend) broadcast64(a isa.Reg128, lane uint) isa.Reg128 {
	l := uint8(2 * lane)
	return isa.Pshufd(a, isa.Shuffle4(l, l+1, l, l+1))
}
