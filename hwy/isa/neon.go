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

package isa

// NEON (AArch64 Advanced SIMD) instruction models, named after the ACLE
// intrinsics with the q (128-bit) suffix dropped.

// VrhaddU8 is URHADD.16B: unsigned rounding halving add.
func VrhaddU8(a, b Reg128) Reg128 {
	var r Reg128
	ra, rb, rr := a.Bytes(), b.Bytes(), r.Bytes()
	for i := range rr {
		rr[i] = uint8((uint16(ra[i]) + uint16(rb[i]) + 1) >> 1)
	}
	return r
}

// VrhaddS8 is SRHADD.16B: signed rounding halving add.
func VrhaddS8(a, b Reg128) Reg128 {
	var r Reg128
	ra, rb, rr := a.Bytes(), b.Bytes(), r.Bytes()
	for i := range rr {
		rr[i] = uint8((int16(int8(ra[i])) + int16(int8(rb[i])) + 1) >> 1)
	}
	return r
}

// VrhaddU16 is URHADD.8H.
func VrhaddU16(a, b Reg128) Reg128 {
	var r Reg128
	ra, rb, rr := a.U16(), b.U16(), r.U16()
	for i := range rr {
		rr[i] = uint16((uint32(ra[i]) + uint32(rb[i]) + 1) >> 1)
	}
	return r
}

// VrhaddS16 is SRHADD.8H.
func VrhaddS16(a, b Reg128) Reg128 {
	var r Reg128
	ra, rb, rr := a.U16(), b.U16(), r.U16()
	for i := range rr {
		rr[i] = uint16((int32(int16(ra[i])) + int32(int16(rb[i])) + 1) >> 1)
	}
	return r
}

// VrhaddU32 is URHADD.4S.
func VrhaddU32(a, b Reg128) Reg128 {
	var r Reg128
	ra, rb, rr := a.U32(), b.U32(), r.U32()
	for i := range rr {
		rr[i] = uint32((uint64(ra[i]) + uint64(rb[i]) + 1) >> 1)
	}
	return r
}

// VrhaddS32 is SRHADD.4S.
func VrhaddS32(a, b Reg128) Reg128 {
	var r Reg128
	ra, rb, rr := a.U32(), b.U32(), r.U32()
	for i := range rr {
		rr[i] = uint32((int64(int32(ra[i])) + int64(int32(rb[i])) + 1) >> 1)
	}
	return r
}

// ushl applies USHL to one lane of the given width. The shift amount is the
// signed value of the least significant byte of the count lane: positive
// shifts left, negative shifts right, and magnitudes of at least the lane
// width produce zero.
func ushl(v uint64, count uint64, bits uint) uint64 {
	s := int(int8(uint8(count)))
	var r uint64
	switch {
	case s >= 0 && uint(s) < bits:
		r = v << uint(s)
	case s < 0 && uint(-s) < bits:
		r = v >> uint(-s)
	}
	if bits < 64 {
		r &= 1<<bits - 1
	}
	return r
}

// VshlU8 is USHL.16B.
func VshlU8(a, count Reg128) Reg128 {
	var r Reg128
	ra, rc, rr := a.Bytes(), count.Bytes(), r.Bytes()
	for i := range rr {
		rr[i] = uint8(ushl(uint64(ra[i]), uint64(rc[i]), 8))
	}
	return r
}

// VshlN8 is SHL.16B with an immediate count in [0, 7].
func VshlN8(a Reg128, n uint) Reg128 {
	var r Reg128
	ra, rr := a.Bytes(), r.Bytes()
	for i := range rr {
		rr[i] = ra[i] << (n & 7)
	}
	return r
}

// VshlU16 is USHL.8H.
func VshlU16(a, count Reg128) Reg128 {
	var r Reg128
	ra, rc, rr := a.U16(), count.U16(), r.U16()
	for i := range rr {
		rr[i] = uint16(ushl(uint64(ra[i]), uint64(rc[i]), 16))
	}
	return r
}

// VshlU32 is USHL.4S.
func VshlU32(a, count Reg128) Reg128 {
	var r Reg128
	ra, rc, rr := a.U32(), count.U32(), r.U32()
	for i := range rr {
		rr[i] = uint32(ushl(uint64(ra[i]), uint64(rc[i]), 32))
	}
	return r
}

// VshlU64 is USHL.2D.
func VshlU64(a, count Reg128) Reg128 {
	return Reg128{ushl(a[0], count[0], 64), ushl(a[1], count[1], 64)}
}

// VdupN8 is DUP.16B from a general register.
func VdupN8(v uint8) Reg128 { return Splat8x16(v) }

// VdupN16 is DUP.8H from a general register.
func VdupN16(v uint16) Reg128 { return Splat16x8(v) }

// VdupN32 is DUP.4S from a general register.
func VdupN32(v uint32) Reg128 { return Splat32x4(v) }

// VdupN64 is DUP.2D from a general register.
func VdupN64(v uint64) Reg128 { return Splat64x2(v) }

// VdupLane8 is DUP Vd.16B, Vn.B[lane].
func VdupLane8(a Reg128, lane uint) Reg128 {
	return Splat8x16(a.Bytes()[lane&15])
}

// VdupLane16 is DUP Vd.8H, Vn.H[lane].
func VdupLane16(a Reg128, lane uint) Reg128 {
	return Splat16x8(a.U16()[lane&7])
}

// VdupLane32 is DUP Vd.4S, Vn.S[lane].
func VdupLane32(a Reg128, lane uint) Reg128 {
	return Splat32x4(a.U32()[lane&3])
}

// VdupLane64 is DUP Vd.2D, Vn.D[lane].
func VdupLane64(a Reg128, lane uint) Reg128 {
	return Splat64x2(a[lane&1])
}

// Vext is EXT Vd.16B, Vn.16B, Vm.16B, #n: bytes n..15 of a followed by
// bytes 0..n-1 of b. n must be at most 15.
func Vext(a, b Reg128, n uint) Reg128 {
	var r Reg128
	ra, rb, rr := a.Bytes(), b.Bytes(), r.Bytes()
	n &= 15
	copy(rr[:], ra[n:])
	copy(rr[16-n:], rb[:n])
	return r
}
