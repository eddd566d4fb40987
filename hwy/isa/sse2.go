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

// SSE2 instruction models. Names follow the instruction mnemonics; operand
// order follows the intrinsics (_mm_andnot_si128(a, b) is PANDN a, b).

// Shuffle4 encodes a PSHUFD/PSHUFLW/PSHUFHW immediate selecting source
// lanes i0..i3 for destination lanes 0..3 (_MM_SHUFFLE(i3, i2, i1, i0)).
func Shuffle4(i0, i1, i2, i3 uint8) uint8 {
	return i0&3 | (i1&3)<<2 | (i2&3)<<4 | (i3&3)<<6
}

// Pand is a & b.
func Pand(a, b Reg128) Reg128 {
	return Reg128{a[0] & b[0], a[1] & b[1]}
}

// Pandn is ^a & b.
func Pandn(a, b Reg128) Reg128 {
	return Reg128{^a[0] & b[0], ^a[1] & b[1]}
}

// Pxor is a ^ b.
func Pxor(a, b Reg128) Reg128 {
	return Reg128{a[0] ^ b[0], a[1] ^ b[1]}
}

// Paddd adds 32-bit lanes with wraparound.
func Paddd(a, b Reg128) Reg128 {
	var r Reg128
	ra, rb, rr := a.U32(), b.U32(), r.U32()
	for i := range rr {
		rr[i] = ra[i] + rb[i]
	}
	return r
}

// Pavgb computes the rounded average of unsigned 8-bit lanes.
func Pavgb(a, b Reg128) Reg128 {
	var r Reg128
	ra, rb, rr := a.Bytes(), b.Bytes(), r.Bytes()
	for i := range rr {
		rr[i] = uint8((uint16(ra[i]) + uint16(rb[i]) + 1) >> 1)
	}
	return r
}

// Pavgw computes the rounded average of unsigned 16-bit lanes.
func Pavgw(a, b Reg128) Reg128 {
	var r Reg128
	ra, rb, rr := a.U16(), b.U16(), r.U16()
	for i := range rr {
		rr[i] = uint16((uint32(ra[i]) + uint32(rb[i]) + 1) >> 1)
	}
	return r
}

// Psllw shifts 16-bit lanes left. Counts above 15 clear the register.
func Psllw(a Reg128, count uint) Reg128 {
	var r Reg128
	if count > 15 {
		return r
	}
	ra, rr := a.U16(), r.U16()
	for i := range rr {
		rr[i] = ra[i] << count
	}
	return r
}

// Pslld shifts 32-bit lanes left. Counts above 31 clear the register.
func Pslld(a Reg128, count uint) Reg128 {
	var r Reg128
	if count > 31 {
		return r
	}
	ra, rr := a.U32(), r.U32()
	for i := range rr {
		rr[i] = ra[i] << count
	}
	return r
}

// Psllq shifts 64-bit lanes left. Counts above 63 clear the register.
func Psllq(a Reg128, count uint) Reg128 {
	if count > 63 {
		return Reg128{}
	}
	return Reg128{a[0] << count, a[1] << count}
}

// Psrlw shifts 16-bit lanes right, zero filling. Counts above 15 clear the
// register.
func Psrlw(a Reg128, count uint) Reg128 {
	var r Reg128
	if count > 15 {
		return r
	}
	ra, rr := a.U16(), r.U16()
	for i := range rr {
		rr[i] = ra[i] >> count
	}
	return r
}

// Psrld shifts 32-bit lanes right, zero filling.
func Psrld(a Reg128, count uint) Reg128 {
	var r Reg128
	if count > 31 {
		return r
	}
	ra, rr := a.U32(), r.U32()
	for i := range rr {
		rr[i] = ra[i] >> count
	}
	return r
}

// Psrldq moves the whole register imm bytes toward lane 0, zero filling.
// Immediates above 15 clear the register.
func Psrldq(a Reg128, imm uint) Reg128 {
	var r Reg128
	if imm > 15 {
		return r
	}
	ra, rr := a.Bytes(), r.Bytes()
	copy(rr[:], ra[imm:])
	return r
}

// Punpcklbw interleaves the low 8 bytes of a and b: a0 b0 a1 b1 ...
func Punpcklbw(a, b Reg128) Reg128 {
	var r Reg128
	ra, rb, rr := a.Bytes(), b.Bytes(), r.Bytes()
	for i := 0; i < 8; i++ {
		rr[2*i] = ra[i]
		rr[2*i+1] = rb[i]
	}
	return r
}

// Pshuflw permutes the low four 16-bit lanes; the high four are copied.
func Pshuflw(a Reg128, imm uint8) Reg128 {
	r := a
	ra, rr := a.U16(), r.U16()
	for i := 0; i < 4; i++ {
		rr[i] = ra[(imm>>(2*i))&3]
	}
	return r
}

// Pshufhw permutes the high four 16-bit lanes; the low four are copied.
func Pshufhw(a Reg128, imm uint8) Reg128 {
	r := a
	ra, rr := a.U16(), r.U16()
	for i := 0; i < 4; i++ {
		rr[4+i] = ra[4+(imm>>(2*i))&3]
	}
	return r
}

// Pshufd permutes 32-bit lanes.
func Pshufd(a Reg128, imm uint8) Reg128 {
	var r Reg128
	ra, rr := a.U32(), r.U32()
	for i := 0; i < 4; i++ {
		rr[i] = ra[(imm>>(2*i))&3]
	}
	return r
}
