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

// AVX2 instruction models. Most AVX2 integer instructions operate on the two
// 128-bit halves independently, so they are expressed through their SSE2
// counterparts applied per half. Only vextracti128, vpbroadcast*, vperm2i128
// and vpermq cross the halves.

func perHalf(a Reg256, f func(Reg128) Reg128) Reg256 {
	return Combine(f(a.Lo()), f(a.Hi()))
}

func perHalf2(a, b Reg256, f func(Reg128, Reg128) Reg128) Reg256 {
	return Combine(f(a.Lo(), b.Lo()), f(a.Hi(), b.Hi()))
}

// Vpand is a & b.
func Vpand(a, b Reg256) Reg256 {
	return perHalf2(a, b, Pand)
}

// Vpandn is ^a & b.
func Vpandn(a, b Reg256) Reg256 {
	return perHalf2(a, b, Pandn)
}

// Vpxor is a ^ b.
func Vpxor(a, b Reg256) Reg256 {
	return perHalf2(a, b, Pxor)
}

// Vpaddd adds 32-bit lanes with wraparound.
func Vpaddd(a, b Reg256) Reg256 {
	return perHalf2(a, b, Paddd)
}

// Vpavgb computes the rounded average of unsigned 8-bit lanes.
func Vpavgb(a, b Reg256) Reg256 {
	return perHalf2(a, b, Pavgb)
}

// Vpavgw computes the rounded average of unsigned 16-bit lanes.
func Vpavgw(a, b Reg256) Reg256 {
	return perHalf2(a, b, Pavgw)
}

// Vpsllw shifts 16-bit lanes left. Counts above 15 clear the register.
func Vpsllw(a Reg256, count uint) Reg256 {
	return perHalf(a, func(h Reg128) Reg128 { return Psllw(h, count) })
}

// Vpslld shifts 32-bit lanes left. Counts above 31 clear the register.
func Vpslld(a Reg256, count uint) Reg256 {
	return perHalf(a, func(h Reg128) Reg128 { return Pslld(h, count) })
}

// Vpsllq shifts 64-bit lanes left. Counts above 63 clear the register.
func Vpsllq(a Reg256, count uint) Reg256 {
	return perHalf(a, func(h Reg128) Reg128 { return Psllq(h, count) })
}

// Vpsrlw shifts 16-bit lanes right, zero filling.
func Vpsrlw(a Reg256, count uint) Reg256 {
	return perHalf(a, func(h Reg128) Reg128 { return Psrlw(h, count) })
}

// Vpsrld shifts 32-bit lanes right, zero filling.
func Vpsrld(a Reg256, count uint) Reg256 {
	return perHalf(a, func(h Reg128) Reg128 { return Psrld(h, count) })
}

// Vpsrldq moves each 128-bit half imm bytes toward its lane 0. Bytes never
// cross from the high half into the low half.
func Vpsrldq(a Reg256, imm uint) Reg256 {
	return perHalf(a, func(h Reg128) Reg128 { return Psrldq(h, imm) })
}

// Vpshufd permutes 32-bit lanes within each half using the same immediate.
func Vpshufd(a Reg256, imm uint8) Reg256 {
	return perHalf(a, func(h Reg128) Reg128 { return Pshufd(h, imm) })
}

// Vextracti128 returns the low (imm&1 == 0) or high half.
func Vextracti128(a Reg256, imm uint8) Reg128 {
	if imm&1 == 0 {
		return a.Lo()
	}
	return a.Hi()
}

// Vpbroadcastb replicates byte lane 0 of x into all 32 byte lanes.
func Vpbroadcastb(x Reg128) Reg256 {
	return Splat8x32(x.Bytes()[0])
}

// Vpbroadcastw replicates 16-bit lane 0 of x into all 16 lanes.
func Vpbroadcastw(x Reg128) Reg256 {
	return Splat16x16(x.U16()[0])
}

// Vperm2i128 selects each destination half from {a.lo, a.hi, b.lo, b.hi}
// using imm bits [1:0] and [5:4]; bits 3 and 7 zero the respective half.
func Vperm2i128(a, b Reg256, imm uint8) Reg256 {
	pick := func(sel uint8) Reg128 {
		if sel&8 != 0 {
			return Reg128{}
		}
		switch sel & 3 {
		case 0:
			return a.Lo()
		case 1:
			return a.Hi()
		case 2:
			return b.Lo()
		default:
			return b.Hi()
		}
	}
	return Combine(pick(imm&0xF), pick(imm>>4))
}

// Vpermq permutes 64-bit lanes across the whole register.
func Vpermq(a Reg256, imm uint8) Reg256 {
	var r Reg256
	for i := 0; i < 4; i++ {
		r[i] = a[(imm>>(2*i))&3]
	}
	return r
}
