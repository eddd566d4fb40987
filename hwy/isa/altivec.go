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

// AltiVec/VMX instruction models (POWER8 baseline, so vsld is available).
// Lane numbers are memory order, the order vec_xl/vec_xst use.

// Vavgub is vec_avg on unsigned bytes.
func Vavgub(a, b Reg128) Reg128 {
	return Pavgb(a, b)
}

// Vavgsb is vec_avg on signed bytes.
func Vavgsb(a, b Reg128) Reg128 {
	return VrhaddS8(a, b)
}

// Vavguh is vec_avg on unsigned halfwords.
func Vavguh(a, b Reg128) Reg128 {
	return Pavgw(a, b)
}

// Vavgsh is vec_avg on signed halfwords.
func Vavgsh(a, b Reg128) Reg128 {
	return VrhaddS16(a, b)
}

// Vavguw is vec_avg on unsigned words.
func Vavguw(a, b Reg128) Reg128 {
	return VrhaddU32(a, b)
}

// Vavgsw is vec_avg on signed words.
func Vavgsw(a, b Reg128) Reg128 {
	return VrhaddS32(a, b)
}

// Vslb is vec_sl on bytes. Only the low 3 bits of each count lane are used,
// so the count wraps modulo 8.
func Vslb(a, count Reg128) Reg128 {
	var r Reg128
	ra, rc, rr := a.Bytes(), count.Bytes(), r.Bytes()
	for i := range rr {
		rr[i] = ra[i] << (rc[i] & 7)
	}
	return r
}

// Vslh is vec_sl on halfwords; the count wraps modulo 16.
func Vslh(a, count Reg128) Reg128 {
	var r Reg128
	ra, rc, rr := a.U16(), count.U16(), r.U16()
	for i := range rr {
		rr[i] = ra[i] << (rc[i] & 15)
	}
	return r
}

// Vslw is vec_sl on words; the count wraps modulo 32.
func Vslw(a, count Reg128) Reg128 {
	var r Reg128
	ra, rc, rr := a.U32(), count.U32(), r.U32()
	for i := range rr {
		rr[i] = ra[i] << (rc[i] & 31)
	}
	return r
}

// Vsld is vec_sl on doublewords (POWER8); the count wraps modulo 64.
func Vsld(a, count Reg128) Reg128 {
	return Reg128{a[0] << (count[0] & 63), a[1] << (count[1] & 63)}
}

// Vsldoi is vec_sld(a, b, n): the 32-byte concatenation a||b moved n bytes
// toward lane 0, keeping 16 bytes. n must be at most 15.
func Vsldoi(a, b Reg128, n uint) Reg128 {
	return Vext(a, b, n)
}

// Vspltb is vec_splat on bytes.
func Vspltb(a Reg128, lane uint) Reg128 {
	return Splat8x16(a.Bytes()[lane&15])
}

// Vsplth is vec_splat on halfwords.
func Vsplth(a Reg128, lane uint) Reg128 {
	return Splat16x8(a.U16()[lane&7])
}

// Vspltw is vec_splat on words.
func Vspltw(a Reg128, lane uint) Reg128 {
	return Splat32x4(a.U32()[lane&3])
}

// Vspltisb is vec_splat_s8: every byte set to the 5-bit signed immediate
// v, which must be in [-16, 15].
func Vspltisb(v int8) Reg128 {
	return Splat8x16(uint8(v))
}

// Vperm is vec_perm(a, b, sel): byte i of the result is byte sel[i]&31 of
// the concatenation a||b.
func Vperm(a, b, sel Reg128) Reg128 {
	var r Reg128
	ra, rb, rs, rr := a.Bytes(), b.Bytes(), sel.Bytes(), r.Bytes()
	for i := range rr {
		k := rs[i] & 31
		if k < 16 {
			rr[i] = ra[k]
		} else {
			rr[i] = rb[k-16]
		}
	}
	return r
}
