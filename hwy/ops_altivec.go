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

type altivecBackend struct{ reg128 }

func (altivecBackend) level() DispatchLevel { return DispatchAltiVec }

func (altivecBackend) avgU8(a, b isa.Reg128) isa.Reg128  { return isa.Vavgub(a, b) }
func (altivecBackend) avgI8(a, b isa.Reg128) isa.Reg128  { return isa.Vavgsb(a, b) }
func (altivecBackend) avgU16(a, b isa.Reg128) isa.Reg128 { return isa.Vavguh(a, b) }
func (altivecBackend) avgI16(a, b isa.Reg128) isa.Reg128 { return isa.Vavgsh(a, b) }
func (altivecBackend) avgU32(a, b isa.Reg128) isa.Reg128 { return isa.Vavguw(a, b) }
func (altivecBackend) avgI32(a, b isa.Reg128) isa.Reg128 { return isa.Vavgsw(a, b) }

// vec_sl takes the count modulo the lane width, so counts of at least the
// width are resolved here.

func (altivecBackend) shiftL8(a isa.Reg128, count uint) isa.Reg128 {
	if count >= 8 {
		return isa.Reg128{}
	}
	return isa.Vslb(a, isa.Splat8x16(uint8(count)))
}

// AltiVec has no immediate shift; the count is splatted with vspltisb.
func (altivecBackend) shiftLConst8(a isa.Reg128, count uint) isa.Reg128 {
	return isa.Vslb(a, isa.Vspltisb(int8(count)))
}

func (altivecBackend) shiftL16(a isa.Reg128, count uint) isa.Reg128 {
	if count >= 16 {
		return isa.Reg128{}
	}
	return isa.Vslh(a, isa.Splat16x8(uint16(count)))
}

func (altivecBackend) shiftL32(a isa.Reg128, count uint) isa.Reg128 {
	if count >= 32 {
		return isa.Reg128{}
	}
	return isa.Vslw(a, isa.Splat32x4(uint32(count)))
}

func (altivecBackend) shiftL64(a isa.Reg128, count uint) isa.Reg128 {
	if count >= 64 {
		return isa.Reg128{}
	}
	return isa.Vsld(a, isa.Splat64x2(uint64(count)))
}

func (altivecBackend) moveL8(a isa.Reg128, n uint) isa.Reg128 {
	return isa.Vsldoi(a, isa.Reg128{}, n)
}

func (altivecBackend) broadcast8(a isa.Reg128, lane uint) isa.Reg128  { return isa.Vspltb(a, lane) }
func (altivecBackend) broadcast16(a isa.Reg128, lane uint) isa.Reg128 { return isa.Vsplth(a, lane) }
func (altivecBackend) broadcast32(a isa.Reg128, lane uint) isa.Reg128 { return isa.Vspltw(a, lane) }

// broadcast64 has no doubleword splat before POWER9; it permutes the eight
// bytes of the lane into both halves.
func (altivecBackend) broadcast64(a isa.Reg128, lane uint) isa.Reg128 {
	var sel isa.Reg128
	s := sel.Bytes()
	for i := range s {
		s[i] = uint8(8*(lane&1) + uint(i%8))
	}
	return isa.Vperm(a, a, sel)
}
