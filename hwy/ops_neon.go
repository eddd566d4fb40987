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

// neonBackend expresses every operation in AArch64 Advanced SIMD
// instructions. NEON has signed and unsigned rounding averages, so no bias
// adaptation is needed.
type neonBackend struct{ reg128 }

func (neonBackend) level() DispatchLevel { return DispatchNEON }

func (neonBackend) avgU8(a, b isa.Reg128) isa.Reg128  { return isa.VrhaddU8(a, b) }
func (neonBackend) avgI8(a, b isa.Reg128) isa.Reg128  { return isa.VrhaddS8(a, b) }
func (neonBackend) avgU16(a, b isa.Reg128) isa.Reg128 { return isa.VrhaddU16(a, b) }
func (neonBackend) avgI16(a, b isa.Reg128) isa.Reg128 { return isa.VrhaddS16(a, b) }
func (neonBackend) avgU32(a, b isa.Reg128) isa.Reg128 { return isa.VrhaddU32(a, b) }
func (neonBackend) avgI32(a, b isa.Reg128) isa.Reg128 { return isa.VrhaddS32(a, b) }

// USHL reads the count from the low byte of each count lane as a signed
// value, so 128..255 would shift right and 256 would not shift at all.
// Counts of at least the lane width are resolved before the instruction.

func (neonBackend) shiftL8(a isa.Reg128, count uint) isa.Reg128 {
	if count >= 8 {
		return isa.Reg128{}
	}
	return isa.VshlU8(a, isa.VdupN8(uint8(count)))
}

// shiftLConst8 uses the immediate form of the shift.
func (neonBackend) shiftLConst8(a isa.Reg128, count uint) isa.Reg128 {
	return isa.VshlN8(a, count)
}

func (neonBackend) shiftL16(a isa.Reg128, count uint) isa.Reg128 {
	if count >= 16 {
		return isa.Reg128{}
	}
	return isa.VshlU16(a, isa.VdupN16(uint16(count)))
}

func (neonBackend) shiftL32(a isa.Reg128, count uint) isa.Reg128 {
	if count >= 32 {
		return isa.Reg128{}
	}
	return isa.VshlU32(a, isa.VdupN32(uint32(count)))
}

func (neonBackend) shiftL64(a isa.Reg128, count uint) isa.Reg128 {
	if count >= 64 {
		return isa.Reg128{}
	}
	return isa.VshlU64(a, isa.VdupN64(uint64(count)))
}

// moveL8 is EXT with a zero second operand.
func (neonBackend) moveL8(a isa.Reg128, n uint) isa.Reg128 {
	return isa.Vext(a, isa.Reg128{}, n)
}

func (neonBackend) broadcast8(a isa.Reg128, lane uint) isa.Reg128  { return isa.VdupLane8(a, lane) }
func (neonBackend) broadcast16(a isa.Reg128, lane uint) isa.Reg128 { return isa.VdupLane16(a, lane) }
func (neonBackend) broadcast32(a isa.Reg128, lane uint) isa.Reg128 { return isa.VdupLane32(a, lane) }
func (neonBackend) broadcast64(a isa.Reg128, lane uint) isa.Reg128 { return isa.VdupLane64(a, lane) }
