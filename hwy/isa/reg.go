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

// Package isa models the vector registers and the subset of instructions of
// each backend family (SSE2, AVX2, NEON, AltiVec) used by package hwy.
//
// Every instruction is a pure function from registers to a register with the
// exact lane semantics of the hardware instruction it is named after,
// including its edge cases (shift counts that saturate, wrap, or are read
// from a single byte). Backends in package hwy compose these into
// operations; the instruction sequences are therefore the same ones a native
// implementation would issue.
//
// Lanes are numbered in memory order: lane 0 lives at the lowest address of
// the register image, matching how Load/Store move data on every target.
package isa

import "unsafe"

// Reg128 is a 128-bit vector register (XMM, NEON Q, AltiVec VR).
// The uint64 backing keeps the typed lane views aligned.
type Reg128 [2]uint64

// Reg256 is a 256-bit AVX2 register (YMM).
type Reg256 [4]uint64

// Bytes returns the register as 16 byte lanes.
func (r *Reg128) Bytes() *[16]byte {
	return (*[16]byte)(unsafe.Pointer(r))
}

// U16 returns the register as 8 16-bit lanes.
func (r *Reg128) U16() *[8]uint16 {
	return (*[8]uint16)(unsafe.Pointer(r))
}

// U32 returns the register as 4 32-bit lanes.
func (r *Reg128) U32() *[4]uint32 {
	return (*[4]uint32)(unsafe.Pointer(r))
}

// U64 returns the register as 2 64-bit lanes.
func (r *Reg128) U64() *[2]uint64 {
	return (*[2]uint64)(r)
}

// Load128 fills a register from the first 16 bytes of src.
// Missing bytes are zero.
func Load128(src []byte) Reg128 {
	var r Reg128
	copy(r.Bytes()[:], src)
	return r
}

// Store128 writes the register to dst, truncating to len(dst).
func Store128(r Reg128, dst []byte) {
	copy(dst, r.Bytes()[:])
}

// Bytes returns the register as 32 byte lanes.
func (r *Reg256) Bytes() *[32]byte {
	return (*[32]byte)(unsafe.Pointer(r))
}

// U16 returns the register as 16 16-bit lanes.
func (r *Reg256) U16() *[16]uint16 {
	return (*[16]uint16)(unsafe.Pointer(r))
}

// U32 returns the register as 8 32-bit lanes.
func (r *Reg256) U32() *[8]uint32 {
	return (*[8]uint32)(unsafe.Pointer(r))
}

// U64 returns the register as 4 64-bit lanes.
func (r *Reg256) U64() *[4]uint64 {
	return (*[4]uint64)(r)
}

// Lo returns the low 128-bit half (lanes at the lower addresses).
func (r Reg256) Lo() Reg128 {
	return Reg128{r[0], r[1]}
}

// Hi returns the high 128-bit half.
func (r Reg256) Hi() Reg128 {
	return Reg128{r[2], r[3]}
}

// Combine builds a 256-bit register from two halves.
func Combine(lo, hi Reg128) Reg256 {
	return Reg256{lo[0], lo[1], hi[0], hi[1]}
}

// Load256 fills a register from the first 32 bytes of src.
func Load256(src []byte) Reg256 {
	var r Reg256
	copy(r.Bytes()[:], src)
	return r
}

// Store256 writes the register to dst, truncating to len(dst).
func Store256(r Reg256, dst []byte) {
	copy(dst, r.Bytes()[:])
}

// Splat8x16 returns a register with every byte set to v.
// Backends use it for per-call mask and bias constants.
func Splat8x16(v uint8) Reg128 {
	w := uint64(v) * 0x0101010101010101
	return Reg128{w, w}
}

// Splat16x8 returns a register with every 16-bit lane set to v.
func Splat16x8(v uint16) Reg128 {
	w := uint64(v) * 0x0001000100010001
	return Reg128{w, w}
}

// Splat32x4 returns a register with every 32-bit lane set to v.
func Splat32x4(v uint32) Reg128 {
	w := uint64(v) * 0x0000000100000001
	return Reg128{w, w}
}

// Splat64x2 returns a register with both 64-bit lanes set to v.
func Splat64x2(v uint64) Reg128 {
	return Reg128{v, v}
}

// Splat8x32 is the 256-bit form of Splat8x16.
func Splat8x32(v uint8) Reg256 {
	h := Splat8x16(v)
	return Combine(h, h)
}

// Splat16x16 is the 256-bit form of Splat16x8.
func Splat16x16(v uint16) Reg256 {
	h := Splat16x8(v)
	return Combine(h, h)
}

// Splat32x8 is the 256-bit form of Splat32x4.
func Splat32x8(v uint32) Reg256 {
	h := Splat32x4(v)
	return Combine(h, h)
}

// Ones128 returns an all-ones register (pcmpeqb x, x).
func Ones128() Reg128 {
	return Reg128{^uint64(0), ^uint64(0)}
}

// Ones256 returns an all-ones register (vpcmpeqb y, y, y).
func Ones256() Reg256 {
	return Reg256{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}
}
