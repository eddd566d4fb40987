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

// nullBackend evaluates every operation with ForEach1 and ForEach2 over a
// register-sized vector. It uses 16-byte chunks like the 128-bit backends.
type nullBackend struct{ reg128 }

func (nullBackend) level() DispatchLevel { return DispatchScalar }

func (nullBackend) avgU8(a, b isa.Reg128) isa.Reg128  { return each2[uint8, [16]uint8](a, b, avgScalar[uint8]) }
func (nullBackend) avgI8(a, b isa.Reg128) isa.Reg128  { return each2[int8, [16]int8](a, b, avgScalar[int8]) }
func (nullBackend) avgU16(a, b isa.Reg128) isa.Reg128 { return each2[uint16, [8]uint16](a, b, avgScalar[uint16]) }
func (nullBackend) avgI16(a, b isa.Reg128) isa.Reg128 { return each2[int16, [8]int16](a, b, avgScalar[int16]) }
func (nullBackend) avgU32(a, b isa.Reg128) isa.Reg128 { return each2[uint32, [4]uint32](a, b, avgScalar[uint32]) }
func (nullBackend) avgI32(a, b isa.Reg128) isa.Reg128 { return each2[int32, [4]int32](a, b, avgScalar[int32]) }

func (nullBackend) shiftL8(a isa.Reg128, count uint) isa.Reg128 {
	return each1[uint8, [16]uint8](a, shiftLScalar[uint8](count))
}

func (be nullBackend) shiftLConst8(a isa.Reg128, count uint) isa.Reg128 {
	return be.shiftL8(a, count)
}

func (nullBackend) shiftL16(a isa.Reg128, count uint) isa.Reg128 {
	return each1[uint16, [8]uint16](a, shiftLScalar[uint16](count))
}

func (nullBackend) shiftL32(a isa.Reg128, count uint) isa.Reg128 {
	return each1[uint32, [4]uint32](a, shiftLScalar[uint32](count))
}

func (nullBackend) shiftL64(a isa.Reg128, count uint) isa.Reg128 {
	return each1[uint64, [2]uint64](a, shiftLScalar[uint64](count))
}

func (nullBackend) moveL8(a isa.Reg128, n uint) isa.Reg128 {
	v := regVec[uint8, [16]uint8](a)
	return vecReg(moveLRef(v, int(n)))
}

func (nullBackend) broadcast8(a isa.Reg128, lane uint) isa.Reg128 {
	return broadcastReg[uint8, [16]uint8](a, lane)
}

func (nullBackend) broadcast16(a isa.Reg128, lane uint) isa.Reg128 {
	return broadcastReg[uint16, [8]uint16](a, lane)
}

func (nullBackend) broadcast32(a isa.Reg128, lane uint) isa.Reg128 {
	return broadcastReg[uint32, [4]uint32](a, lane)
}

func (nullBackend) broadcast64(a isa.Reg128, lane uint) isa.Reg128 {
	return broadcastReg[uint64, [2]uint64](a, lane)
}

func broadcastReg[T Lanes, A Array[T]](a isa.Reg128, lane uint) isa.Reg128 {
	x := regVec[T, A](a).lanes[lane]
	return vecReg(ForEach1(regVec[T, A](a), func(T) T { return x }))
}

// regVec views a register as a 16-byte vector and vecReg converts back.
func regVec[T Lanes, A Array[T]](r isa.Reg128) Vec[T, A] {
	return BitCast[T, A](Vec[uint64, [2]uint64]{lanes: r})
}

func vecReg[T Lanes, A Array[T]](v Vec[T, A]) isa.Reg128 {
	return isa.Reg128(BitCast[uint64, [2]uint64](v).lanes)
}

func each1[T Lanes, A Array[T]](a isa.Reg128, f func(T) T) isa.Reg128 {
	return vecReg(ForEach1(regVec[T, A](a), f))
}

func each2[T Lanes, A Array[T]](a, b isa.Reg128, f func(T, T) T) isa.Reg128 {
	return vecReg(ForEach2(regVec[T, A](a), regVec[T, A](b), f))
}
