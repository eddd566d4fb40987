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

import (
	"bytes"
	"fmt"
	"math/rand/v2"

	"github.com/go-highway/lanes/hwy/isa"
)

// Every backend is built on every platform from the instruction models in
// package isa. The functions in this file run an operation on a named
// backend instead of the compiled-in one, which is how the backends are
// verified against each other. These functions always run the models, also
// when the compiled-in backend issues real instructions.

// AllBackends returns every dispatch level in declaration order.
func AllBackends() []DispatchLevel {
	return []DispatchLevel{DispatchScalar, DispatchSSE2, DispatchAVX2, DispatchNEON, DispatchAltiVec}
}

// AvgOn is Avg evaluated on the given backend.
func AvgOn[T AvgLanes, A Array[T]](level DispatchLevel, a, b Vec[T, A]) Vec[T, A] {
	switch level {
	case DispatchScalar:
		return avg[isa.Reg128](nullBackend{}, a, b)
	case DispatchSSE2:
		return avg[isa.Reg128](sse2Backend{}, a, b)
	case DispatchAVX2:
		return avg[isa.Reg256](avx2Backend{}, a, b)
	case DispatchNEON:
		return avg[isa.Reg128](neonBackend{}, a, b)
	case DispatchAltiVec:
		return avg[isa.Reg128](altivecBackend{}, a, b)
	}
	panic(unknownLevel(level))
}

// ShiftLOn is ShiftL evaluated on the given backend.
func ShiftLOn[T Integers, A Array[T]](level DispatchLevel, a Vec[T, A], count uint) Vec[T, A] {
	switch level {
	case DispatchScalar:
		return shiftL[isa.Reg128](nullBackend{}, a, count)
	case DispatchSSE2:
		return shiftL[isa.Reg128](sse2Backend{}, a, count)
	case DispatchAVX2:
		return shiftL[isa.Reg256](avx2Backend{}, a, count)
	case DispatchNEON:
		return shiftL[isa.Reg128](neonBackend{}, a, count)
	case DispatchAltiVec:
		return shiftL[isa.Reg128](altivecBackend{}, a, count)
	}
	panic(unknownLevel(level))
}

// ShiftLConstOn is ShiftLConst evaluated on the given backend.
func ShiftLConstOn[T Integers, A Array[T]](level DispatchLevel, a Vec[T, A], count uint) Vec[T, A] {
	switch level {
	case DispatchScalar:
		return shiftLConst[isa.Reg128](nullBackend{}, a, count)
	case DispatchSSE2:
		return shiftLConst[isa.Reg128](sse2Backend{}, a, count)
	case DispatchAVX2:
		return shiftLConst[isa.Reg256](avx2Backend{}, a, count)
	case DispatchNEON:
		return shiftLConst[isa.Reg128](neonBackend{}, a, count)
	case DispatchAltiVec:
		return shiftLConst[isa.Reg128](altivecBackend{}, a, count)
	}
	panic(unknownLevel(level))
}

// MoveLOn is MoveL evaluated on the given backend.
func MoveLOn[T Lanes, A Array[T]](level DispatchLevel, a Vec[T, A], shift int) Vec[T, A] {
	switch level {
	case DispatchScalar:
		return moveL[isa.Reg128](nullBackend{}, a, shift)
	case DispatchSSE2:
		return moveL[isa.Reg128](sse2Backend{}, a, shift)
	case DispatchAVX2:
		return moveL[isa.Reg256](avx2Backend{}, a, shift)
	case DispatchNEON:
		return moveL[isa.Reg128](neonBackend{}, a, shift)
	case DispatchAltiVec:
		return moveL[isa.Reg128](altivecBackend{}, a, shift)
	}
	panic(unknownLevel(level))
}

// BroadcastWOn is BroadcastW evaluated on the given backend.
func BroadcastWOn[T Lanes, A Array[T]](level DispatchLevel, a Vec[T, A], s int) Vec[T, A] {
	switch level {
	case DispatchScalar:
		return broadcastW[isa.Reg128](nullBackend{}, a, s)
	case DispatchSSE2:
		return broadcastW[isa.Reg128](sse2Backend{}, a, s)
	case DispatchAVX2:
		return broadcastW[isa.Reg256](avx2Backend{}, a, s)
	case DispatchNEON:
		return broadcastW[isa.Reg128](neonBackend{}, a, s)
	case DispatchAltiVec:
		return broadcastW[isa.Reg128](altivecBackend{}, a, s)
	}
	panic(unknownLevel(level))
}

func unknownLevel(level DispatchLevel) string {
	return fmt.Sprintf("hwy: unknown dispatch level %d", int(level))
}

// BackendReport is the outcome of CheckBackend.
type BackendReport struct {
	Level    string         `yaml:"level"`
	Width    int            `yaml:"width"`
	Trials   int            `yaml:"trials"`
	Checks   int            `yaml:"checks"`
	Failures []CheckFailure `yaml:"failures,omitempty"`
}

// CheckFailure describes one result that differs from the reference
// evaluator.
type CheckFailure struct {
	Op    string `yaml:"op"`
	Shape string `yaml:"shape"`
	Arg   int    `yaml:"arg"`
	Got   string `yaml:"got"`
	Want  string `yaml:"want"`
}

// OK reports whether every check passed.
func (r BackendReport) OK() bool {
	return len(r.Failures) == 0
}

// maxFailures bounds the failures kept in one report.
const maxFailures = 32

// CheckBackend compares every operation on the given backend with the
// reference evaluator, on random vectors of several shapes including
// vectors wider than the backend's register and vectors smaller than it.
// The first trial also sweeps every shift count up to twice the lane width
// (plus 255..257), every MoveL shift and every BroadcastW lane.
//
// The result depends only on level, trials and seed.
func CheckBackend(level DispatchLevel, trials int, seed uint64) BackendReport {
	c := &checker{
		level:  level,
		rng:    rand.New(rand.NewPCG(seed, uint64(level))),
		report: BackendReport{Level: level.String(), Width: level.Width(), Trials: trials},
	}
	for trial := range trials {
		c.sweep = trial == 0

		checkAvg[uint8, [16]uint8](c)
		checkAvg[int8, [32]int8](c)
		checkAvg[uint8, [8]uint8](c)
		checkAvg[uint16, [8]uint16](c)
		checkAvg[int16, [16]int16](c)
		checkAvg[int16, [4]int16](c)
		checkAvg[uint32, [4]uint32](c)
		checkAvg[int32, [8]int32](c)
		checkAvg[uint32, [16]uint32](c)

		checkShift[uint8, [16]uint8](c)
		checkShift[int8, [64]int8](c)
		checkShift[uint16, [8]uint16](c)
		checkShift[int16, [16]int16](c)
		checkShift[uint32, [2]uint32](c)
		checkShift[int32, [8]int32](c)
		checkShift[uint64, [2]uint64](c)
		checkShift[int64, [4]int64](c)

		checkLanes[uint8, [16]uint8](c)
		checkLanes[uint8, [64]uint8](c)
		checkLanes[int8, [8]int8](c)
		checkLanes[uint16, [8]uint16](c)
		checkLanes[int16, [32]int16](c)
		checkLanes[uint32, [4]uint32](c)
		checkLanes[float32, [8]float32](c)
		checkLanes[uint64, [2]uint64](c)
		checkLanes[float64, [4]float64](c)
		checkLanes[int64, [8]int64](c)
	}
	return c.report
}

type checker struct {
	level  DispatchLevel
	rng    *rand.Rand
	sweep  bool
	report BackendReport
}

func checkAvg[T AvgLanes, A Array[T]](c *checker) {
	a, b := randomVec[T, A](c.rng), randomVec[T, A](c.rng)
	expect(c, "Avg", 0, AvgOn(c.level, a, b), ForEach2(a, b, avgScalar[T]))
	// Equal operands and operands differing by one exercise the rounding.
	expect(c, "Avg", 0, AvgOn(c.level, a, a), a)
	one := ForEach1(a, func(x T) T { return x | 1 })
	even := ForEach1(a, func(x T) T { return x &^ 1 })
	expect(c, "Avg", 1, AvgOn(c.level, one, even), one)
}

func checkShift[T Integers, A Array[T]](c *checker) {
	a := randomVec[T, A](c.rng)
	bits := laneBits[T]()
	counts := []uint{c.rng.UintN(bits + 1), c.rng.UintN(300)}
	if c.sweep {
		counts = counts[:0]
		for n := uint(0); n <= 2*bits; n++ {
			counts = append(counts, n)
		}
		counts = append(counts, 255, 256, 257)
	}
	for _, n := range counts {
		want := ForEach1(a, shiftLScalar[T](n))
		expect(c, "ShiftL", int(n), ShiftLOn(c.level, a, n), want)
		if n <= bits {
			expect(c, "ShiftLConst", int(n), ShiftLConstOn(c.level, a, n), want)
		}
	}
}

// checkLanes covers the lane-movement operations, which accept every lane
// type including floats.
func checkLanes[T Lanes, A Array[T]](c *checker) {
	a := randomVec[T, A](c.rng)
	blockLanes := BlockLanes[T]()
	shifts := []int{c.rng.IntN(blockLanes + 1)}
	lanes := []int{c.rng.IntN(len(a.lanes))}
	if c.sweep {
		shifts, lanes = shifts[:0], lanes[:0]
		for k := 0; k <= blockLanes; k++ {
			shifts = append(shifts, k)
		}
		for s := 0; s < len(a.lanes); s++ {
			lanes = append(lanes, s)
		}
	}
	for _, k := range shifts {
		expect(c, "MoveL", k, MoveLOn(c.level, a, k), moveLRef(a, k))
	}
	for _, s := range lanes {
		expect(c, "BroadcastW", s, BroadcastWOn(c.level, a, s), Set[T, A](a.lanes[s]))
	}
}

// moveLRef is MoveL written lane by lane.
func moveLRef[T Lanes, A Array[T]](a Vec[T, A], shift int) Vec[T, A] {
	var r Vec[T, A]
	blockLanes := BlockLanes[T]()
	for i := 0; i < len(r.lanes); i++ {
		j := i + shift
		if j < len(a.lanes) && j/blockLanes == i/blockLanes {
			r.lanes[i] = a.lanes[j]
		}
	}
	return r
}

// randomVec fills a vector with random bytes, biased toward 0x00, 0xFF,
// 0x80 and 0x7F so that lane extremes come up often.
func randomVec[T Lanes, A Array[T]](rng *rand.Rand) Vec[T, A] {
	var v Vec[T, A]
	b := v.bytes()
	for i := range b {
		switch rng.IntN(8) {
		case 0:
			b[i] = 0x00
		case 1:
			b[i] = 0xFF
		case 2:
			b[i] = 0x80
		case 3:
			b[i] = 0x7F
		default:
			b[i] = uint8(rng.Uint32())
		}
	}
	return v
}

// expect compares bit patterns, so NaN lanes compare equal to themselves.
func expect[T Lanes, A Array[T]](c *checker, op string, arg int, got, want Vec[T, A]) {
	c.report.Checks++
	if bytes.Equal(got.bytes(), want.bytes()) {
		return
	}
	if len(c.report.Failures) < maxFailures {
		c.report.Failures = append(c.report.Failures, CheckFailure{
			Op:    op,
			Shape: shapeName[T, A](),
			Arg:   arg,
			Got:   got.String(),
			Want:  want.String(),
		})
	}
}

func shapeName[T Lanes, A Array[T]]() string {
	var v Vec[T, A]
	var zero T
	return fmt.Sprintf("%Tx%d", zero, len(v.lanes))
}
