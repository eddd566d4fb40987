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
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCheckBackend(t *testing.T) {
	for _, level := range AllBackends() {
		t.Run(level.String(), func(t *testing.T) {
			report := CheckBackend(level, 200, 1)
			if report.Checks == 0 {
				t.Fatalf("CheckBackend ran no checks")
			}
			if diff := cmp.Diff([]CheckFailure(nil), report.Failures); diff != "" {
				t.Errorf("CheckBackend failures (-want +got):\n%s", diff)
			}
			if !report.OK() {
				t.Errorf("report.OK() = false")
			}
		})
	}
}

func TestCheckBackend_Deterministic(t *testing.T) {
	a := CheckBackend(DispatchSSE2, 3, 42)
	b := CheckBackend(DispatchSSE2, 3, 42)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("CheckBackend not deterministic (-first +second):\n%s", diff)
	}
	if a.Level != "sse2" || a.Width != 16 || a.Trials != 3 {
		t.Errorf("report header = %+v", a)
	}
}

// Every backend agrees with every other on random 32-byte vectors, so a
// divergence is reported as a lane diff between two backends.
func TestBackendsAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	levels := AllBackends()

	for trial := 0; trial < 100; trial++ {
		a := randomVec[uint16, [16]uint16](rng)
		b := randomVec[uint16, [16]uint16](rng)
		count := rng.UintN(20)
		shift := rng.IntN(BlockLanes[uint16]() + 1)
		s := rng.IntN(16)

		type result struct {
			Avg, Shift, Move, Broadcast [16]uint16
		}
		var results []result
		for _, level := range levels {
			results = append(results, result{
				Avg:       AvgOn(level, a, b).Lanes(),
				Shift:     ShiftLOn(level, a, count).Lanes(),
				Move:      MoveLOn(level, a, shift).Lanes(),
				Broadcast: BroadcastWOn(level, a, s).Lanes(),
			})
		}
		for i := 1; i < len(results); i++ {
			if diff := cmp.Diff(results[0], results[i]); diff != "" {
				t.Fatalf("trial %d: %v and %v differ (-%v +%v):\n%s",
					trial, levels[0], levels[i], levels[0], levels[i], diff)
			}
		}
	}
}

func TestActiveBackend(t *testing.T) {
	if got := active.level(); got != CurrentLevel() {
		t.Errorf("active backend level = %v, want %v", got, CurrentLevel())
	}
	if active.width() != NativeBytes {
		t.Errorf("active backend width = %d, want NativeBytes = %d", active.width(), NativeBytes)
	}
	if CurrentLevel().Width() != CurrentWidth() {
		t.Errorf("CurrentLevel().Width() = %d, want %d", CurrentLevel().Width(), CurrentWidth())
	}
	if HardwareInstructions() && CurrentLevel() != DispatchSSE2 && CurrentLevel() != DispatchAVX2 {
		t.Errorf("HardwareInstructions() = true for %v", CurrentLevel())
	}
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, want %q", CurrentName(), CurrentLevel().String())
	}
}

// The compiled-in backend, which is not one of the models when built with
// GOEXPERIMENT=simd, matches the reference evaluator.
func TestActiveBackendMatchesReference(t *testing.T) {
	if !HostSupported() {
		t.Skipf("host does not implement %v", CurrentLevel())
	}
	checkBackendOps[nativeReg](t, active, 5)
}

// checkBackendOps runs every operation directly on be, over vectors wider and
// narrower than its register, and compares with the reference evaluator.
func checkBackendOps[R any, B chunkOps[R]](t *testing.T, be B, seed uint64) {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, 3))
	for trial := 0; trial < 50; trial++ {
		checkAvgOps[R, B, uint8, [64]uint8](t, be, rng)
		checkAvgOps[R, B, int8, [16]int8](t, be, rng)
		checkAvgOps[R, B, int16, [32]int16](t, be, rng)
		checkAvgOps[R, B, uint16, [4]uint16](t, be, rng)
		checkAvgOps[R, B, int32, [8]int32](t, be, rng)
		checkAvgOps[R, B, uint32, [16]uint32](t, be, rng)

		checkShiftOps[R, B, uint8, [32]uint8](t, be, rng)
		checkShiftOps[R, B, int8, [8]int8](t, be, rng)
		checkShiftOps[R, B, int16, [16]int16](t, be, rng)
		checkShiftOps[R, B, uint32, [8]uint32](t, be, rng)
		checkShiftOps[R, B, int64, [4]int64](t, be, rng)
		checkShiftOps[R, B, uint64, [2]uint64](t, be, rng)

		checkLaneOps[R, B, uint8, [64]uint8](t, be, rng)
		checkLaneOps[R, B, int16, [8]int16](t, be, rng)
		checkLaneOps[R, B, float32, [8]float32](t, be, rng)
		checkLaneOps[R, B, uint32, [2]uint32](t, be, rng)
		checkLaneOps[R, B, float64, [4]float64](t, be, rng)
		checkLaneOps[R, B, int64, [8]int64](t, be, rng)
	}
}

func checkAvgOps[R any, B chunkOps[R], T AvgLanes, A Array[T]](t *testing.T, be B, rng *rand.Rand) {
	t.Helper()
	a, b := randomVec[T, A](rng), randomVec[T, A](rng)
	if got, want := avg[R](be, a, b), ForEach2(a, b, avgScalar[T]); got != want {
		t.Fatalf("%v Avg %s(%v, %v) = %v, want %v", be.level(), shapeName[T, A](), a, b, got, want)
	}
}

func checkShiftOps[R any, B chunkOps[R], T Integers, A Array[T]](t *testing.T, be B, rng *rand.Rand) {
	t.Helper()
	a := randomVec[T, A](rng)
	bits := laneBits[T]()
	for count := uint(0); count <= 2*bits+1; count++ {
		want := ForEach1(a, shiftLScalar[T](count))
		if got := shiftL[R](be, a, count); got != want {
			t.Fatalf("%v ShiftL %s(%v, %d) = %v, want %v", be.level(), shapeName[T, A](), a, count, got, want)
		}
		if count > bits {
			continue
		}
		if got := shiftLConst[R](be, a, count); got != want {
			t.Fatalf("%v ShiftLConst %s(%v, %d) = %v, want %v", be.level(), shapeName[T, A](), a, count, got, want)
		}
	}
}

func checkLaneOps[R any, B chunkOps[R], T Lanes, A Array[T]](t *testing.T, be B, rng *rand.Rand) {
	t.Helper()
	a := randomVec[T, A](rng)
	for k := 0; k <= BlockLanes[T](); k++ {
		got, want := moveL[R](be, a, k), moveLRef(a, k)
		if !bytes.Equal(got.bytes(), want.bytes()) {
			t.Fatalf("%v MoveL %s(%v, %d) = %v, want %v", be.level(), shapeName[T, A](), a, k, got, want)
		}
	}
	for s := 0; s < a.NumLanes(); s++ {
		got, want := broadcastW[R](be, a, s), Set[T, A](a.Get(s))
		if !bytes.Equal(got.bytes(), want.bytes()) {
			t.Fatalf("%v BroadcastW %s(%v, %d) = %v, want %v", be.level(), shapeName[T, A](), a, s, got, want)
		}
	}
}

func TestDispatchLevelNames(t *testing.T) {
	for _, level := range AllBackends() {
		got, err := ParseDispatchLevel(level.String())
		if err != nil {
			t.Errorf("ParseDispatchLevel(%q): %v", level.String(), err)
			continue
		}
		if got != level {
			t.Errorf("ParseDispatchLevel(%q) = %v, want %v", level.String(), got, level)
		}
	}
	if got, err := ParseDispatchLevel(" NULL "); err != nil || got != DispatchScalar {
		t.Errorf("ParseDispatchLevel(null) = %v, %v", got, err)
	}
	if _, err := ParseDispatchLevel("avx512"); err == nil {
		t.Errorf("ParseDispatchLevel(avx512) succeeded")
	}
	if DispatchLevel(99).String() != "unknown" {
		t.Errorf("DispatchLevel(99).String() = %q", DispatchLevel(99).String())
	}
}

func TestGeometry(t *testing.T) {
	if got := BlockLanes[uint8](); got != 16 {
		t.Errorf("BlockLanes[uint8]() = %d, want 16", got)
	}
	if got := BlockLanes[float64](); got != 2 {
		t.Errorf("BlockLanes[float64]() = %d, want 2", got)
	}
	if got := ChunkLanes[uint32](); got != NativeBytes/4 {
		t.Errorf("ChunkLanes[uint32]() = %d, want %d", got, NativeBytes/4)
	}
	if got := NumChunks[uint8, [64]uint8](); got != 64/NativeBytes {
		t.Errorf("NumChunks[uint8, [64]uint8]() = %d, want %d", got, 64/NativeBytes)
	}
	if got := NumChunks[uint8, [8]uint8](); got != 1 {
		t.Errorf("NumChunks[uint8, [8]uint8]() = %d, want 1", got)
	}
	if !isSigned[int8]() || isSigned[uint64]() || !isSigned[Sample]() {
		t.Errorf("isSigned misclassifies")
	}
}

func TestAvgOnUnknownLevel(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("AvgOn(unknown) did not panic")
		}
	}()
	AvgOn(DispatchLevel(42), Uint8x16{}, Uint8x16{})
}
