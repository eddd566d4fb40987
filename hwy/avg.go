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

// Avg returns the rounded average of each pair of lanes: (a + b + 1) >> 1
// computed at twice the lane width, so the sum never overflows. For signed
// lanes the shift floors: Avg(-3, 0) is -1 and Avg(-4, 1) is -1.
//
// Example:
//
//	a := hwy.New[uint8]([16]uint8{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120, 130, 140, 150})
//	r := hwy.Avg(a, hwy.Set[uint8, [16]uint8](255))
//	// r = [128, 133, 138, ..., 203]
func Avg[T AvgLanes, A Array[T]](a, b Vec[T, A]) Vec[T, A] {
	return avg[nativeReg](active, a, b)
}

func avg[R any, B chunkOps[R], T AvgLanes, A Array[T]](be B, a, b Vec[T, A]) Vec[T, A] {
	var op func(R, R) R
	signed := isSigned[T]()
	switch laneBytes[T]() {
	case 1:
		op = pick(signed, be.avgI8, be.avgU8)
	case 2:
		op = pick(signed, be.avgI16, be.avgU16)
	default:
		op = pick(signed, be.avgI32, be.avgU32)
	}
	return mapChunks2[R](be, a, b, op)
}

func pick[F any](signed bool, s, u F) F {
	if signed {
		return s
	}
	return u
}
