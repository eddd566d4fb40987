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

import "unsafe"

// BlockBytes is the size of the 128-bit blocks that lane-moving operations
// such as MoveL work within, on every backend.
const BlockBytes = 16

// ChunkLanes returns the number of lanes of type T in one native register of
// the compiled-in backend.
//
// For example, with AVX2 (32-byte registers):
//   - uint8: 32 lanes
//   - int16: 16 lanes
//   - float64: 4 lanes
func ChunkLanes[T Lanes]() int {
	return NativeBytes / laneBytes[T]()
}

// BlockLanes returns the number of lanes of type T in a 128-bit block.
// This is the largest shift MoveL accepts.
func BlockLanes[T Lanes]() int {
	return BlockBytes / laneBytes[T]()
}

// NumChunks returns how many native registers a vector of type Vec[T, A]
// occupies. A final partial register counts as one.
func NumChunks[T Lanes, A Array[T]]() int {
	var v Vec[T, A]
	n := int(unsafe.Sizeof(v.lanes))
	return (n + NativeBytes - 1) / NativeBytes
}

func laneBytes[T Lanes]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func laneBits[T Lanes]() uint {
	return uint(laneBytes[T]()) * 8
}

// isSigned reports whether T is a signed integer type. Defined types such as
// `type Sample int16` classify like their underlying type.
func isSigned[T Integers]() bool {
	var z T
	z--
	return z < 0
}
