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

// ProcessWithTail is a helper for processing slices with vectors of type
// Vec[T, A] that handles both full vectors and the tail (remainder)
// automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of N
//
// Load zero-fills and Store truncates, so the tail can be processed with the
// same operations as full vectors:
//
//	hwy.ProcessWithTail[uint8, [16]uint8](len(a),
//	    func(offset int) {
//	        r := hwy.Avg(hwy.Load[uint8, [16]uint8](a[offset:]), hwy.Load[uint8, [16]uint8](b[offset:]))
//	        r.Store(out[offset:])
//	    },
//	    func(offset, count int) {
//	        r := hwy.Avg(hwy.Load[uint8, [16]uint8](a[offset:]), hwy.Load[uint8, [16]uint8](b[offset:]))
//	        r.Store(out[offset : offset+count])
//	    },
//	)
func ProcessWithTail[T Lanes, A Array[T]](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	n := vecLanes[T, A]()

	// Process full vectors
	fullVectors := size / n
	for i := range fullVectors {
		fullFn(i * n)
	}

	// Process tail if any
	remaining := size % n
	if remaining > 0 {
		tailFn(fullVectors*n, remaining)
	}
}

// ProcessOverlapping is similar to ProcessWithTail but doesn't require
// a tail function. Instead, it processes overlapping vectors for the tail.
// This is simpler but may do redundant work for the last few elements, so
// fullFn must be idempotent per element.
//
// Slices shorter than one vector get a single call with offset 0.
func ProcessOverlapping[T Lanes, A Array[T]](size int, fullFn func(offset int)) {
	n := vecLanes[T, A]()

	if size < n {
		// Single partial vector
		fullFn(0)
		return
	}

	// Process full vectors
	fullVectors := size / n
	for i := range fullVectors {
		fullFn(i * n)
	}

	// Process tail with overlapping vector if needed
	if size%n > 0 {
		fullFn(size - n)
	}
}

// AlignedSize rounds up size to the next multiple of the lane count of
// Vec[T, A]. This is useful for allocating buffers that will be processed
// without a tail.
func AlignedSize[T Lanes, A Array[T]](size int) int {
	n := vecLanes[T, A]()
	return ((size + n - 1) / n) * n
}

// IsAligned returns true if size is a multiple of the lane count of
// Vec[T, A].
func IsAligned[T Lanes, A Array[T]](size int) bool {
	return size%vecLanes[T, A]() == 0
}

func vecLanes[T Lanes, A Array[T]]() int {
	var v Vec[T, A]
	return len(v.lanes)
}
