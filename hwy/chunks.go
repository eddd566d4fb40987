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

// mapChunks1 applies op to every native chunk of a and writes the results
// back in order. A final partial chunk is zero padded on load and truncated
// on store, so padding lanes never reach the result.
func mapChunks1[R any, B chunkOps[R], T Lanes, A Array[T]](be B, a Vec[T, A], op func(R) R) Vec[T, A] {
	var r Vec[T, A]
	src, dst := a.bytes(), r.bytes()
	w := be.width()
	for off := 0; off < len(src); off += w {
		end := min(off+w, len(src))
		be.store(op(be.load(src[off:end])), dst[off:end])
	}
	return r
}

// mapChunks2 is the two-operand form of mapChunks1. Chunk i of the result
// depends only on chunk i of a and b.
func mapChunks2[R any, B chunkOps[R], T Lanes, A Array[T]](be B, a, b Vec[T, A], op func(R, R) R) Vec[T, A] {
	var r Vec[T, A]
	sa, sb, dst := a.bytes(), b.bytes(), r.bytes()
	w := be.width()
	for off := 0; off < len(sa); off += w {
		end := min(off+w, len(sa))
		be.store(op(be.load(sa[off:end]), be.load(sb[off:end])), dst[off:end])
	}
	return r
}

// fillChunks stores the same register into every chunk position of a new
// vector.
func fillChunks[R any, B chunkOps[R], T Lanes, A Array[T]](be B, reg R) Vec[T, A] {
	var r Vec[T, A]
	dst := r.bytes()
	w := be.width()
	for off := 0; off < len(dst); off += w {
		be.store(reg, dst[off:min(off+w, len(dst))])
	}
	return r
}
