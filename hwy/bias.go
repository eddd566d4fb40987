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

// viaUnsigned evaluates a signed operation with its unsigned counterpart.
// XOR with the sign bit maps the signed range onto the unsigned range in
// order (x -> x + 2^(n-1)), so for operations that commute with that offset,
// such as the rounded average, op(a^bias, b^bias)^bias is the signed result.
func viaUnsigned[R any](a, b, bias R, xor, op func(R, R) R) R {
	return xor(op(xor(a, bias), xor(b, bias)), bias)
}

// Sign-bit constants for the 128-bit and 256-bit backends.
func signBias8x16() isa.Reg128  { return isa.Splat8x16(0x80) }
func signBias16x8() isa.Reg128  { return isa.Splat16x8(0x8000) }
func signBias32x4() isa.Reg128  { return isa.Splat32x4(0x80000000) }
func signBias8x32() isa.Reg256  { return isa.Splat8x32(0x80) }
func signBias16x16() isa.Reg256 { return isa.Splat16x16(0x8000) }
func signBias32x8() isa.Reg256  { return isa.Splat32x8(0x80000000) }
