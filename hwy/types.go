// Package hwy provides portable SIMD lane operations with compile-time
// backend selection.
//
// Every operation behaves identically on every backend (scalar reference,
// SSE2, AVX2, NEON, AltiVec); only the instruction sequence differs. The
// backend is fixed by the build (GOARCH plus the noasm and hwy_avx2 build
// tags), so no operation branches on the backend at run time.
//
// On amd64, building with GOEXPERIMENT=simd issues the SSE2 and AVX2
// sequences as real instructions through simd/archsimd. Without it, and on
// the other architectures, backends run pure-Go models of their
// instructions from package isa.
//
// Basic usage:
//
//	import "github.com/go-highway/lanes/hwy"
//
//	a := hwy.New[uint8]([16]uint8{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120, 130, 140, 150})
//	b := hwy.Set[uint8, [16]uint8](255)
//
//	r := hwy.Avg(a, b)         // rounded average, no overflow
//	r = hwy.ShiftL(r, 1)       // runtime shift count
//	r = hwy.MoveL(r, 3)        // move lanes toward lane 0 within each 128-bit block
//	r = hwy.BroadcastW(r, 5)   // every lane becomes r[5]
//
// Vectors wider than the native register are processed as a sequence of
// native-width chunks.
package hwy

import (
	"fmt"
	"unsafe"
)

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types. Operations taking Integers
// ignore signedness; the signed and unsigned types of one width behave the
// same.
type Integers interface {
	SignedInts | UnsignedInts
}

// AvgLanes is the constraint for Avg: 8, 16 and 32-bit integers of either
// signedness.
type AvgLanes interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Array is the storage of a vector: a fixed-size array of lanes. Its length
// is the vector's lane count N.
type Array[T Lanes] interface {
	~[2]T | ~[4]T | ~[8]T | ~[16]T | ~[32]T | ~[64]T
}

// Vec is a vector of len(A) lanes of type T.
//
// Vec is a value type: operations take vectors by value and return new
// vectors. The zero value is the all-zero vector.
type Vec[T Lanes, A Array[T]] struct {
	lanes A
}

// Common vector shapes.
type (
	Int8x16   = Vec[int8, [16]int8]
	Uint8x16  = Vec[uint8, [16]uint8]
	Int16x8   = Vec[int16, [8]int16]
	Uint16x8  = Vec[uint16, [8]uint16]
	Int32x4   = Vec[int32, [4]int32]
	Uint32x4  = Vec[uint32, [4]uint32]
	Int64x2   = Vec[int64, [2]int64]
	Uint64x2  = Vec[uint64, [2]uint64]
	Float32x4 = Vec[float32, [4]float32]
	Float64x2 = Vec[float64, [2]float64]

	Int8x32   = Vec[int8, [32]int8]
	Uint8x32  = Vec[uint8, [32]uint8]
	Int16x16  = Vec[int16, [16]int16]
	Uint16x16 = Vec[uint16, [16]uint16]
	Int32x8   = Vec[int32, [8]int32]
	Uint32x8  = Vec[uint32, [8]uint32]
	Int64x4   = Vec[int64, [4]int64]
	Uint64x4  = Vec[uint64, [4]uint64]
	Float32x8 = Vec[float32, [8]float32]
	Float64x4 = Vec[float64, [4]float64]
)

// New creates a vector from its lanes.
//
//	v := hwy.New[int16]([8]int16{1, 2, 3, 4, 5, 6, 7, 8})
func New[T Lanes, A Array[T]](lanes A) Vec[T, A] {
	return Vec[T, A]{lanes: lanes}
}

// Load creates a vector from the first N elements of src.
// Lanes beyond len(src) are zero.
func Load[T Lanes, A Array[T]](src []T) Vec[T, A] {
	var v Vec[T, A]
	n := min(len(src), len(v.lanes))
	for i := 0; i < n; i++ {
		v.lanes[i] = src[i]
	}
	return v
}

// Store writes the vector's lanes to dst, truncating to len(dst).
func Store[T Lanes, A Array[T]](v Vec[T, A], dst []T) {
	n := min(len(dst), len(v.lanes))
	for i := 0; i < n; i++ {
		dst[i] = v.lanes[i]
	}
}

// Set creates a vector with all lanes set to value.
func Set[T Lanes, A Array[T]](value T) Vec[T, A] {
	var v Vec[T, A]
	for i := 0; i < len(v.lanes); i++ {
		v.lanes[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes, A Array[T]]() Vec[T, A] {
	return Vec[T, A]{}
}

// BitCast reinterprets the storage of v as a vector of U lanes. Both vectors
// must have the same size in bytes; this is a reinterpretation, not a numeric
// conversion.
//
//	bytes := hwy.BitCast[uint8, [16]uint8](hwy.New[uint32]([4]uint32{1, 2, 3, 4}))
func BitCast[U Lanes, B Array[U], T Lanes, A Array[T]](v Vec[T, A]) Vec[U, B] {
	var r Vec[U, B]
	if unsafe.Sizeof(r.lanes) != unsafe.Sizeof(v.lanes) {
		panic(fmt.Sprintf("hwy: BitCast between %d and %d byte vectors",
			unsafe.Sizeof(v.lanes), unsafe.Sizeof(r.lanes)))
	}
	copy(r.bytes(), v.bytes())
	return r
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T, A]) NumLanes() int {
	return len(v.lanes)
}

// Lanes returns a copy of the vector's storage.
func (v Vec[T, A]) Lanes() A {
	return v.lanes
}

// Get returns lane i. It panics if i is out of range, like an array index.
func (v Vec[T, A]) Get(i int) T {
	return v.lanes[i]
}

// Data returns the lanes as a new slice.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T, A]) Data() []T {
	out := make([]T, len(v.lanes))
	Store(v, out)
	return out
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T, A]) Store(dst []T) {
	Store(v, dst)
}

// String formats the lanes like an array.
func (v Vec[T, A]) String() string {
	return fmt.Sprint(v.lanes)
}

// bytes views the vector's storage as bytes in memory order.
func (v *Vec[T, A]) bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&v.lanes)), unsafe.Sizeof(v.lanes))
}
