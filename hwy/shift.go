package hwy

import "fmt"

// ShiftL shifts every lane left by count bits, filling with zeros. The
// count is a run-time value; counts of at least the lane width produce a
// zero vector on every backend. Signed and unsigned lanes behave the same.
//
// Example:
//
//	v := hwy.New[uint8]([16]uint8{0x81, 0xFF, 1, 2})
//	hwy.ShiftL(v, 1)  // [0x02, 0xFE, 2, 4, 0, ...]
//	hwy.ShiftL(v, 8)  // all zero
func ShiftL[T Integers, A Array[T]](a Vec[T, A], count uint) Vec[T, A] {
	return shiftL[nativeReg](active, a, count)
}

// ShiftLConst is ShiftL for a shift count that is fixed at the call site.
// The count must be at most the lane width in bits: the lanecheck analyzer
// reports constant counts above it, and ShiftLConst panics on them. A count
// of zero returns a unchanged and a count equal to the lane width returns
// the zero vector, both without running any instruction.
//
// Example:
//
//	v := hwy.Set[int16, [8]int16](-1)
//	hwy.ShiftLConst(v, 15) // every lane is math.MinInt16
func ShiftLConst[T Integers, A Array[T]](a Vec[T, A], count uint) Vec[T, A] {
	return shiftLConst[nativeReg](active, a, count)
}

func shiftLConst[R any, B chunkOps[R], T Integers, A Array[T]](be B, a Vec[T, A], count uint) Vec[T, A] {
	bits := laneBits[T]()
	switch {
	case count > bits:
		panic(fmt.Sprintf("hwy: ShiftLConst count %d exceeds lane width %d", count, bits))
	case count == 0:
		return a
	case count == bits:
		return Vec[T, A]{}
	}
	if laneBytes[T]() == 1 {
		return mapChunks1[R](be, a, func(r R) R { return be.shiftLConst8(r, count) })
	}
	return shiftL[R](be, a, count)
}

func shiftL[R any, B chunkOps[R], T Integers, A Array[T]](be B, a Vec[T, A], count uint) Vec[T, A] {
	var op func(R, uint) R
	switch laneBytes[T]() {
	case 1:
		op = be.shiftL8
	case 2:
		op = be.shiftL16
	case 4:
		op = be.shiftL32
	default:
		op = be.shiftL64
	}
	return mapChunks1[R](be, a, func(r R) R { return op(r, count) })
}
