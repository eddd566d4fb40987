package hwy

import "fmt"

// MoveL moves the lanes of every 128-bit block shift positions toward lane
// 0, filling the vacated high lanes of the block with zeros:
//
//	result[i] = a[i+shift] if i+shift is in the same block as i, else 0
//
// Blocks never exchange lanes, also for vectors wider than 128 bits. The
// shift must be in [0, BlockLanes[T]()]; MoveL panics otherwise, and the
// lanecheck analyzer reports constant shifts out of that range. A shift of
// zero returns a unchanged and a shift of BlockLanes[T]() returns the zero
// vector.
//
// Example:
//
//	v := hwy.New[uint32]([4]uint32{1, 2, 3, 4})
//	hwy.MoveL(v, 1) // [2, 3, 4, 0]
func MoveL[T Lanes, A Array[T]](a Vec[T, A], shift int) Vec[T, A] {
	return moveL[nativeReg](active, a, shift)
}

// moveL works on bytes: moving whole lanes of any type is a byte move by
// shift*sizeof(T), with the same result on either byte order.
func moveL[R any, B chunkOps[R], T Lanes, A Array[T]](be B, a Vec[T, A], shift int) Vec[T, A] {
	blockLanes := BlockLanes[T]()
	switch {
	case shift < 0 || shift > blockLanes:
		panic(fmt.Sprintf("hwy: MoveL shift %d out of range [0, %d]", shift, blockLanes))
	case shift == 0:
		return a
	case shift == blockLanes:
		return Vec[T, A]{}
	}
	n := uint(shift * laneBytes[T]())
	return mapChunks1[R](be, a, func(r R) R { return be.moveL8(r, n) })
}
