package hwy

import "fmt"

// BroadcastW returns a vector whose every lane equals lane s of a. Unlike
// MoveL it crosses 128-bit blocks and native chunks. s must be in [0, N);
// BroadcastW panics otherwise, and the lanecheck analyzer reports constant
// indices out of that range.
//
// Example:
//
//	v := hwy.New[int16]([8]int16{10, 11, 12, 13, 14, 15, 16, 17})
//	hwy.BroadcastW(v, 5) // [15, 15, 15, 15, 15, 15, 15, 15]
func BroadcastW[T Lanes, A Array[T]](a Vec[T, A], s int) Vec[T, A] {
	return broadcastW[nativeReg](active, a, s)
}

// broadcastW locates the chunk holding lane s, broadcasts within that
// register and replicates the register to every chunk of the result.
func broadcastW[R any, B chunkOps[R], T Lanes, A Array[T]](be B, a Vec[T, A], s int) Vec[T, A] {
	if s < 0 || s >= len(a.lanes) {
		panic(fmt.Sprintf("hwy: BroadcastW lane %d out of range [0, %d)", s, len(a.lanes)))
	}
	size := laneBytes[T]()
	w := be.width()
	chunkLanes := w / size
	off := (s / chunkLanes) * w
	local := uint(s % chunkLanes)

	src := a.bytes()
	reg := be.load(src[off:min(off+w, len(src))])
	switch size {
	case 1:
		reg = be.broadcast8(reg, local)
	case 2:
		reg = be.broadcast16(reg, local)
	case 4:
		reg = be.broadcast32(reg, local)
	default:
		reg = be.broadcast64(reg, local)
	}
	return fillChunks[R, B, T, A](be, reg)
}
