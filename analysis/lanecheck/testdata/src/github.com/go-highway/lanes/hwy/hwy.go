// Package hwy is a minimal stand-in with the signatures lanecheck inspects.
package hwy

type Lanes interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

type Integers interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

type Array[T Lanes] interface {
	~[2]T | ~[4]T | ~[8]T | ~[16]T | ~[32]T | ~[64]T
}

type Vec[T Lanes, A Array[T]] struct{ lanes A }

type DispatchLevel int

const DispatchSSE2 DispatchLevel = 1

func New[T Lanes, A Array[T]](lanes A) Vec[T, A] { return Vec[T, A]{lanes} }

func ShiftLConst[T Integers, A Array[T]](a Vec[T, A], count uint) Vec[T, A] { return a }

func ShiftLConstOn[T Integers, A Array[T]](level DispatchLevel, a Vec[T, A], count uint) Vec[T, A] {
	return a
}

func ShiftL[T Integers, A Array[T]](a Vec[T, A], count uint) Vec[T, A] { return a }

func MoveL[T Lanes, A Array[T]](a Vec[T, A], shift int) Vec[T, A] { return a }

func MoveLOn[T Lanes, A Array[T]](level DispatchLevel, a Vec[T, A], shift int) Vec[T, A] { return a }

func BroadcastW[T Lanes, A Array[T]](a Vec[T, A], s int) Vec[T, A] { return a }

func BroadcastWOn[T Lanes, A Array[T]](level DispatchLevel, a Vec[T, A], s int) Vec[T, A] { return a }
