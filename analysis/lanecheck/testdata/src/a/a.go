package a

import "github.com/go-highway/lanes/hwy"

type Sample int16

const lastLane = 7

func shifts(n uint) {
	u8 := hwy.New[uint8]([16]uint8{})
	i16 := hwy.New[int16]([8]int16{})
	s := hwy.New[Sample]([8]Sample{})

	hwy.ShiftLConst(u8, 8)
	hwy.ShiftLConst(u8, 9) // want `ShiftLConst count 9 exceeds the 8-bit lane width`
	hwy.ShiftLConst(i16, 15)
	hwy.ShiftLConst(i16, 16)
	hwy.ShiftLConst(i16, 2*9) // want `ShiftLConst count 18 exceeds the 16-bit lane width`
	hwy.ShiftLConst(s, 17)    // want `ShiftLConst count 17 exceeds the 16-bit lane width`
	hwy.ShiftLConst(u8, n)
	hwy.ShiftL(u8, 300)

	hwy.ShiftLConstOn(hwy.DispatchSSE2, u8, 12) // want `ShiftLConstOn count 12 exceeds the 8-bit lane width`
	hwy.ShiftLConst[uint8, [16]uint8](u8, 10)   // want `ShiftLConst count 10 exceeds the 8-bit lane width`
}

func moves(k int) {
	u32 := hwy.New[uint32]([8]uint32{})
	f64 := hwy.New[float64]([2]float64{})

	hwy.MoveL(u32, 0)
	hwy.MoveL(u32, 4)
	hwy.MoveL(u32, 5)  // want `MoveL shift 5 out of range \[0, 4\] for uint32 lanes`
	hwy.MoveL(u32, -1) // want `MoveL shift -1 out of range \[0, 4\] for uint32 lanes`
	hwy.MoveL(f64, 3)  // want `MoveL shift 3 out of range \[0, 2\] for float64 lanes`
	hwy.MoveL(u32, k)

	hwy.MoveLOn(hwy.DispatchSSE2, u32, 8) // want `MoveLOn shift 8 out of range \[0, 4\] for uint32 lanes`
}

func broadcasts(i int) {
	i16 := hwy.New[int16]([8]int16{})
	u8 := hwy.New[uint8]([32]uint8{})

	hwy.BroadcastW(i16, lastLane)
	hwy.BroadcastW(i16, lastLane+1) // want `BroadcastW lane 8 out of range \[0, 8\)`
	hwy.BroadcastW(u8, 31)
	hwy.BroadcastW(u8, 32) // want `BroadcastW lane 32 out of range \[0, 32\)`
	hwy.BroadcastW(u8, i)

	hwy.BroadcastWOn(hwy.DispatchSSE2, i16, -2) // want `BroadcastWOn lane -2 out of range \[0, 8\)`
}
