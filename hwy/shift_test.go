package hwy

import (
	"math"
	"testing"
)

func TestShiftLConst_I16(t *testing.T) {
	v := Set[int16, [8]int16](-1)

	for _, level := range AllBackends() {
		t.Run(level.String(), func(t *testing.T) {
			result := ShiftLConstOn(level, v, 15)
			for i := 0; i < result.NumLanes(); i++ {
				if result.Get(i) != math.MinInt16 {
					t.Errorf("ShiftLConst: lane %d: got %v, want %v", i, result.Get(i), math.MinInt16)
				}
			}
		})
	}

	if got := ShiftLConst(v, 15); got != Set[int16, [8]int16](math.MinInt16) {
		t.Errorf("ShiftLConst(-1, 15) = %v", got)
	}
}

// Fixed 8-bit counts take the mask-then-shift path; lanes must not leak
// bits into their neighbours.
func TestShiftLConst_8Bit(t *testing.T) {
	u := New[uint8]([16]uint8{0x81, 0xFF, 1, 2, 0x80, 0x7F, 0x55, 0xAA, 3, 4, 5, 6, 7, 8, 9, 0x10})
	s := BitCast[int8, [16]int8](u)

	for _, level := range AllBackends() {
		for count := uint(0); count <= 8; count++ {
			if got, want := ShiftLConstOn(level, u, count), ForEach1(u, shiftLScalar[uint8](count)); got != want {
				t.Errorf("%v: ShiftLConst(uint8, %d) = %v, want %v", level, count, got, want)
			}
			if got, want := ShiftLConstOn(level, s, count), ForEach1(s, shiftLScalar[int8](count)); got != want {
				t.Errorf("%v: ShiftLConst(int8, %d) = %v, want %v", level, count, got, want)
			}
		}
	}
	want := New[uint8]([16]uint8{0x10, 0xF0, 0x10, 0x20, 0, 0xF0, 0x50, 0xA0, 0x30, 0x40, 0x50, 0x60, 0x70, 0x80, 0x90, 0})
	if got := ShiftLConst(u, 4); got != want {
		t.Errorf("ShiftLConst(u, 4) = %v, want %v", got, want)
	}
}

func TestShiftL_U8(t *testing.T) {
	v := New[uint8]([16]uint8{0x81, 0xFF, 1, 2, 0x80, 0x7F, 0x55, 0xAA, 3, 4, 5, 6, 7, 8, 9, 0x10})

	tests := []struct {
		name   string
		count  uint
		expect [16]uint8
	}{
		{
			name:   "zero",
			count:  0,
			expect: v.Lanes(),
		},
		{
			name:   "one",
			count:  1,
			expect: [16]uint8{0x02, 0xFE, 2, 4, 0, 0xFE, 0xAA, 0x54, 6, 8, 10, 12, 14, 16, 18, 0x20},
		},
		{
			name:   "seven",
			count:  7,
			expect: [16]uint8{0x80, 0x80, 0x80, 0, 0, 0x80, 0x80, 0, 0x80, 0, 0x80, 0, 0x80, 0, 0x80, 0},
		},
		{
			name:  "eight",
			count: 8,
		},
		{
			name:  "large",
			count: 300,
		},
	}

	for _, tt := range tests {
		for _, level := range AllBackends() {
			t.Run(tt.name+"/"+level.String(), func(t *testing.T) {
				result := ShiftLOn(level, v, tt.count)
				if result.Lanes() != tt.expect {
					t.Errorf("ShiftL(%d) = %#v, want %#v", tt.count, result.Lanes(), tt.expect)
				}
			})
		}
	}
}

func TestShiftL_Identities(t *testing.T) {
	a8 := New[int8]([32]int8{-1, 1, -128, 127, 5, -5, 64, -64})
	a16 := New[uint16]([16]uint16{0xFFFF, 1, 0x8000, 0x1234})
	a32 := New[int32]([4]int32{-1, 1, math.MinInt32, 0x1234567})
	a64 := New[uint64]([4]uint64{math.MaxUint64, 1, 1 << 63, 0x123456789})

	if got := ShiftL(a8, 0); got != a8 {
		t.Errorf("ShiftL(a8, 0) = %v, want %v", got, a8)
	}
	if got := ShiftL(a16, 0); got != a16 {
		t.Errorf("ShiftL(a16, 0) = %v, want %v", got, a16)
	}
	if got := ShiftL(a32, 32); got != (Vec[int32, [4]int32]{}) {
		t.Errorf("ShiftL(a32, 32) = %v, want zero", got)
	}
	if got := ShiftL(a64, 64); got != (Vec[uint64, [4]uint64]{}) {
		t.Errorf("ShiftL(a64, 64) = %v, want zero", got)
	}
	if got := ShiftLConst(a8, 8); got != (Int8x32{}) {
		t.Errorf("ShiftLConst(a8, 8) = %v, want zero", got)
	}
	if got := ShiftLConst(a64, 0); got != a64 {
		t.Errorf("ShiftLConst(a64, 0) = %v, want %v", got, a64)
	}
}

// Counts whose low byte is 0 or has the sign bit set, and counts that wrap
// modulo the lane width, must still clear every lane.
func TestShiftL_LargeCounts(t *testing.T) {
	a16 := Set[uint16, [8]uint16](0xFFFF)
	a32 := Set[uint32, [4]uint32](math.MaxUint32)
	a64 := Set[int64, [2]int64](-1)

	for _, level := range AllBackends() {
		for _, count := range []uint{16, 17, 31, 32, 33, 64, 65, 128, 200, 255, 256, 257, 1 << 20} {
			if got := ShiftLOn(level, a16, count); got != (Uint16x8{}) {
				t.Errorf("%v: ShiftL(uint16, %d) = %v, want zero", level, count, got)
			}
			if count < 32 {
				continue
			}
			if got := ShiftLOn(level, a32, count); got != (Uint32x4{}) {
				t.Errorf("%v: ShiftL(uint32, %d) = %v, want zero", level, count, got)
			}
			if count < 64 {
				continue
			}
			if got := ShiftLOn(level, a64, count); got != (Int64x2{}) {
				t.Errorf("%v: ShiftL(int64, %d) = %v, want zero", level, count, got)
			}
		}
	}
}

func TestShiftL_MatchesReference(t *testing.T) {
	a := New[int16]([16]int16{-1, 1, math.MinInt16, math.MaxInt16, 0x0101, -0x0101, 3, -3, 0x4000, 7, 8, 9, 10, 11, 12, 13})

	for _, level := range AllBackends() {
		for count := uint(0); count <= 40; count++ {
			want := ForEach1(a, func(x int16) int16 { return x << count })
			if got := ShiftLOn(level, a, count); got != want {
				t.Errorf("%v: ShiftL(%d) = %v, want %v", level, count, got, want)
			}
		}
	}
}

func TestShiftLConst_Panics(t *testing.T) {
	count := uint(9)
	defer func() {
		if recover() == nil {
			t.Errorf("ShiftLConst(uint8, %d) did not panic", count)
		}
	}()
	ShiftLConst(Uint8x16{}, count)
}
