package isa

import "testing"

func bytesOf(vals ...uint8) Reg128 {
	return Load128(vals)
}

func TestLoadStore128(t *testing.T) {
	r := Load128([]byte{1, 2, 3})
	if r.Bytes()[0] != 1 || r.Bytes()[2] != 3 || r.Bytes()[3] != 0 {
		t.Errorf("Load128 = %v", r.Bytes())
	}
	dst := []byte{9, 9}
	Store128(r, dst)
	if dst[0] != 1 || dst[1] != 2 {
		t.Errorf("Store128 = %v, want [1 2]", dst)
	}
}

func TestCombine(t *testing.T) {
	lo, hi := Splat8x16(1), Splat8x16(2)
	r := Combine(lo, hi)
	if r.Lo() != lo || r.Hi() != hi {
		t.Errorf("Combine halves = %v, %v", r.Lo(), r.Hi())
	}
	if r.Bytes()[15] != 1 || r.Bytes()[16] != 2 {
		t.Errorf("Combine byte layout = %v", r.Bytes())
	}
}

func TestShuffle4(t *testing.T) {
	if got := Shuffle4(3, 2, 1, 0); got != 0x1B {
		t.Errorf("Shuffle4(3,2,1,0) = %#x, want 0x1b", got)
	}
	if got := Shuffle4(1, 1, 1, 1); got != 0x55 {
		t.Errorf("Shuffle4(1,1,1,1) = %#x, want 0x55", got)
	}
}

func TestPsllwSaturates(t *testing.T) {
	a := Splat16x8(0xFFFF)
	tests := []struct {
		count uint
		want  uint16
	}{
		{0, 0xFFFF},
		{1, 0xFFFE},
		{15, 0x8000},
		{16, 0},
		{1000, 0},
	}
	for _, tt := range tests {
		r := Psllw(a, tt.count)
		if got := r.U16()[3]; got != tt.want {
			t.Errorf("Psllw(%d) = %#x, want %#x", tt.count, got, tt.want)
		}
	}
}

func TestPsrldq(t *testing.T) {
	a := bytesOf(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	r := Psrldq(a, 5)
	b := r.Bytes()
	if b[0] != 5 || b[10] != 15 || b[11] != 0 || b[15] != 0 {
		t.Errorf("Psrldq(5) = %v", b)
	}
	if Psrldq(a, 16) != (Reg128{}) {
		t.Errorf("Psrldq(16) is not zero")
	}
}

func TestPshufhw(t *testing.T) {
	var a Reg128
	for i := range a.U16() {
		a.U16()[i] = uint16(i)
	}
	r := Pshufhw(a, Shuffle4(3, 3, 3, 3))
	want := [8]uint16{0, 1, 2, 3, 7, 7, 7, 7}
	if *r.U16() != want {
		t.Errorf("Pshufhw = %v, want %v", *r.U16(), want)
	}
}

func TestUshlReadsSignedLowByte(t *testing.T) {
	a := Splat16x8(0x00F0)
	tests := []struct {
		name  string
		count uint16
		want  uint16
	}{
		{name: "left 4", count: 4, want: 0x0F00},
		{name: "width", count: 16, want: 0},
		{name: "right 4", count: 0xFC, want: 0x000F},
		{name: "low byte zero", count: 0x100, want: 0x00F0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := VshlU16(a, Splat16x8(tt.count))
			if got := r.U16()[0]; got != tt.want {
				t.Errorf("VshlU16(%#x) = %#x, want %#x", tt.count, got, tt.want)
			}
		})
	}
}

func TestVslWrapsCount(t *testing.T) {
	r := Vslh(Splat16x8(1), Splat16x8(17))
	if got := r.U16()[0]; got != 2 {
		t.Errorf("Vslh(1, 17) = %d, want 2", got)
	}
	r = Vslb(Splat8x16(1), Splat8x16(9))
	if got := r.Bytes()[0]; got != 2 {
		t.Errorf("Vslb(1, 9) = %d, want 2", got)
	}
}

func TestVshlN8(t *testing.T) {
	r := VshlN8(bytesOf(0x81, 0xFF, 1, 0x40), 3)
	want := bytesOf(0x08, 0xF8, 0x08, 0x00)
	if r != want {
		t.Errorf("VshlN8(_, 3) = %x, want %x", *r.Bytes(), *want.Bytes())
	}
}

func TestVspltisb(t *testing.T) {
	if got := Vspltisb(-1); got != Ones128() {
		t.Errorf("Vspltisb(-1) = %x, want all ones", *got.Bytes())
	}
	r := Vspltisb(5)
	if got := r.Bytes()[15]; got != 5 {
		t.Errorf("Vspltisb(5) lane 15 = %d, want 5", got)
	}
}

func TestVext(t *testing.T) {
	a := bytesOf(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	b := Splat8x16(0xEE)
	r := Vext(a, b, 14)
	got := r.Bytes()
	if got[0] != 14 || got[1] != 15 || got[2] != 0xEE || got[15] != 0xEE {
		t.Errorf("Vext(14) = %v", got)
	}
	if Vsldoi(a, b, 3) != Vext(a, b, 3) {
		t.Errorf("Vsldoi differs from Vext")
	}
}

func TestVperm2i128(t *testing.T) {
	a := Combine(Splat8x16(1), Splat8x16(2))
	b := Combine(Splat8x16(3), Splat8x16(4))
	tests := []struct {
		imm    uint8
		lo, hi uint8
	}{
		{0x00, 1, 1},
		{0x11, 2, 2},
		{0x20, 1, 3},
		{0x31, 2, 4},
		{0x08, 0, 1},
		{0x80, 1, 0},
	}
	for _, tt := range tests {
		r := Vperm2i128(a, b, tt.imm)
		if r.Lo() != Splat8x16(tt.lo) || r.Hi() != Splat8x16(tt.hi) {
			t.Errorf("Vperm2i128(%#x) = %v", tt.imm, r.Bytes())
		}
	}
}

func TestVpsrldqPerHalf(t *testing.T) {
	var a Reg256
	for i := range a.Bytes() {
		a.Bytes()[i] = uint8(i)
	}
	r := Vpsrldq(a, 1)
	b := r.Bytes()
	if b[14] != 15 || b[15] != 0 || b[16] != 17 || b[31] != 0 {
		t.Errorf("Vpsrldq(1) = %v", b)
	}
}

func TestVperm(t *testing.T) {
	a := bytesOf(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	b := Splat8x16(0xBB)
	sel := bytesOf(15, 16, 31, 0, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8)
	r := Vperm(a, b, sel)
	got := r.Bytes()
	if got[0] != 15 || got[1] != 0xBB || got[2] != 0xBB || got[3] != 0 || got[4] != 8 {
		t.Errorf("Vperm = %v", got)
	}
}
