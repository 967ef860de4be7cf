package Go_Utils

import (
	"math/bits"
	"testing"
)

func TestBitArray_UpDown(t *testing.T) {
	a := NewBitArray(130)
	if a.Len() < 130 {
		t.Fatalf("len is %d, want at least 130", a.Len())
	}
	for i := 0; i < 130; i += 3 {
		a.Up(i)
	}
	for i := 0; i < 130; i++ {
		if a.Get(i) != (i%3 == 0) {
			t.Errorf("wrong bit at %d", i)
		}
	}
	for i := 0; i < 130; i += 6 {
		a.Down(i)
	}
	for i := 0; i < 130; i++ {
		if a.Get(i) != (i%3 == 0 && i%6 != 0) {
			t.Errorf("wrong bit at %d after Down", i)
		}
	}
	if a.Count() != 22 {
		t.Errorf("count is %d, want 22", a.Count())
	}
	a.Reset()
	if a.Count() != 0 {
		t.Errorf("count is %d after Reset", a.Count())
	}
}

func TestBitArray_Grow(t *testing.T) {
	var a BitArray
	if a.Get(1000) {
		t.Fatal("empty array has a set bit")
	}
	a.Grow(0)
	a.Up(0)
	a.Grow(bits.UintSize * 4)
	a.Set(bits.UintSize*4, true)
	if !a.Get(0) || !a.Get(bits.UintSize*4) {
		t.Fatal("bits lost after Grow")
	}
	if a.Get(1) || a.Get(bits.UintSize*4-1) {
		t.Fatal("new bits are not 0")
	}
	a.Set(0, false)
	if a.Get(0) {
		t.Fatal("Set false did not clear")
	}
}
