package Go_Utils

import (
	"math/bits"
)

// NewBitArray with room for at least size bits, all 0.
func NewBitArray(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a packed array of bits. The zero value is an empty array; use Grow before Up or Down.
// Get on an index beyond Len reads 0.
type BitArray struct {
	bits []uint
}

func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	if w := i / bits.UintSize; w < len(u.bits) {
		return (u.bits[w]>>(i%bits.UintSize))&1 == 1
	}
	return false
}

func (u BitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Set bit i to b.
func (u BitArray) Set(i int, b bool) {
	if b {
		u.Up(i)
	} else {
		u.Down(i)
	}
}

// Grow the array so that index i is addressable. Existing bits are kept, new bits are 0.
func (u *BitArray) Grow(i int) {
	if w := i/bits.UintSize + 1; w > len(u.bits) {
		if w <= cap(u.bits) {
			u.bits = u.bits[:w]
		} else {
			u.bits = append(u.bits, make([]uint, w-len(u.bits))...)
		}
	}
}

// Reset all bits to 0 without releasing memory.
func (u BitArray) Reset() {
	clear(u.bits)
}

// Count of bits that are 1.
func (u BitArray) Count() (n int) {
	for _, w := range u.bits {
		n += bits.OnesCount(w)
	}
	return
}
