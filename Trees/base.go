package Trees

import (
	Go_Utils "github.com/g-m-twostay/rbtree-utils"
	"golang.org/x/exp/constraints"
)

// Color of a node. NIL is always Black.
type Color bool

const (
	Black Color = false
	Red   Color = true
)

func (c Color) String() string {
	if c == Red {
		return "RED"
	}
	return "BLACK"
}

// A node in the arena. The zero value is NIL: every link points at index 0.
type info[S constraints.Unsigned] struct {
	l, r, p S
}

// base is an arena of nodes addressed by indexes of type S. Index 0 is NIL and is never written.
type base[T any, S constraints.Unsigned] struct {
	root, free, size S                 // free is the beginning of the linked list that contains all the free indexes; info[S]::l represents next.
	ifs              []info[S]         // len(ifs)=len(vs)+1
	vs               []T               // vs[i-1] is the key of ifs[i].
	reds             Go_Utils.BitArray // bit i is 1 iff ifs[i] is red.
}

func (u *base[T, S]) init(hint S) {
	u.ifs = make([]info[S], 1, int(hint)+1)
	u.vs = make([]T, 0, hint)
	u.reds = Go_Utils.NewBitArray(int(hint) + 1)
}

func (u *base[T, S]) getV(i S) *T {
	return &u.vs[i-1]
}

func (u *base[T, S]) color(i S) Color {
	return Color(u.reds.Get(int(i)))
}

// paint node i with c. Painting NIL black is a no-op; painting it red panics.
func (u *base[T, S]) paint(i S, c Color) {
	if i == 0 {
		if c == Red {
			panic(&InvariantError{RuleNilWritten, 0})
		}
		return
	}
	u.reds.Set(int(i), bool(c))
}

// alloc a node holding v with all links NIL. Free indexes are reused before the arena grows.
func (u *base[T, S]) alloc(v T) S {
	if i := u.popFree(); i != 0 {
		u.vs[i-1] = v
		return i
	}
	i := S(len(u.ifs))
	if int(i) != len(u.ifs) || i == 0 {
		panic(&InvariantError{RuleIndexOverflow, uint64(len(u.ifs))})
	}
	u.ifs = append(u.ifs, info[S]{})
	u.vs = append(u.vs, v)
	u.reds.Grow(int(i))
	return i
}

// addFree index once. The key is zeroed so the arena doesn't keep it alive.
func (u *base[T, S]) addFree(a S) {
	u.vs[a-1] = *new(T)
	u.reds.Down(int(a))
	u.ifs[a] = info[S]{l: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
// The returned node is reset to all NIL links.
func (u *base[T, S]) popFree() S {
	b := u.free
	if b != 0 {
		u.free = u.ifs[b].l
		u.ifs[b] = info[S]{}
	}
	return b
}

// relink puts n in the place of o under p, or makes n the root when p is NIL. n may be NIL.
func (u *base[T, S]) relink(p, o, n S) {
	if p == 0 {
		u.root = n
	} else if u.ifs[p].l == o {
		u.ifs[p].l = n
	} else {
		u.ifs[p].r = n
	}
	if n != 0 {
		u.ifs[n].p = p
	}
}

// rotateLeft at x: x's right child y takes x's place, x becomes y's left child and y's old left subtree becomes x's right.
//
//	  x            y
//	 / \          / \
//	a   y   ->   x   c
//	   / \      / \
//	  b   c    a   b
func (u *base[T, S]) rotateLeft(x S) {
	y := u.ifs[x].r
	if x == 0 || y == 0 {
		panic(&InvariantError{RuleRotateNil, uint64(x)})
	}
	b := u.ifs[y].l
	u.ifs[x].r = b
	if b != 0 {
		u.ifs[b].p = x
	}
	u.relink(u.ifs[x].p, x, y)
	u.ifs[y].l = x
	u.ifs[x].p = y
}

// rotateRight is the mirror of rotateLeft.
func (u *base[T, S]) rotateRight(x S) {
	y := u.ifs[x].l
	if x == 0 || y == 0 {
		panic(&InvariantError{RuleRotateNil, uint64(x)})
	}
	b := u.ifs[y].r
	u.ifs[x].l = b
	if b != 0 {
		u.ifs[b].p = x
	}
	u.relink(u.ifs[x].p, x, y)
	u.ifs[y].r = x
	u.ifs[x].p = y
}

func (u *base[T, S]) minimum(i S) S {
	for i != 0 && u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

func (u *base[T, S]) maximum(i S) S {
	for i != 0 && u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}

// next node in order after curI, 0 if curI is the maximum.
func (u *base[T, S]) next(curI S) S {
	if r := u.ifs[curI].r; r != 0 {
		return u.minimum(r)
	}
	p := u.ifs[curI].p
	for p != 0 && u.ifs[p].r == curI {
		curI, p = p, u.ifs[p].p
	}
	return p
}

// depth of node i, the root is at 0.
func (u *base[T, S]) depth(i S) (d int) {
	for i = u.ifs[i].p; i != 0; i = u.ifs[i].p {
		d++
	}
	return
}

func (u *base[T, S]) side(i S) Side {
	if p := u.ifs[i].p; p == 0 {
		return Root
	} else if u.ifs[p].l == i {
		return Left
	}
	return Right
}

func (u *base[T, S]) entry(i S, d int) Entry[T] {
	return Entry[T]{*u.getV(i), u.color(i), d, u.side(i)}
}

func (u *base[T, S]) Size() int {
	return int(u.size)
}

func (u *base[T, S]) Empty() bool {
	return u.root == 0
}

// Clear the tree. The memory of the arena is kept for reuse.
func (u *base[T, S]) Clear() {
	clear(u.vs)
	u.ifs, u.vs = u.ifs[:1], u.vs[:0]
	u.reds.Reset()
	u.root, u.free, u.size = 0, 0, 0
}
