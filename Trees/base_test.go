package Trees

import (
	"errors"
	"slices"
	"testing"

	"golang.org/x/exp/constraints"
)

// shape is a snapshot of the links of an arena.
type shape[S constraints.Unsigned] struct {
	root S
	ifs  []info[S]
}

func (u *base[T, S]) shape() shape[S] {
	return shape[S]{u.root, slices.Clone(u.ifs)}
}

func (a shape[S]) equal(b shape[S]) bool {
	return a.root == b.root && slices.Equal(a.ifs, b.ifs)
}

// plain builds a tree of keys without balancing by linking each node under its parent.
func plain(keys ...int) *RBTree[int, uint16] {
	tree := NewOrdered[int, uint16](uint16(len(keys)))
	for _, k := range keys {
		var p uint16
		for curI := tree.root; curI != 0; {
			p = curI
			if k < *tree.getV(curI) {
				curI = tree.ifs[curI].l
			} else {
				curI = tree.ifs[curI].r
			}
		}
		z := tree.alloc(k)
		tree.ifs[z].p = p
		if p == 0 {
			tree.root = z
		} else if k < *tree.getV(p) {
			tree.ifs[p].l = z
		} else {
			tree.ifs[p].r = z
		}
		tree.size++
	}
	return tree
}

func TestBase_Rotate(t *testing.T) {
	//      50
	//     /
	//    20
	//   /  \
	//  10   30
	//      /  \
	//     25   40
	tree := plain(50, 20, 10, 30, 25, 40)
	x, _ := tree.find(20)
	y, _ := tree.find(30)
	b, _ := tree.find(25)
	p, _ := tree.find(50)
	before := tree.shape()
	keys := tree.Keys()

	tree.rotateLeft(x)
	if tree.ifs[p].l != y || tree.ifs[y].p != p {
		t.Fatal("promoted child is not linked under the old parent")
	}
	if tree.ifs[y].l != x || tree.ifs[x].p != y {
		t.Fatal("rotated node is not the left child of the promoted one")
	}
	if tree.ifs[x].r != b || tree.ifs[b].p != x {
		t.Fatal("inner subtree was not moved")
	}
	if !slices.Equal(tree.Keys(), keys) {
		t.Fatal("rotation changed the key order")
	}
	tree.rotateRight(y)
	if !tree.shape().equal(before) {
		t.Fatal("rotateLeft then rotateRight didn't restore the shape")
	}
}

func TestBase_RotateRoot(t *testing.T) {
	tree := plain(2, 1, 3)
	before := tree.shape()
	r, _ := tree.find(2)
	tree.rotateRight(r)
	if m, _ := tree.find(1); tree.root != m || tree.ifs[m].p != 0 {
		t.Fatal("left child didn't become the root")
	}
	if d := tree.depth(r); d != 1 {
		t.Fatalf("old root at depth %d, want 1", d)
	}
	tree.rotateLeft(tree.root)
	if !tree.shape().equal(before) {
		t.Fatal("rotations at the root didn't round trip")
	}
}

func TestBase_RotateRandom(t *testing.T) {
	tree := NewOrdered[int, uint16](0)
	for range 500 {
		tree.Insert(rg.Intn(300))
	}
	keys := tree.Keys()
	for i := uint16(1); i < uint16(len(tree.ifs)); i++ {
		before := tree.shape()
		if tree.ifs[i].r != 0 {
			y := tree.ifs[i].r
			tree.rotateLeft(i)
			if !slices.Equal(tree.Keys(), keys) {
				t.Fatalf("rotateLeft at %d changed the key order", i)
			}
			tree.rotateRight(y)
		}
		if tree.ifs[i].l != 0 {
			y := tree.ifs[i].l
			tree.rotateRight(i)
			if !slices.Equal(tree.Keys(), keys) {
				t.Fatalf("rotateRight at %d changed the key order", i)
			}
			tree.rotateLeft(y)
		}
		if !tree.shape().equal(before) {
			t.Fatalf("rotations at %d didn't round trip", i)
		}
	}
	tree.mustVerify(t)
}

func expectInvariantPanic(t *testing.T, rule string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		var ie *InvariantError
		if err, ok := r.(error); !ok || !errors.As(err, &ie) || ie.Rule != rule {
			t.Fatalf("got panic %v, want %s", r, rule)
		}
	}()
	f()
}

func TestBase_Preconditions(t *testing.T) {
	tree := plain(1, 2)
	one, _ := tree.find(1)
	two, _ := tree.find(2)
	expectInvariantPanic(t, RuleRotateNil, func() { tree.rotateRight(one) })
	expectInvariantPanic(t, RuleRotateNil, func() { tree.rotateLeft(two) })
	expectInvariantPanic(t, RuleRotateNil, func() { tree.rotateLeft(0) })
	expectInvariantPanic(t, RuleNilWritten, func() { tree.paint(0, Red) })
	tree.paint(0, Black)
	if tree.reds.Get(0) || tree.ifs[0] != (info[uint16]{}) {
		t.Fatal("NIL slot was written")
	}
}

func TestBase_Free(t *testing.T) {
	var u base[string, uint8]
	u.init(2)
	a, b := u.alloc("a"), u.alloc("b")
	u.paint(b, Red)
	u.addFree(a)
	u.addFree(b)
	if u.reds.Get(int(b)) || u.vs[b-1] != "" {
		t.Fatal("freed slot keeps its color or key")
	}
	if c := u.alloc("c"); c != b || u.ifs[c] != (info[uint8]{}) {
		t.Fatalf("free slot %d not reused or not reset", c)
	}
	if c := u.alloc("d"); c != a {
		t.Fatalf("free slot %d not reused", c)
	}
	if c := u.alloc("e"); c != 3 || u.popFree() != 0 {
		t.Fatal("arena didn't grow after the free list ran out")
	}
}
