package Trees

import (
	"cmp"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// RBTree is a red-black tree stored in an arena of nodes addressed by indexes of type S.
// S bounds the number of nodes the tree can hold: a tree with S=uint16 holds at most 65535 nodes.
// Keys equal under the comparator are kept in insertion order; they are all placed to the right of
// the existing equal keys. The tree is not safe for concurrent use.
type RBTree[T any, S constraints.Unsigned] struct {
	base[T, S]
	cmp func(a, b T) int
}

// New empty tree ordered by cmp, which must impose a total order on T.
// hint preallocates room for that many nodes.
func New[T any, S constraints.Unsigned](cmp func(a, b T) int, hint S) *RBTree[T, S] {
	u := &RBTree[T, S]{cmp: cmp}
	u.init(hint)
	return u
}

// NewOrdered is New using cmp.Compare.
func NewOrdered[T cmp.Ordered, S constraints.Unsigned](hint S) *RBTree[T, S] {
	return New[T, S](cmp.Compare[T], hint)
}

// find the first node equal to v on the descent path, and its depth. Returns 0 if there's none.
func (u *RBTree[T, S]) find(v T) (S, int) {
	d := 0
	for curI := u.root; curI != 0; d++ {
		if c := u.cmp(v, *u.getV(curI)); c < 0 {
			curI = u.ifs[curI].l
		} else if c > 0 {
			curI = u.ifs[curI].r
		} else {
			return curI, d
		}
	}
	return 0, 0
}

// Insert v into the tree. Duplicates are allowed.
// Time: O(log n).
func (u *RBTree[T, S]) Insert(v T) {
	var p S
	left := false
	for curI := u.root; curI != 0; {
		p = curI
		if left = u.cmp(v, *u.getV(curI)) < 0; left {
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	z := u.alloc(v)
	u.ifs[z].p = p
	if p == 0 {
		u.root = z
	} else if left {
		u.ifs[p].l = z
	} else {
		u.ifs[p].r = z
	}
	u.paint(z, Red)
	u.size++
	u.insertFixup(z)
}

// insertFixup restores the red-black properties after z was attached as a red leaf.
// The only possible violation is z and its parent both being red.
func (u *RBTree[T, S]) insertFixup(z S) {
	for p := u.ifs[z].p; u.color(p) == Red; p = u.ifs[z].p {
		g := u.ifs[p].p // p is red so it isn't the root.
		if p == u.ifs[g].l {
			if y := u.ifs[g].r; u.color(y) == Red {
				u.paint(p, Black)
				u.paint(y, Black)
				u.paint(g, Red)
				z = g
				continue
			}
			if z == u.ifs[p].r {
				z = p
				u.rotateLeft(z)
				p = u.ifs[z].p
			}
			u.paint(p, Black)
			u.paint(g, Red)
			u.rotateRight(g)
		} else {
			if y := u.ifs[g].l; u.color(y) == Red {
				u.paint(p, Black)
				u.paint(y, Black)
				u.paint(g, Red)
				z = g
				continue
			}
			if z == u.ifs[p].l {
				z = p
				u.rotateRight(z)
				p = u.ifs[z].p
			}
			u.paint(p, Black)
			u.paint(g, Red)
			u.rotateLeft(g)
		}
	}
	u.paint(u.root, Black)
}

// Delete the first node equal to v found on the descent path. Returns a NotFoundError if there's none.
// A node with two children is not unlinked itself: it takes the key of its in-order successor, and the
// successor, which has at most one child, is unlinked instead.
// Time: O(log n).
func (u *RBTree[T, S]) Delete(v T) error {
	z, _ := u.find(v)
	if z == 0 {
		return &NotFoundError[T]{v}
	}
	y := z
	if u.ifs[z].l != 0 && u.ifs[z].r != 0 {
		y = u.minimum(u.ifs[z].r)
		*u.getV(z) = *u.getV(y)
	}
	x := u.ifs[y].l
	if x == 0 {
		x = u.ifs[y].r
	}
	xp, yc := u.ifs[y].p, u.color(y)
	u.relink(xp, y, x)
	u.addFree(y)
	u.size--
	if yc == Black {
		u.deleteFixup(x, xp)
	}
	return nil
}

// deleteFixup removes the extra black carried by x, whose parent is xp. x may be NIL, so its parent
// is passed along instead of being read from the NIL slot.
func (u *RBTree[T, S]) deleteFixup(x, xp S) {
	for x != u.root && u.color(x) == Black {
		if x == u.ifs[xp].l {
			w := u.ifs[xp].r
			if u.color(w) == Red {
				u.paint(w, Black)
				u.paint(xp, Red)
				u.rotateLeft(xp)
				w = u.ifs[xp].r
			}
			if u.color(u.ifs[w].l) == Black && u.color(u.ifs[w].r) == Black {
				u.paint(w, Red)
				x, xp = xp, u.ifs[xp].p
				continue
			}
			if u.color(u.ifs[w].r) == Black {
				u.paint(u.ifs[w].l, Black)
				u.paint(w, Red)
				u.rotateRight(w)
				w = u.ifs[xp].r
			}
			u.paint(w, u.color(xp))
			u.paint(xp, Black)
			u.paint(u.ifs[w].r, Black)
			u.rotateLeft(xp)
		} else {
			w := u.ifs[xp].l
			if u.color(w) == Red {
				u.paint(w, Black)
				u.paint(xp, Red)
				u.rotateRight(xp)
				w = u.ifs[xp].l
			}
			if u.color(u.ifs[w].l) == Black && u.color(u.ifs[w].r) == Black {
				u.paint(w, Red)
				x, xp = xp, u.ifs[xp].p
				continue
			}
			if u.color(u.ifs[w].l) == Black {
				u.paint(u.ifs[w].r, Black)
				u.paint(w, Red)
				u.rotateLeft(w)
				w = u.ifs[xp].l
			}
			u.paint(w, u.color(xp))
			u.paint(xp, Black)
			u.paint(u.ifs[w].l, Black)
			u.rotateRight(xp)
		}
		x, xp = u.root, 0
	}
	u.paint(x, Black)
}

// Search for the first node equal to v on the descent path. With duplicates this isn't necessarily
// the earliest inserted one. Returns a NotFoundError if there's none.
func (u *RBTree[T, S]) Search(v T) (Entry[T], error) {
	if i, d := u.find(v); i != 0 {
		return u.entry(i, d), nil
	}
	return Entry[T]{}, &NotFoundError[T]{v}
}

// Get the pointer to the element that's equal to v in the tree. The pointer is valid until the next
// Insert, Delete or Clear, and the key it points at mustn't be changed in a way that alters its order.
func (u *RBTree[T, S]) Get(v T) *T {
	if i, _ := u.find(v); i != 0 {
		return u.getV(i)
	}
	return nil
}

func (u *RBTree[T, S]) Has(v T) bool {
	i, _ := u.find(v)
	return i != 0
}

// Minimum element of the tree.
func (u *RBTree[T, S]) Minimum() (m T, ok bool) {
	if i := u.minimum(u.root); i != 0 {
		return *u.getV(i), true
	}
	return
}

// Maximum element of the tree.
func (u *RBTree[T, S]) Maximum() (m T, ok bool) {
	if i := u.maximum(u.root); i != 0 {
		return *u.getV(i), true
	}
	return
}

// Predecessor of v. If strict is true, result<v if found; otherwise, result<=v.
func (u *RBTree[T, S]) Predecessor(v T, strict bool) (p *T) {
	for curI := u.root; curI != 0; {
		if c := u.cmp(v, *u.getV(curI)); c < 0 || (strict && c == 0) {
			curI = u.ifs[curI].l
		} else {
			p = u.getV(curI)
			curI = u.ifs[curI].r
		}
	}
	return
}

// Successor of v. If strict is true, result>v if found; otherwise, result>=v.
func (u *RBTree[T, S]) Successor(v T, strict bool) (p *T) {
	for curI := u.root; curI != 0; {
		if c := u.cmp(v, *u.getV(curI)); c > 0 || (strict && c == 0) {
			curI = u.ifs[curI].r
		} else {
			p = u.getV(curI)
			curI = u.ifs[curI].l
		}
	}
	return
}

// Height is the number of nodes on the longest path from the root to a leaf. 0 for an empty tree.
func (u *RBTree[T, S]) Height() (h int) {
	for e := range u.PreOrder() {
		h = max(h, e.Depth+1)
	}
	return
}

// BlackHeight of the root: the number of black nodes below the root on any path down to NIL, NIL included.
// 0 for an empty tree.
func (u *RBTree[T, S]) BlackHeight() (h int) {
	if u.root == 0 {
		return 0
	}
	for i := u.ifs[u.root].l; ; i = u.ifs[i].l {
		if u.color(i) == Black {
			h++
		}
		if i == 0 {
			return
		}
	}
}

// Keys in ascending order.
func (u *RBTree[T, S]) Keys() []T {
	ks := make([]T, 0, u.size)
	for e := range u.InOrder() {
		ks = append(ks, e.Key)
	}
	return ks
}

// Values returns the keys in ascending order, as required by containers.Container.
func (u *RBTree[T, S]) Values() []interface{} {
	vs := make([]interface{}, 0, u.size)
	for e := range u.InOrder() {
		vs = append(vs, e.Key)
	}
	return vs
}

// String lists the nodes in order as key(COLOR).
func (u *RBTree[T, S]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "RBTree(%d)[", u.size)
	first := true
	for e := range u.InOrder() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
