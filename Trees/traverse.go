package Trees

import (
	"fmt"
	"iter"

	"github.com/g-m-twostay/rbtree-utils/Queues"
	"golang.org/x/exp/constraints"
)

// Side of its parent a node hangs from.
type Side uint8

const (
	Root Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return "Root"
}

// Entry describes a node as seen by traversals and Search. Depth is 0 at the root.
// Depth and Side are relative to the shape of the tree at the time the Entry is produced.
type Entry[T any] struct {
	Key   T
	Color Color
	Depth int
	Side  Side
}

func (e Entry[T]) String() string {
	return fmt.Sprintf("%v(%v)", e.Key, e.Color)
}

// All traversals below are lazy and restartable: every range over the returned sequence starts from
// the root. They only read the tree, which mustn't be modified until the iteration ends.
// They walk the parent links, so they use O(1) memory except LevelOrder.

// InOrder yields the nodes in ascending order.
func (u *RBTree[T, S]) InOrder() iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		d := 0
		curI := u.root
		for ; curI != 0 && u.ifs[curI].l != 0; curI = u.ifs[curI].l {
			d++
		}
		for curI != 0 {
			if !yield(u.entry(curI, d)) {
				return
			}
			if r := u.ifs[curI].r; r != 0 {
				for curI, d = r, d+1; u.ifs[curI].l != 0; curI = u.ifs[curI].l {
					d++
				}
				continue
			}
			for {
				p := u.ifs[curI].p
				d--
				if p == 0 || u.ifs[p].l == curI {
					curI = p
					break
				}
				curI = p
			}
		}
	}
}

// InOrderR yields the nodes in descending order.
func (u *RBTree[T, S]) InOrderR() iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		d := 0
		curI := u.root
		for ; curI != 0 && u.ifs[curI].r != 0; curI = u.ifs[curI].r {
			d++
		}
		for curI != 0 {
			if !yield(u.entry(curI, d)) {
				return
			}
			if l := u.ifs[curI].l; l != 0 {
				for curI, d = l, d+1; u.ifs[curI].r != 0; curI = u.ifs[curI].r {
					d++
				}
				continue
			}
			for {
				p := u.ifs[curI].p
				d--
				if p == 0 || u.ifs[p].r == curI {
					curI = p
					break
				}
				curI = p
			}
		}
	}
}

// PreOrder yields a node before its left subtree and then its right subtree. Together with Depth and
// Side this is enough to draw the tree top-down.
func (u *RBTree[T, S]) PreOrder() iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		for curI, d := u.root, 0; curI != 0; {
			if !yield(u.entry(curI, d)) {
				return
			}
			if cur := u.ifs[curI]; cur.l != 0 {
				curI, d = cur.l, d+1
			} else if cur.r != 0 {
				curI, d = cur.r, d+1
			} else {
				curI, d = u.nextPre(curI, d)
			}
		}
	}
}

// nextPre climbs from the leaf curI at depth d to the first ancestor whose right subtree isn't
// visited yet, and returns that right child. Returns 0 when the traversal is done.
func (u *RBTree[T, S]) nextPre(curI S, d int) (S, int) {
	for p := u.ifs[curI].p; p != 0; curI, p = p, u.ifs[p].p {
		d--
		if r := u.ifs[p].r; u.ifs[p].l == curI && r != 0 {
			return r, d + 1
		}
	}
	return 0, 0
}

type cursor[S constraints.Unsigned] struct {
	i S
	d int
}

// LevelOrder yields the nodes breadth first, left to right within a depth.
func (u *RBTree[T, S]) LevelOrder() iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		if u.root == 0 {
			return
		}
		q := Queues.NewArrayQueue[cursor[S]](uint(u.size/2 + 1))
		q.Push(cursor[S]{u.root, 0})
		for !q.Empty() {
			c, _ := q.Pop()
			if !yield(u.entry(c.i, c.d)) {
				return
			}
			if l := u.ifs[c.i].l; l != 0 {
				q.Push(cursor[S]{l, c.d + 1})
			}
			if r := u.ifs[c.i].r; r != 0 {
				q.Push(cursor[S]{r, c.d + 1})
			}
		}
	}
}
