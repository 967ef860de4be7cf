package Trees

import (
	"iter"

	"github.com/emirpasic/gods/containers"
)

// Tree is an ordered collection that allows duplicates.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool), and x shouldn't be used.
// Receivers returning *T return nil when there's no such element; the pointer is only valid until
// the tree is modified.
type Tree[T any] interface {
	containers.Container
	//Insert v to the Tree. Equal elements are kept.
	Insert(v T)
	//Delete one element equal to v. Returns an error matching ErrNotFound if there's none.
	Delete(v T) error
	//Search for an element equal to v. Returns an error matching ErrNotFound if there's none.
	Search(v T) (Entry[T], error)
	//Has element v. Cheaper than Search when only presence matters.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor of v. If strict is true, result<v; otherwise result<=v.
	Predecessor(v T, strict bool) *T
	//Successor of v. If strict is true, result>v; otherwise result>=v.
	Successor(v T, strict bool) *T
	//InOrder traversal of the tree. The tree must not be modified during the iteration.
	InOrder() iter.Seq[Entry[T]]
	//PreOrder traversal of the tree. The tree must not be modified during the iteration.
	PreOrder() iter.Seq[Entry[T]]
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
}

var _ Tree[int] = (*RBTree[int, uint32])(nil)
