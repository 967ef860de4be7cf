package Trees

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every NotFoundError through errors.Is.
var ErrNotFound = errors.New("key not found")

// NotFoundError is returned by Search and Delete when no node holds Key. The tree is unchanged.
type NotFoundError[T any] struct {
	Key T
}

func (e *NotFoundError[T]) Error() string {
	return fmt.Sprintf("key %v not found", e.Key)
}

func (e *NotFoundError[T]) Is(target error) bool {
	return target == ErrNotFound
}

// Rules reported by InvariantError.
const (
	RuleRedRoot       = "root is red"
	RuleRedRed        = "red node has a red child"
	RuleBlackHeight   = "subtrees have different black-heights"
	RuleParentLink    = "child does not link back to its parent"
	RuleOrder         = "keys are out of order"
	RuleSize          = "size does not match the number of nodes"
	RuleNilWritten    = "NIL slot was written"
	RuleRotateNil     = "rotation involves NIL"
	RuleIndexOverflow = "index type cannot address more nodes"
)

// InvariantError reports a broken red-black or arena invariant at node Index.
// Verify returns it; internal operations panic with it when one of their preconditions fails,
// which only happens if the tree was corrupted.
type InvariantError struct {
	Rule  string
	Index uint64
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("red-black tree invariant broken at node %d: %s", e.Index, e.Rule)
}
