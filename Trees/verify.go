package Trees

// Verify checks every red-black and arena invariant and returns an InvariantError describing the first
// broken one, or nil. Time: O(n). The check recurses once per level, so stack depth is O(log n) on a
// valid tree.
func (u *RBTree[T, S]) Verify() error {
	if u.ifs[0] != (info[S]{}) || u.reds.Get(0) {
		return &InvariantError{RuleNilWritten, 0}
	}
	if u.color(u.root) == Red {
		return &InvariantError{RuleRedRoot, uint64(u.root)}
	}
	if u.root != 0 && u.ifs[u.root].p != 0 {
		return &InvariantError{RuleParentLink, uint64(u.root)}
	}
	n := 0
	if _, err := u.check(u.root, &n); err != nil {
		return err
	}
	if n != int(u.size) {
		return &InvariantError{RuleSize, uint64(u.root)}
	}
	var prev *T
	for curI := u.minimum(u.root); curI != 0; curI = u.next(curI) {
		if prev != nil && u.cmp(*prev, *u.getV(curI)) > 0 {
			return &InvariantError{RuleOrder, uint64(curI)}
		}
		prev = u.getV(curI)
	}
	return nil
}

// Corrupt returns whether the tree violates any of the properties checked by Verify.
func (u *RBTree[T, S]) Corrupt() bool {
	return u.Verify() != nil
}

// check the subtree at curI and return its black-height, NIL counted. n accumulates the node count.
func (u *RBTree[T, S]) check(curI S, n *int) (int, error) {
	if curI == 0 {
		return 1, nil
	}
	*n++
	cur := u.ifs[curI]
	for _, c := range [2]S{cur.l, cur.r} {
		if c != 0 && u.ifs[c].p != curI {
			return 0, &InvariantError{RuleParentLink, uint64(c)}
		}
		if c != 0 && u.color(curI) == Red && u.color(c) == Red {
			return 0, &InvariantError{RuleRedRed, uint64(curI)}
		}
	}
	lh, err := u.check(cur.l, n)
	if err != nil {
		return 0, err
	}
	rh, err := u.check(cur.r, n)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, &InvariantError{RuleBlackHeight, uint64(curI)}
	}
	if u.color(curI) == Black {
		lh++
	}
	return lh, nil
}
