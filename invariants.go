package bstree

import "fmt"

// Check validates structural tree invariants: strict BST ordering via
// min/max bound propagation (open bounds at the root, tightened on each
// descent) and consistency of the maintained size with the number of
// reachable nodes.
//
// Check re-derives everything independently of the bookkeeping the
// operations maintain. This checker is intentionally strict and is meant as
// a self-check and test oracle, not as part of normal operation.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidStructure)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree must have size=0, has %d", ErrInvalidStructure, t.size)
		}
		return nil
	}
	count, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d nodes reachable, size=%d)",
			ErrInvalidStructure, count, t.size)
	}
	return nil
}

func (t *Tree[T]) checkNode(n *node[T], min, max *T) (count int, err error) {
	if n == nil {
		return 0, nil
	}
	if min != nil && n.value <= *min {
		return 0, fmt.Errorf("%w: value %v at or below lower bound %v",
			ErrInvalidStructure, n.value, *min)
	}
	if max != nil && n.value >= *max {
		return 0, fmt.Errorf("%w: value %v at or above upper bound %v",
			ErrInvalidStructure, n.value, *max)
	}
	lcount, err := t.checkNode(n.left, min, &n.value)
	if err != nil {
		return 0, err
	}
	rcount, err := t.checkNode(n.right, &n.value, max)
	if err != nil {
		return 0, err
	}
	return lcount + rcount + 1, nil
}
