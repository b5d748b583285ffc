package bstree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "golang.org/x/exp/constraints"

// Insert adds a value to the tree. It returns true if the value was
// inserted, false if the value is already present, in which case the tree
// is left unchanged.
//
// The walk is iterative and allocates exactly one node on success.
// Time: O(D); Space: O(1)
func (t *Tree[T]) Insert(v T) bool {
	if t.root == nil {
		t.root = &node[T]{value: v}
		t.size++
		return true
	}
	for cur := t.root; ; {
		if v > cur.value {
			if cur.right == nil {
				cur.right = &node[T]{value: v}
				t.size++
				return true
			}
			cur = cur.right
		} else if v < cur.value {
			if cur.left == nil {
				cur.left = &node[T]{value: v}
				t.size++
				return true
			}
			cur = cur.left
		} else {
			return false
		}
	}
}

// Delete removes a value from the tree. It returns true if the value was
// removed, false if the value is not present, in which case the tree is
// left unchanged.
//
// Deletion is in-place and asymmetric. A target with a right subtree
// receives the value of its in-order successor (the leftmost node of the
// right subtree) and the successor's node is unlinked, adopting the
// successor's own right child. A target with only a left subtree is treated
// symmetrically with its in-order predecessor. A leaf is unlinked directly.
// The target node's storage is reused rather than freed, except in the leaf
// case.
// Time: O(D); Space: O(1)
func (t *Tree[T]) Delete(v T) bool {
	link := &t.root
	for *link != nil {
		if cur := *link; cur.value > v {
			link = &cur.left
		} else if cur.value < v {
			link = &cur.right
		} else {
			break
		}
	}
	target := *link
	if target == nil {
		return false
	}
	if target.right != nil {
		cur := target.right
		if cur.left == nil {
			// The right child is the successor itself.
			target.value = cur.value
			target.right = cur.right
			cur.right = nil
		} else {
			for cur.left.left != nil {
				cur = cur.left
			}
			succ := cur.left
			target.value = succ.value
			cur.left = succ.right
			succ.right = nil
		}
	} else if target.left != nil {
		cur := target.left
		if cur.right == nil {
			// The left child is the predecessor itself.
			target.value = cur.value
			target.left = cur.left
			cur.left = nil
		} else {
			for cur.right.right != nil {
				cur = cur.right
			}
			pred := cur.right
			target.value = pred.value
			cur.right = pred.left
			pred.left = nil
		}
	} else {
		*link = nil
	}
	t.size--
	return true
}

// Contains reports whether a value is present in the tree. The walk is
// iterative and does not mutate the tree.
// Time: O(D); Space: O(1)
func (t *Tree[T]) Contains(v T) bool {
	if t == nil {
		return false
	}
	for cur := t.root; cur != nil; {
		if cur.value > v {
			cur = cur.left
		} else if cur.value < v {
			cur = cur.right
		} else {
			return true
		}
	}
	return false
}

// nodepair pairs corresponding positions of two trees for the structural
// co-walk in Equal.
type nodepair[T constraints.Ordered] struct {
	a, b *node[T]
}

// Equal reports structural equality: both trees must have identical shape
// and identical values at every corresponding position. This is stricter
// than holding the same set of values — two trees with equal value sets but
// different shapes (one bulk-loaded, one built by sequential insertion, say)
// compare unequal. Both trees empty compare equal.
//
// The co-walk is iterative with an explicit stack of node pairs.
// Time: O(n)
func (t *Tree[T]) Equal(other *Tree[T]) bool {
	if t == nil || other == nil {
		return t.IsEmpty() && other.IsEmpty()
	}
	if t.size != other.size {
		return false
	}
	stack := make([]nodepair[T], 0, 16)
	stack = append(stack, nodepair[T]{t.root, other.root})
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.a == nil && p.b == nil {
			continue
		}
		if p.a == nil || p.b == nil {
			return false
		}
		if p.a.value != p.b.value {
			return false
		}
		stack = append(stack, nodepair[T]{p.a.left, p.b.left}, nodepair[T]{p.a.right, p.b.right})
	}
	return true
}
