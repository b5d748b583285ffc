package bstree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// node is a single tree node. A node exclusively owns its two subtrees:
// left holds only values smaller than value, right only larger ones.
type node[T constraints.Ordered] struct {
	value T
	left  *node[T]
	right *node[T]
}

// Tree is an ordered set of unique values, stored as an unbalanced binary
// search tree.
//
// A tree created by
//
//	Tree[int]{}
//
// is a valid object and behaves like the empty set, as does New[int]().
//
// The tree never rebalances itself, so operation cost depends on how it was
// built. D is the height of the tree, n the number of values.
//
//	Operation     |  bulk-loaded    |  worst case
//	--------------+-----------------+------------
//	Insert        |   O(log n)      |   O(n)
//	Delete        |   O(log n)      |   O(n)
//	Contains      |   O(log n)      |   O(n)
//	Size          |   O(1)          |   O(1)
//	Equal         |   O(n)          |   O(n)
//
// All operations are single-threaded and run to completion on the calling
// goroutine.
//
// A nil *Tree behaves like an empty tree for all read-only operations
// (Contains, Size, IsEmpty, Min, Max, Height, Equal, Clone, Check and the
// printers). Mutating a nil tree (Insert, Delete, Take, Clear) panics,
// following the convention of nil maps.
type Tree[T constraints.Ordered] struct {
	root *node[T]
	size int
}

// New creates an empty tree.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// FromValues bulk-loads a tree from an unsorted slice of values.
//
// The input is copied, sorted ascending, and inserted midpoint-first over
// recursively halved index ranges, which yields a near-balanced shape
// (height ≈ log2(n)) regardless of the input order. A nil slice is rejected
// with ErrIllegalArguments; an empty non-nil slice yields an empty tree.
//
// Duplicate input values are silently dropped by Insert's duplicate check,
// so the resulting Size may be smaller than len(values).
func FromValues[T constraints.Ordered](values []T) (*Tree[T], error) {
	if values == nil {
		return nil, ErrIllegalArguments
	}
	sorted := make([]T, len(values))
	copy(sorted, values)
	slices.Sort(sorted)
	duplicates := 0
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			duplicates++
		}
	}
	if duplicates > 0 {
		tracer().Debugf("bulk-load dropping %d duplicate values", duplicates)
	}
	t := New[T]()
	t.bisect(sorted, 0, len(sorted))
	return t, nil
}

// bisect inserts the midpoint of sorted[lower:upper) first, then recurses
// into both halves. Each call inserts the median of its remaining range
// before descending, so sorted input does not degenerate into a chain.
func (t *Tree[T]) bisect(sorted []T, lower, upper int) {
	if lower >= upper {
		return
	}
	midpoint := (lower + upper) / 2
	t.Insert(sorted[midpoint])
	t.bisect(sorted, lower, midpoint)
	t.bisect(sorted, midpoint+1, upper)
}

// Clone returns a tree holding the same values, built by re-inserting the
// receiver's values in pre-order into a fresh tree. The clone shares no
// nodes with the receiver; mutating one never affects the other. The
// clone's shape is whatever the re-insertion order produces, not a
// structural copy by contract.
func (t *Tree[T]) Clone() *Tree[T] {
	cloned := New[T]()
	if t == nil || t.root == nil {
		return cloned
	}
	stack := make([]*node[T], 0, 16)
	stack = append(stack, t.root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cloned.Insert(n.value)
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
	return cloned
}

// Take moves the receiver's contents into a new tree. The receiver is left
// empty and remains valid for further use. This is the ownership-transfer
// counterpart to Clone and costs O(1).
func (t *Tree[T]) Take() *Tree[T] {
	moved := &Tree[T]{root: t.root, size: t.size}
	t.root, t.size = nil, 0
	return moved
}

// Clear detaches every node and empties the tree.
//
// The walk is iterative with an explicit stack, so adversarial (near-chain)
// trees cannot exhaust the call stack. Child links are cut before the
// parent is dropped; no detached node keeps a reachable child.
func (t *Tree[T]) Clear() {
	stack := make([]*node[T], 0, 16)
	if t.root != nil {
		stack = append(stack, t.root)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		n.left, n.right = nil, nil
	}
	t.root, t.size = nil, 0
}

// Size returns the number of values in the tree.
func (t *Tree[T]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no values.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Min returns the smallest value in the tree, with ok=false for an empty
// tree.
func (t *Tree[T]) Min() (v T, ok bool) {
	if t == nil || t.root == nil {
		return v, false
	}
	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}
	return cur.value, true
}

// Max returns the largest value in the tree, with ok=false for an empty
// tree.
func (t *Tree[T]) Max() (v T, ok bool) {
	if t == nil || t.root == nil {
		return v, false
	}
	cur := t.root
	for cur.right != nil {
		cur = cur.right
	}
	return cur.value, true
}

// Height returns the height of the tree, where 0 means empty and 1 means a
// single root node.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

func height[T constraints.Ordered](n *node[T]) int {
	if n == nil {
		return 0
	}
	hl, hr := height(n.left), height(n.right)
	if hl > hr {
		return hl + 1
	}
	return hr + 1
}

// inorder walks the tree in-order (left, node, right) and calls f for every
// value until f returns false. For a structurally valid tree the values
// arrive in strictly increasing order. The walk is iterative; it is the
// backing for the diagnostic printers and for test oracles, not a public
// iteration API.
func (t *Tree[T]) inorder(f func(v T) bool) {
	if t == nil {
		return
	}
	stack := make([]*node[T], 0, 16)
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(cur.value) {
			return
		}
		cur = cur.right
	}
}
