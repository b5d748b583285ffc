package bstree

import "golang.org/x/exp/constraints"

// Builder incrementally stages values and finalizes them into a Tree.
//
// Builder collects values and materializes the tree only when Tree() is
// called, using the same sorted bulk-load as FromValues. This produces a
// near-balanced shape even when the staged values arrive in sorted order,
// which sequential Insert calls would turn into a chain.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder[T constraints.Ordered] struct {
	staged []T

	done  bool
	dirty bool
	tree  *Tree[T]
}

// NewBuilder creates a new and empty tree builder.
func NewBuilder[T constraints.Ordered]() *Builder[T] {
	return &Builder[T]{}
}

// Add stages values for the build.
//
// Staged duplicates are dropped during the final bulk-load, following the
// Insert contract.
func (b *Builder[T]) Add(values ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrTreeCompleted
	}
	b.staged = append(b.staged, values...)
	if len(values) > 0 {
		b.dirty = true
	}
	return nil
}

// Tree returns the tree built from all staged values.
//
// It is illegal to continue adding values after Tree has been called, but
// Tree may be called multiple times.
func (b *Builder[T]) Tree() *Tree[T] {
	if b == nil {
		return New[T]()
	}
	if b.dirty || b.tree == nil {
		if len(b.staged) == 0 {
			b.tree = New[T]()
		} else {
			t, err := FromValues(b.staged)
			assert(err == nil, "tree builder: bulk-load of staged values failed")
			b.tree = t
		}
		b.dirty = false
	}
	b.done = true
	if b.tree.IsEmpty() {
		tracer().Debugf("tree builder: tree is empty")
	}
	return b.tree
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[T]) Reset() {
	b.staged = nil
	b.done = false
	b.dirty = false
	b.tree = nil
}
