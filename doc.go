/*
Package bstree implements an ordered container of unique values, backed by
a plain (non-self-balancing) binary search tree.

Binary Search Trees

Binary search trees keep their values in sorted order by construction: every
node's left subtree holds only smaller values, every right subtree only
larger ones. Lookup, insertion and deletion then are walks from the root,
bounded by the height of the tree.

This package deliberately does not rebalance. There are no AVL or red-black
rotations; instead, near-balanced shapes are obtained at construction time
by bulk-loading: the values are sorted and the midpoint of every index range
is inserted before its two halves. A tree built this way has height close to
log2(n) regardless of the input order, while the structure itself stays as
simple as the textbook picture — one value and two child links per node.
Sequences of subsequent insertions and deletions may degrade the shape;
callers who feed a sorted sequence through Insert get the linked-list worst
case they asked for.

Deletion uses the classic successor/predecessor strategy: a node with a
right subtree receives the value of its in-order successor, and the
successor's node is unlinked instead; a node with only a left subtree is
treated symmetrically with its predecessor; a leaf is unlinked directly.
No rebalancing follows a deletion.

The container is an in-memory ordering structure only. It is not safe for
concurrent mutation; callers sharing a tree between goroutines must
serialize access themselves.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bstree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// TreeError is an error type for the bstree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid,
// e.g. a nil value slice handed to FromValues.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrTreeCompleted signals that a tree builder has already completed a tree
// and it's illegal to further add values.
const ErrTreeCompleted = TreeError("forbidden to add values; tree has been completed")

// ErrInvalidStructure signals a corrupt tree, detected by Check.
const ErrInvalidStructure = TreeError("invalid tree structure")
