package bstree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

// Fprint renders the tree sideways onto w, for debugging purposes: the
// right subtree is printed above its node, the left subtree below, and
// every node is indented by 2×depth spaces. Reading the output top to
// bottom gives the values in descending order; tilting one's head to the
// left gives the usual tree picture.
//
// The exact format carries no API contract beyond "deeper nodes indent
// further".
func (t *Tree[T]) Fprint(w io.Writer) {
	t.fprint(w, nil, 0)
}

// Print renders the tree sideways onto stdout, colorizing nodes by depth
// when stdout is a terminal. Indentation is clipped to the terminal width
// so that very deep trees stay readable.
func (t *Tree[T]) Print() {
	maxIndent := 0
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil && w > 10 {
			maxIndent = w - 10
		}
		t.fprint(os.Stdout, depthPalette[:], maxIndent)
		return
	}
	t.fprint(os.Stdout, nil, 0)
}

// depthPalette colors nodes by depth, cycling when the tree is deeper than
// the palette.
var depthPalette = [...]*color.Color{
	color.New(color.FgBlue),
	color.New(color.FgCyan),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
	color.New(color.FgRed),
}

// fprint is the shared sideways renderer. It walks the tree in reverse
// in-order (right, node, left) iteratively, tracking the depth of every
// stacked node. A nil palette renders plain text; maxIndent > 0 clips the
// indentation.
func (t *Tree[T]) fprint(w io.Writer, palette []*color.Color, maxIndent int) {
	if t == nil || t.root == nil {
		return
	}
	var nodes []*node[T]
	var depths []int
	push := func(n *node[T], d int) {
		for ; n != nil; n, d = n.right, d+1 {
			nodes = append(nodes, n)
			depths = append(depths, d)
		}
	}
	push(t.root, 0)
	for len(nodes) > 0 {
		n, d := nodes[len(nodes)-1], depths[len(depths)-1]
		nodes, depths = nodes[:len(nodes)-1], depths[:len(depths)-1]
		indent := 2 * d
		if maxIndent > 0 && indent > maxIndent {
			indent = maxIndent
		}
		if palette == nil {
			fmt.Fprintf(w, "%*s%v\n", indent, "", n.value)
		} else {
			palette[d%len(palette)].Fprintf(w, "%*s%v\n", indent, "", n.value)
		}
		push(n.left, d+1)
	}
}

// Sdump returns the sideways rendering of the tree as a string. Handy in
// trace messages:
//
//	tracer().Debugf("tree after delete:\n%s", bstree.Sdump(t))
func Sdump[T constraints.Ordered](t *Tree[T]) string {
	var sb strings.Builder
	t.Fprint(&sb)
	return sb.String()
}
