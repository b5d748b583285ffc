package bstree

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

type nodeids[T constraints.Ordered] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T constraints.Ordered]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(n *node[T]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot[T constraints.Ordered](t *Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	if t != nil && t.root != nil {
		stack := []*node[T]{t.root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			ID := ids.alloc(n)
			isleaf := n.left == nil && n.right == nil
			styles := nodeDotStyles(isleaf)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%v\" %s];\n", ID, n.value, styles)
			if !isleaf {
				if n.left == nil {
					nilid := ID + 10000
					nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode(nilid))
					edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
				} else {
					edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(n.left))
				}
				if n.right == nil {
					nilid := ID + 20000
					nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode(nilid))
					edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
				} else {
					edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(n.right))
				}
			}
			if n.right != nil {
				stack = append(stack, n.right)
			}
			if n.left != nil {
				stack = append(stack, n.left)
			}
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode(id int) string {
	s := "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
	return s
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
