package rbtree

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/list"
)

// Dump renders the tree structure, one node per line, children indented
// below their parent and tagged L or R. Meant for debugging.
func (t *Tree) Dump() string {
	if t.freed || t.root == nilHandle {
		return "(empty)"
	}

	type frame struct {
		h     handle
		side  direction
		depth int
	}

	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedLight)

	depth := 0
	stack := []frame{{t.root, parent, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for ; depth < f.depth; depth++ {
			l.Indent()
		}
		for ; depth > f.depth; depth-- {
			l.UnIndent()
		}

		n := t.arena.at(f.h)
		item := fmt.Sprintf("%d %v %v", n.key, n.color, n.value.kind)
		if f.side != parent {
			item = f.side.String() + " " + item
		}
		l.AppendItem(item)

		// right first so the left child is rendered first
		for _, d := range []direction{right, left} {
			if c := n.link[d]; c != nilHandle {
				stack = append(stack, frame{c, d, f.depth + 1})
			}
		}
	}
	return l.Render()
}

func (t *Tree) String() string {
	return fmt.Sprintf("rbtree{%v}", t.Stats())
}
