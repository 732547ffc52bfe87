package rbtree

// rotate moves the child of h opposite to dir into h's place and hangs h
// below it on the dir side. In-order sequence and all parent links are
// preserved. h must have a child on the opposite side.
func (t *Tree) rotate(h handle, dir direction) {
	a := t.arena
	opp := dir.opposite()
	n := a.at(h)
	p := n.link[opp]
	pivot := a.at(p)

	n.link[opp] = pivot.link[dir]
	if c := pivot.link[dir]; c != nilHandle {
		a.at(c).link[parent] = h
	}

	pivot.link[parent] = n.link[parent]
	if g := n.link[parent]; g == nilHandle {
		t.root = p
	} else {
		gn := a.at(g)
		gn.link[gn.side(h)] = p
	}

	pivot.link[dir] = h
	n.link[parent] = p
}
