package rbtree

// Remove unlinks key and returns its value. The value is not passed to the
// Reclaimer: the caller becomes responsible for it.
func (t *Tree) Remove(key uint32) ([]byte, bool) {
	h := t.find(key)
	if h == nilHandle {
		return nil, false
	}
	v := t.detach(h)
	return v.data, true
}

// Delete unlinks key and reclaims an owned value.
func (t *Tree) Delete(key uint32) bool {
	h := t.find(key)
	if h == nilHandle {
		return false
	}
	t.reclaim(t.detach(h))
	return true
}

func (t *Tree) detach(h handle) slot {
	t.unlink(h)
	t.count--
	t.logger.Debug("node removed", keyAttr(t.arena.at(h).key), t.debug())
	return t.arena.release(h)
}

// transplant puts v where u hangs. u's own links are left alone.
func (t *Tree) transplant(u, v handle) {
	a := t.arena
	up := a.at(u).link[parent]
	if up == nilHandle {
		t.root = v
	} else {
		pn := a.at(up)
		pn.link[pn.side(u)] = v
	}
	if v != nilHandle {
		a.at(v).link[parent] = up
	}
}

// unlink splices z out of the tree and rebalances. A node with two
// children is replaced by its successor node itself, so no other handle
// changes meaning.
func (t *Tree) unlink(z handle) {
	a := t.arena
	zn := a.at(z)
	removed := zn.color

	var x, xp handle
	switch {
	case zn.link[left] == nilHandle:
		x, xp = zn.link[right], zn.link[parent]
		t.transplant(z, x)
	case zn.link[right] == nilHandle:
		x, xp = zn.link[left], zn.link[parent]
		t.transplant(z, x)
	default:
		y := t.leftmost(zn.link[right])
		yn := a.at(y)
		removed = yn.color
		x = yn.link[right]
		if yn.link[parent] == z {
			xp = y
		} else {
			xp = yn.link[parent]
			t.transplant(y, x)
			yn.link[right] = zn.link[right]
			a.at(yn.link[right]).link[parent] = y
		}
		t.transplant(z, y)
		yn.link[left] = zn.link[left]
		a.at(yn.link[left]).link[parent] = y
		yn.color = zn.color
	}

	if removed == black {
		t.fixRemove(x, xp)
	}
}

// fixRemove pushes the missing black at x (child of xp, possibly empty) up
// the tree until it can be absorbed.
func (t *Tree) fixRemove(x, xp handle) {
	a := t.arena
	for x != t.root && t.colorOf(x) == black {
		pn := a.at(xp)
		dir := pn.side(x)
		opp := dir.opposite()
		w := pn.link[opp]

		if t.colorOf(w) == red {
			a.at(w).color = black
			pn.color = red
			t.rotate(xp, dir)
			w = pn.link[opp]
		}

		wn := a.at(w)
		if t.colorOf(wn.link[left]) == black && t.colorOf(wn.link[right]) == black {
			wn.color = red
			x = xp
			xp = pn.link[parent]
			continue
		}

		if t.colorOf(wn.link[opp]) == black {
			a.at(wn.link[dir]).color = black
			wn.color = red
			t.rotate(w, opp)
			w = pn.link[opp]
			wn = a.at(w)
		}

		wn.color = pn.color
		pn.color = black
		a.at(wn.link[opp]).color = black
		t.rotate(xp, dir)
		x = t.root
	}

	if x != nilHandle {
		a.at(x).color = black
	}
}
