package rbtree

import (
	"fmt"
	"log/slog"
)

// Insert is Put reduced to success or failure.
func (t *Tree) Insert(key uint32, value []byte, copySize int) bool {
	return t.Put(key, value, copySize) == nil
}

// Put stores value under key. With copySize 0 the tree keeps a reference to
// value and never reclaims it. With copySize > 0 it keeps a private copy of
// value[:copySize] that is released through the tree's Reclaimer.
//
// Put fails without touching the tree if key is already present, if
// copySize does not fit value, or if the node limit is reached.
func (t *Tree) Put(key uint32, value []byte, copySize int) error {
	if t.freed {
		return ErrTreeFreed
	}
	if err := checkCopySize(value, copySize); err != nil {
		t.logger.Debug("insert rejected", keyAttr(key), slog.Any("error", err))
		return err
	}

	p, dir, found := t.locate(key)
	if found {
		t.logger.Debug("insert rejected, duplicate", keyAttr(key), t.debug())
		return fmt.Errorf("key %d: %w", key, ErrDuplicateKey)
	}

	h, err := t.arena.alloc(key, newSlot(value, copySize))
	if err != nil {
		t.logger.Debug("insert rejected", keyAttr(key), slog.Any("error", err))
		return err
	}

	t.arena.at(h).link[parent] = p
	if p == nilHandle {
		t.root = h
	} else {
		t.arena.at(p).link[dir] = h
	}
	t.count++

	t.fixInsert(h)
	return nil
}

// fixInsert restores the red-black properties after h was attached as a
// leaf.
func (t *Tree) fixInsert(h handle) {
	a := t.arena
	a.at(h).color = red

	for h != t.root && t.colorOf(a.at(h).link[parent]) == red {
		p := a.at(h).link[parent]
		// p is red so it is not the root
		g := a.at(p).link[parent]
		dir := a.at(g).side(p)
		u := a.at(g).link[dir.opposite()]

		if t.colorOf(u) == red {
			a.at(g).color = red
			a.at(p).color = black
			a.at(u).color = black
			h = g
			continue
		}

		if h == a.at(p).link[dir.opposite()] {
			t.rotate(p, dir)
			h = p
			p = a.at(h).link[parent]
		}

		t.rotate(g, dir.opposite())
		a.at(p).color, a.at(g).color = a.at(g).color, a.at(p).color
		break
	}

	a.at(t.root).color = black
}
