package rbtree

import (
	"log/slog"
)

// Free destroys every node, passing owned values to the Reclaimer.
// Borrowed values are left alone. It runs in linear time without
// recursion or a stack: right subtrees are threaded onto the left spine
// as the spine is consumed.
//
// After Free the tree reports every key as absent and rejects writes with
// ErrTreeFreed. Calling Free again does nothing.
func (t *Tree) Free() {
	if t.freed {
		return
	}

	released, reclaimed := 0, 0
	if t.root != nilHandle {
		a := t.arena
		h := t.root
		bottom := t.leftmost(h)

		for h != nilHandle {
			n := a.at(h)
			if r := n.link[right]; r != nilHandle {
				a.at(bottom).link[left] = r
				bottom = t.leftmost(bottom)
			}

			next := n.link[left]
			v := a.take(h)
			if v.kind == Owned {
				reclaimed += len(v.data)
			}
			t.reclaim(v)
			released++
			h = next
		}
	}

	t.logger.Debug("tree freed",
		slog.Int("nodes", released),
		slog.Int("reclaimedBytes", reclaimed))

	t.root = nilHandle
	t.count = 0
	t.arena = nil
	t.freed = true
}
