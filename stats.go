package rbtree

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats is a point-in-time summary of a tree's shape and memory.
type Stats struct {
	Nodes       int
	Height      int
	BlackHeight int // black nodes from the root down to an empty link, root included
	Slots       int // arena slots ever allocated
	FreeSlots   int // slots waiting to be reused
	Owned       int
	Borrowed    int
	OwnedBytes  uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("nodes=%d height=%d black-height=%d slots=%d free=%d owned=%d (%s) borrowed=%d",
		s.Nodes, s.Height, s.BlackHeight, s.Slots, s.FreeSlots,
		s.Owned, humanize.IBytes(s.OwnedBytes), s.Borrowed)
}

func (t *Tree) Stats() Stats {
	if t.freed {
		return Stats{}
	}

	a := t.arena
	s := Stats{
		Nodes:     t.count,
		Height:    t.Height(),
		Slots:     a.slots(),
		FreeSlots: len(a.free),
	}

	for i := 1; i < len(a.nodes); i++ {
		if !a.live.Test(i) {
			continue
		}
		v := a.nodes[i].value
		if v.kind == Owned {
			s.Owned++
			s.OwnedBytes += uint64(len(v.data))
		} else {
			s.Borrowed++
		}
	}

	for h := t.root; h != nilHandle; h = a.at(h).link[left] {
		if a.at(h).color == black {
			s.BlackHeight++
		}
	}
	return s
}
