package rbtree

import (
	"fmt"
	"math"
)

// arena owns every node of one tree. Links between nodes are handles into
// nodes, so a parent link is a lookup and never an ownership edge.
type arena struct {
	nodes []node // nodes[0] is reserved for nilHandle
	free  []handle
	live  bitSet
	limit int // 0 means unlimited
}

func newArena(capacity int, limit int) *arena {
	if capacity < 0 {
		capacity = 0
	}
	a := &arena{
		nodes: make([]node, 1, capacity+1),
		limit: limit,
	}
	return a
}

func (a *arena) at(h handle) *node {
	return &a.nodes[h]
}

func (a *arena) used() int {
	return len(a.nodes) - 1 - len(a.free)
}

// slots is the number of allocatable slots, free or not.
func (a *arena) slots() int {
	return len(a.nodes) - 1
}

// alloc stores a detached node and returns its handle. Recycled slots are
// preferred over growing the slice.
func (a *arena) alloc(key uint32, value slot) (handle, error) {
	if a.limit > 0 && a.used() >= a.limit {
		return nilHandle, fmt.Errorf("limit %d: %w", a.limit, ErrNodeLimit)
	}

	var h handle
	if n := len(a.free); n > 0 {
		h = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		if uint64(len(a.nodes)) > math.MaxUint32 {
			return nilHandle, fmt.Errorf("handle space exhausted: %w", ErrNodeLimit)
		}
		a.nodes = append(a.nodes, node{})
		h = handle(len(a.nodes) - 1)
	}

	a.nodes[h] = node{key: key, value: value}
	a.live.Set(int(h), true)
	return h, nil
}

// take kills the slot and hands its value to the caller. The slot is not
// recycled; use release for that.
func (a *arena) take(h handle) slot {
	if h == nilHandle || !a.live.Test(int(h)) {
		panic(fmt.Errorf("release of dead node handle %d", h))
	}
	v := a.nodes[h].value
	a.nodes[h] = node{}
	a.live.Set(int(h), false)
	return v
}

func (a *arena) release(h handle) slot {
	v := a.take(h)
	a.free = append(a.free, h)
	return v
}
