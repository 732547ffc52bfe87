// Package rbtree provides an ordered map from uint32 keys to byte values
// backed by a red-black tree.
//
// A Tree is not safe for concurrent use. Callers that share one must
// serialize all access themselves.
package rbtree

import (
	"errors"
	"log/slog"
)

var (
	ErrDuplicateKey = errors.New("key already present")
	ErrNodeLimit    = errors.New("node limit reached")
	ErrShortValue   = errors.New("value shorter than copy size")
	ErrTreeFreed    = errors.New("tree already freed")
)

// Reclaimer releases an owned value block when its node is destroyed.
type Reclaimer func(block []byte)

// ScrubReclaimer zeroes the block so released copies do not keep caller
// data around until the collector gets to them.
func ScrubReclaimer(block []byte) {
	clear(block)
}

type Tree struct {
	root      handle
	count     int
	arena     *arena
	reclaimer Reclaimer
	logger    *slog.Logger
	freed     bool
}

type treeOptions struct {
	reclaimer Reclaimer
	maxNodes  int
	capacity  int
	logger    *slog.Logger
}

type TreeOption func(*treeOptions)

func WithReclaimer(reclaimer Reclaimer) TreeOption {
	return func(o *treeOptions) {
		if reclaimer == nil {
			slog.Warn("nil reclaimer ignored, keeping the default")
			return
		}
		o.reclaimer = reclaimer
	}
}

// WithMaxNodes caps the number of live nodes. Inserts past the cap fail
// with ErrNodeLimit. Zero means no cap.
func WithMaxNodes(maxNodes int) TreeOption {
	return func(o *treeOptions) {
		if maxNodes < 0 {
			slog.Warn("negative node limit ignored", slog.Int("maxNodes", maxNodes))
			return
		}
		o.maxNodes = maxNodes
	}
}

// WithCapacity preallocates arena room for capacity nodes.
func WithCapacity(capacity int) TreeOption {
	return func(o *treeOptions) {
		o.capacity = capacity
	}
}

func WithLogger(logger *slog.Logger) TreeOption {
	return func(o *treeOptions) {
		if logger == nil {
			slog.Warn("nil logger ignored, keeping the default")
			return
		}
		o.logger = logger
	}
}

// New returns an empty tree.
func New(options ...TreeOption) *Tree {
	o := &treeOptions{
		reclaimer: ScrubReclaimer,
		logger:    logger,
	}
	for _, opt := range options {
		opt(o)
	}
	if o.maxNodes > 0 && o.capacity > o.maxNodes {
		o.capacity = o.maxNodes
	}

	return &Tree{
		arena:     newArena(o.capacity, o.maxNodes),
		reclaimer: o.reclaimer,
		logger:    o.logger,
	}
}

// Len returns the number of keys in the tree.
func (t *Tree) Len() int {
	return t.count
}

// Search reports whether key is present.
func (t *Tree) Search(key uint32) bool {
	return t.find(key) != nilHandle
}

// Get returns the value stored under key. Borrowed values come back as the
// caller's original slice, owned values as the tree's private copy.
func (t *Tree) Get(key uint32) ([]byte, bool) {
	h := t.find(key)
	if h == nilHandle {
		return nil, false
	}
	return t.arena.at(h).value.data, true
}

func (t *Tree) find(key uint32) handle {
	if t.freed {
		return nilHandle
	}
	h, _, found := t.locate(key)
	if !found {
		return nilHandle
	}
	return h
}

// locate descends from the root. If key is present it returns its handle
// and found. Otherwise it returns the last node visited and the side the
// key would hang on.
func (t *Tree) locate(key uint32) (h handle, dir direction, found bool) {
	cur := t.root
	for cur != nilHandle {
		n := t.arena.at(cur)
		if n.key == key {
			return cur, dir, true
		}
		h = cur
		dir = dirFor(key, n.key)
		cur = n.link[dir]
	}
	return h, dir, false
}

// colorOf treats empty links as black.
func (t *Tree) colorOf(h handle) nodeColor {
	if h == nilHandle {
		return black
	}
	return t.arena.at(h).color
}

func (t *Tree) leftmost(h handle) handle {
	for {
		l := t.arena.at(h).link[left]
		if l == nilHandle {
			return h
		}
		h = l
	}
}

// Height is the number of nodes on the longest path from the root to a
// leaf. An empty tree has height 0.
func (t *Tree) Height() int {
	if t.freed || t.root == nilHandle {
		return 0
	}

	type frame struct {
		h     handle
		depth int
	}
	height := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > height {
			height = f.depth
		}
		n := t.arena.at(f.h)
		for _, c := range n.link[:parent] {
			if c != nilHandle {
				stack = append(stack, frame{c, f.depth + 1})
			}
		}
	}
	return height
}

func (t *Tree) reclaim(v slot) {
	if v.kind == Owned {
		t.reclaimer(v.data)
	}
}
