package rbtree

import (
	"fmt"
)

// handle addresses a node inside its tree's arena. The zero handle is
// never allocated and stands for an empty link.
type handle uint32

const nilHandle handle = 0

type nodeColor uint8

const (
	black nodeColor = iota
	red
)

func (c nodeColor) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

// direction indexes node.link. parent shares the array but is never
// passed to rotate.
type direction int

const (
	left direction = iota
	right
	parent
)

func (d direction) opposite() direction {
	return 1 - d
}

func (d direction) String() string {
	switch d {
	case left:
		return "L"
	case right:
		return "R"
	default:
		return "P"
	}
}

// dirFor returns the side of a node keyed nodeKey on which key belongs.
func dirFor(key, nodeKey uint32) direction {
	if key < nodeKey {
		return left
	}
	return right
}

// ValueKind tells who owns the bytes stored in a node.
type ValueKind uint8

const (
	// Borrowed values alias caller memory. The tree never reclaims them.
	Borrowed ValueKind = iota
	// Owned values are private copies released through the tree's Reclaimer.
	Owned
)

func (k ValueKind) String() string {
	if k == Owned {
		return "owned"
	}
	return "borrowed"
}

type slot struct {
	kind ValueKind
	data []byte
}

// newSlot borrows value when copySize is 0, otherwise copies the first
// copySize bytes. The caller validated copySize.
func newSlot(value []byte, copySize int) slot {
	if copySize == 0 {
		return slot{kind: Borrowed, data: value}
	}
	block := make([]byte, copySize)
	copy(block, value[:copySize])
	return slot{kind: Owned, data: block}
}

func checkCopySize(value []byte, copySize int) error {
	if copySize < 0 || copySize > len(value) {
		return fmt.Errorf("copy %d bytes from %d: %w", copySize, len(value), ErrShortValue)
	}
	return nil
}

type node struct {
	key   uint32
	color nodeColor
	value slot
	link  [3]handle
}

func (n *node) String() string {
	return fmt.Sprintf("{key: %d, %v, %v, %d bytes}", n.key, n.color, n.value.kind, len(n.value.data))
}

// side reports which child link of n holds child.
func (n *node) side(child handle) direction {
	if n.link[left] == child {
		return left
	}
	return right
}
