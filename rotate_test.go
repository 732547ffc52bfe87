package rbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// inorder collects keys without using the tree's own traversal helpers.
func inorder(tree *Tree) []uint32 {
	var keys []uint32
	var walk func(h handle)
	walk = func(h handle) {
		if h == nilHandle {
			return
		}
		n := tree.arena.at(h)
		walk(n.link[left])
		keys = append(keys, n.key)
		walk(n.link[right])
	}
	walk(tree.root)
	return keys
}

func checkParents(t *testing.T, tree *Tree) {
	t.Helper()
	var walk func(h, p handle)
	walk = func(h, p handle) {
		if h == nilHandle {
			return
		}
		n := tree.arena.at(h)
		assert.Equal(t, p, n.link[parent], "parent of key %d", n.key)
		walk(n.link[left], h)
		walk(n.link[right], h)
	}
	walk(tree.root, nilHandle)
}

// plainTree builds an unbalanced BST by attaching nodes directly.
func plainTree(keys ...uint32) *Tree {
	tree := New()
	for _, k := range keys {
		p, dir, _ := tree.locate(k)
		h, _ := tree.arena.alloc(k, slot{})
		tree.arena.at(h).link[parent] = p
		if p == nilHandle {
			tree.root = h
		} else {
			tree.arena.at(p).link[dir] = h
		}
		tree.count++
	}
	return tree
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name     string
		keys     []uint32
		at       uint32
		dir      direction
		wantRoot uint32
	}{
		{"left at root", []uint32{10, 5, 20, 15, 25}, 10, left, 20},
		{"right at root", []uint32{20, 10, 30, 5, 15}, 20, right, 10},
		{"left below root", []uint32{50, 10, 5, 20, 15, 25}, 10, left, 50},
		{"right below root", []uint32{50, 60, 70, 55, 52, 57}, 60, right, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := plainTree(tt.keys...)
			before := inorder(tree)
			h, _, found := tree.locate(tt.at)
			assert.True(t, found)

			pivotKey := tree.arena.at(tree.arena.at(h).link[tt.dir.opposite()]).key
			colors := map[uint32]nodeColor{}
			for _, k := range tt.keys {
				kh, _, _ := tree.locate(k)
				colors[k] = tree.arena.at(kh).color
			}

			tree.rotate(h, tt.dir)

			assert.Equal(t, before, inorder(tree), "in-order sequence changed")
			assert.Equal(t, tt.wantRoot, tree.arena.at(tree.root).key)
			assert.Equal(t, len(tt.keys), tree.Len())
			checkParents(t, tree)

			// the pivot now sits above the rotated node
			n := tree.arena.at(h)
			assert.Equal(t, pivotKey, tree.arena.at(n.link[parent]).key)
			assert.Equal(t, h, tree.arena.at(n.link[parent]).link[tt.dir])

			for _, k := range tt.keys {
				kh, _, _ := tree.locate(k)
				assert.Equal(t, colors[k], tree.arena.at(kh).color, "color of %d changed", k)
			}
		})
	}
}

func TestRotateRoundTrip(t *testing.T) {
	tree := plainTree(40, 20, 60, 10, 30, 50, 70)
	before := inorder(tree)
	root := tree.root

	tree.rotate(root, left)
	tree.rotate(tree.root, right)

	assert.Equal(t, root, tree.root)
	assert.Equal(t, before, inorder(tree))
	checkParents(t, tree)
}
