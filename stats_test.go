package rbtree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	tree := New()
	assert.Equal(t, Stats{}, tree.Stats())

	require.True(t, tree.Insert(10, []byte("borrowed"), 0))
	require.True(t, tree.Insert(20, make([]byte, 2048), 2048))
	require.True(t, tree.Insert(30, []byte("abc"), 3))

	s := tree.Stats()
	assert.Equal(t, 3, s.Nodes)
	assert.Equal(t, 2, s.Height)
	assert.Equal(t, 1, s.BlackHeight)
	assert.Equal(t, 3, s.Slots)
	assert.Equal(t, 0, s.FreeSlots)
	assert.Equal(t, 2, s.Owned)
	assert.Equal(t, 1, s.Borrowed)
	assert.Equal(t, uint64(2051), s.OwnedBytes)

	str := s.String()
	assert.Contains(t, str, "nodes=3")
	assert.Contains(t, str, "2.0 KiB")

	require.True(t, tree.Delete(20))
	s = tree.Stats()
	assert.Equal(t, 1, s.FreeSlots)
	assert.Equal(t, uint64(3), s.OwnedBytes)
	assert.Contains(t, tree.String(), "nodes=2")
}

func TestStatsBlackHeightMatchesVerify(t *testing.T) {
	tree := New()
	for k := uint32(0); k < 300; k++ {
		require.True(t, tree.Insert(k*7%307, nil, 0))
	}
	assert.Equal(t, verifyTree(t, tree), tree.Stats().BlackHeight)
}

func TestDump(t *testing.T) {
	tree := New()
	assert.Equal(t, "(empty)", tree.Dump())

	require.True(t, tree.Insert(10, nil, 0))
	require.True(t, tree.Insert(20, []byte("x"), 1))
	require.True(t, tree.Insert(30, nil, 0))

	out := tree.Dump()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "20 black owned")
	assert.Contains(t, lines[1], "L 10 red borrowed")
	assert.Contains(t, lines[2], "R 30 red borrowed")
	assert.NotContains(t, lines[0], "L ")
}

func TestDumpNesting(t *testing.T) {
	tree := New()
	for k := uint32(1); k <= 7; k++ {
		require.True(t, tree.Insert(k, nil, 0))
	}
	lines := strings.Split(strings.TrimRight(tree.Dump(), "\n"), "\n")
	require.Len(t, lines, 7)
	for i, key := range []string{"2 ", "1 ", "4 ", "3 ", "6 ", "5 ", "7 "} {
		assert.Contains(t, lines[i], key)
	}
}
