package rbtree

import "math/bits"

const wordBits = 64

// bitSet is a growable bitmap. The arena uses it to know which slots hold
// a live node.
type bitSet []uint64

func (b *bitSet) Set(i int, v bool) {
	w := i / wordBits
	for w >= len(*b) {
		*b = append(*b, 0)
	}
	mask := uint64(1) << (i % wordBits)
	if v {
		(*b)[w] |= mask
	} else {
		(*b)[w] &^= mask
	}
}

func (b bitSet) Test(i int) bool {
	w := i / wordBits
	if w >= len(b) {
		return false
	}
	return b[w]&(1<<(i%wordBits)) != 0
}

// Len is the number of addressable bits without growing.
func (b bitSet) Len() int {
	return len(b) * wordBits
}

func (b bitSet) Count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return n
}
