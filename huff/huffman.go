// Copyright 2024, The huffio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huff

import "container/heap"

// node is a single node of a Huffman tree. A leaf holds one symbol; an
// internal node holds the summed frequency of its subtree and always has
// exactly two children.
type node struct {
	sym   byte
	freq  uint64
	seq   int // insertion order, breaks frequency ties
	leaf  bool
	left  *node
	right *node
}

type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := old[len(old)-1]
	*h = old[:len(old)-1]
	return n
}

// code is the bit sequence assigned to one symbol. The value is stored
// right-aligned: the first bit of the code is the most significant of the
// low len bits.
type code struct {
	val uint32
	len uint
}

// String renders the code as a sequence of '0' and '1' characters.
func (c code) String() string {
	s := make([]byte, c.len)
	for i := uint(0); i < c.len; i++ {
		s[i] = '0' + byte(c.val>>(c.len-1-i)&1)
	}
	return string(s)
}

// tableEntry is one deserialized code table entry.
type tableEntry struct {
	sym byte
	c   code
}

// countFreqs returns the occurrence count of every byte value in input.
func countFreqs(input []byte) *[256]uint64 {
	var freqs [256]uint64
	for _, b := range input {
		freqs[b]++
	}
	return &freqs
}

// tree is the Huffman tree of a single encode or decode operation. It is
// built either from byte frequencies on the encode side, or from a
// serialized code table on the decode side; the two constructions agree on
// prefix structure, so the bit-walk decode only exists once.
type tree struct {
	root  *node
	codes [256]code // codes[s].len == 0 means s does not occur
	nsyms int
}

// treeFromFreqs builds the tree for the given frequency counts using the
// classic two-lowest merge. Ordering is total: by frequency, then by
// insertion sequence, where leaves enter in ascending symbol order and
// merged nodes are numbered afterwards. Identical input therefore always
// yields an identical tree.
//
// At least one frequency must be non-zero. A single distinct symbol yields
// a lone leaf as root; its code is defined as "0" so that the packed body
// still advances bit by bit.
func treeFromFreqs(freqs *[256]uint64) (*tree, error) {
	t := new(tree)
	h := make(nodeHeap, 0, maxSymbols)
	seq := 0
	for s, f := range freqs {
		if f == 0 {
			continue
		}
		h = append(h, &node{sym: byte(s), freq: f, seq: seq, leaf: true})
		seq++
	}
	t.nsyms = len(h)
	heap.Init(&h)
	for h.Len() > 1 {
		l := heap.Pop(&h).(*node)
		r := heap.Pop(&h).(*node)
		heap.Push(&h, &node{freq: l.freq + r.freq, seq: seq, left: l, right: r})
		seq++
	}
	t.root = heap.Pop(&h).(*node)

	if t.root.leaf {
		t.codes[t.root.sym] = code{0, 1}
		return t, nil
	}
	if err := t.assignCodes(t.root, 0, 0); err != nil {
		return nil, err
	}
	return t, nil
}

// assignCodes walks the tree depth-first, appending 0 for left edges and
// 1 for right edges, and records the accumulated path at each leaf.
func (t *tree) assignCodes(n *node, val uint32, depth uint) error {
	if n.leaf {
		t.codes[n.sym] = code{val, depth}
		return nil
	}
	if depth >= maxCodeLen {
		return ErrCodeLen
	}
	if err := t.assignCodes(n.left, val<<1, depth+1); err != nil {
		return err
	}
	return t.assignCodes(n.right, val<<1|1, depth+1)
}

// treeFromCodes rebuilds a decode tree from a code table, creating internal
// nodes on demand along each code's bit path and placing a leaf at its end.
// The table must be prefix-free and must not repeat a symbol; any conflict
// reports ErrCorrupt rather than silently merging paths.
func treeFromCodes(entries []tableEntry) (*tree, error) {
	t := &tree{root: &node{}, nsyms: len(entries)}
	for _, e := range entries {
		if t.codes[e.sym].len > 0 {
			return nil, ErrCorrupt // symbol appears twice
		}
		cur := t.root
		for i := e.c.len; i > 0; i-- {
			if cur.leaf {
				return nil, ErrCorrupt // some code is a prefix of this one
			}
			next := &cur.left
			if e.c.val>>(i-1)&1 == 1 {
				next = &cur.right
			}
			if i == 1 {
				if *next != nil {
					return nil, ErrCorrupt // this code is a prefix of another
				}
				*next = &node{sym: e.sym, leaf: true}
			} else if *next == nil {
				*next = &node{}
			}
			cur = *next
		}
		t.codes[e.sym] = e.c
	}
	return t, nil
}
