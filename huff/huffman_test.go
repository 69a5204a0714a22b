// Copyright 2024, The huffio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huff

import (
	"testing"

	"github.com/huffio/huffman/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCountFreqs(t *testing.T) {
	freqs := countFreqs([]byte("aabbbcccc"))
	assert.Equal(t, uint64(2), freqs['a'])
	assert.Equal(t, uint64(3), freqs['b'])
	assert.Equal(t, uint64(4), freqs['c'])
	assert.Equal(t, uint64(0), freqs['d'])

	freqs = countFreqs(nil)
	for _, f := range freqs {
		assert.Equal(t, uint64(0), f)
	}
}

func TestTreeFromFreqs(t *testing.T) {
	// Single distinct symbol gets the one-bit code "0", never an empty
	// code, so that decoding still advances through the body.
	tr, err := treeFromFreqs(countFreqs([]byte("aaaa")))
	assert.Nil(t, err)
	assert.Equal(t, 1, tr.nsyms)
	assert.Equal(t, "0", tr.codes['a'].String())

	// Frequencies a=2, b=3, c=4: the two rarest merge first, so 'c' keeps
	// the shortest code and no rarer symbol gets a shorter one.
	tr, err = treeFromFreqs(countFreqs([]byte("aabbbcccc")))
	assert.Nil(t, err)
	assert.Equal(t, 3, tr.nsyms)
	assert.Equal(t, "0", tr.codes['c'].String())
	assert.Equal(t, "10", tr.codes['a'].String())
	assert.Equal(t, "11", tr.codes['b'].String())
	assert.True(t, tr.codes['c'].len <= tr.codes['b'].len)
	assert.True(t, tr.codes['b'].len <= tr.codes['a'].len)

	// Two symbols always get one bit each.
	tr, err = treeFromFreqs(countFreqs([]byte("abababab")))
	assert.Nil(t, err)
	assert.Equal(t, "0", tr.codes['a'].String())
	assert.Equal(t, "1", tr.codes['b'].String())

	// A uniform 256-symbol alphabet yields a balanced 8-level tree.
	var all [256]uint64
	for i := range all {
		all[i] = 1
	}
	tr, err = treeFromFreqs(&all)
	assert.Nil(t, err)
	assert.Equal(t, 256, tr.nsyms)
	for s := 0; s < 256; s++ {
		assert.Equal(t, uint(8), tr.codes[s].len)
	}
}

func TestCodeLenOverflow(t *testing.T) {
	// Fibonacci frequencies produce a maximally skewed tree: the i-th
	// symbol's code is roughly i bits long. 40 symbols pushes the deepest
	// code well past the 32-bit entry field.
	var freqs [256]uint64
	a, b := uint64(1), uint64(1)
	for i := 0; i < 40; i++ {
		freqs[i] = a
		a, b = b, a+b
	}
	_, err := treeFromFreqs(&freqs)
	assert.Equal(t, ErrCodeLen, err)

	// Ten Fibonacci symbols stay comfortably within the field.
	freqs = [256]uint64{}
	a, b = 1, 1
	for i := 0; i < 10; i++ {
		freqs[i] = a
		a, b = b, a+b
	}
	tr, err := treeFromFreqs(&freqs)
	assert.Nil(t, err)
	assert.Equal(t, uint(9), tr.codes[0].len)
}

// isPrefix reports whether c1 is a prefix of c2.
func isPrefix(c1, c2 code) bool {
	if c1.len > c2.len {
		return false
	}
	return c2.val>>(c2.len-c1.len) == c1.val
}

func TestPrefixFree(t *testing.T) {
	rand := testutil.NewRand(0)
	for i := 0; i < 32; i++ {
		input := rand.Bytes(1 + rand.Intn(1<<12))
		tr, err := treeFromFreqs(countFreqs(input))
		if err != nil {
			t.Fatalf("test %d, unexpected error: %v", i, err)
		}
		var present []int
		for s := 0; s < 256; s++ {
			if tr.codes[s].len > 0 {
				present = append(present, s)
			}
		}
		if len(present) != tr.nsyms {
			t.Errorf("test %d, symbol count mismatch: got %d, want %d", i, len(present), tr.nsyms)
		}
		for _, s1 := range present {
			for _, s2 := range present {
				if s1 == s2 {
					continue
				}
				if isPrefix(tr.codes[s1], tr.codes[s2]) {
					t.Errorf("test %d, code %v of %d is a prefix of code %v of %d",
						i, tr.codes[s1], s1, tr.codes[s2], s2)
				}
			}
		}
	}
}

// optimalCost computes the minimum weighted path length over all prefix-free
// binary codes by brute force, trying every sibling merge order. Any optimal
// tree is reachable by repeatedly merging some pair into one pseudo-symbol.
func optimalCost(freqs []uint64) uint64 {
	if len(freqs) <= 1 {
		return 0
	}
	best := ^uint64(0)
	for i := 0; i < len(freqs); i++ {
		for j := i + 1; j < len(freqs); j++ {
			merged := freqs[i] + freqs[j]
			rest := make([]uint64, 0, len(freqs)-1)
			for k, f := range freqs {
				if k != i && k != j {
					rest = append(rest, f)
				}
			}
			rest = append(rest, merged)
			if c := merged + optimalCost(rest); c < best {
				best = c
			}
		}
	}
	return best
}

func TestOptimality(t *testing.T) {
	rand := testutil.NewRand(1)
	for i := 0; i < 24; i++ {
		var freqs [256]uint64
		var flat []uint64
		nsyms := 2 + rand.Intn(7)
		for s := 0; s < nsyms; s++ {
			f := uint64(1 + rand.Intn(20))
			freqs[s] = f
			flat = append(flat, f)
		}
		tr, err := treeFromFreqs(&freqs)
		if err != nil {
			t.Fatalf("test %d, unexpected error: %v", i, err)
		}
		var cost uint64
		for s := 0; s < nsyms; s++ {
			cost += freqs[s] * uint64(tr.codes[s].len)
		}
		if want := optimalCost(flat); cost != want {
			t.Errorf("test %d, weighted path length mismatch: got %d, want %d", i, cost, want)
		}
	}
}

func TestTreeDeterminism(t *testing.T) {
	rand := testutil.NewRand(2)
	for i := 0; i < 16; i++ {
		input := rand.Bytes(1 + rand.Intn(1<<10))
		tr1, err1 := treeFromFreqs(countFreqs(input))
		tr2, err2 := treeFromFreqs(countFreqs(input))
		assert.Nil(t, err1)
		assert.Nil(t, err2)
		assert.Equal(t, tr1.codes, tr2.codes)
	}
}

func TestTreeFromCodes(t *testing.T) {
	// Every table produced by the encoder must reconstruct into a tree
	// that decodes each of its own codes back to the right symbol.
	rand := testutil.NewRand(3)
	for i := 0; i < 16; i++ {
		input := rand.Bytes(1 + rand.Intn(1<<10))
		tr, err := treeFromFreqs(countFreqs(input))
		if err != nil {
			t.Fatalf("test %d, unexpected error: %v", i, err)
		}
		var entries []tableEntry
		for s := 0; s < 256; s++ {
			if tr.codes[s].len > 0 {
				entries = append(entries, tableEntry{sym: byte(s), c: tr.codes[s]})
			}
		}
		rt, err := treeFromCodes(entries)
		if err != nil {
			t.Fatalf("test %d, reconstruct error: %v", i, err)
		}
		for _, e := range entries {
			cur := rt.root
			for k := e.c.len; k > 0; k-- {
				if e.c.val>>(k-1)&1 == 1 {
					cur = cur.right
				} else {
					cur = cur.left
				}
				if cur == nil {
					t.Fatalf("test %d, code %v walks off the tree", i, e.c)
				}
			}
			if !cur.leaf || cur.sym != e.sym {
				t.Errorf("test %d, code %v decodes to %v, want leaf %d", i, e.c, cur, e.sym)
			}
		}
	}
}

func TestTreeFromCodesConflict(t *testing.T) {
	var vectors = []struct {
		name    string
		entries []tableEntry
	}{{
		name: "StrictPrefix",
		entries: []tableEntry{
			{sym: 'a', c: code{0, 1}},    // 0
			{sym: 'b', c: code{0x01, 2}}, // 01, extends through leaf 'a'
		},
	}, {
		name: "StrictPrefixReversed",
		entries: []tableEntry{
			{sym: 'b', c: code{0x01, 2}}, // 01
			{sym: 'a', c: code{0, 1}},    // 0, prefix of 'b'
		},
	}, {
		name: "DuplicateCode",
		entries: []tableEntry{
			{sym: 'a', c: code{0, 1}},
			{sym: 'b', c: code{0, 1}},
		},
	}, {
		name: "DuplicateSymbol",
		entries: []tableEntry{
			{sym: 'a', c: code{0, 1}},
			{sym: 'a', c: code{1, 1}},
		},
	}}

	for _, v := range vectors {
		if _, err := treeFromCodes(v.entries); err != ErrCorrupt {
			t.Errorf("test %s, error mismatch: got %v, want %v", v.name, err, ErrCorrupt)
		}
	}
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "0", code{0, 1}.String())
	assert.Equal(t, "1", code{1, 1}.String())
	assert.Equal(t, "0110", code{0x6, 4}.String())
	assert.Equal(t, "00000000000000000000000000000001", code{1, 32}.String())
}
