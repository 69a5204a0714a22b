// Copyright 2024, The huffio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huff

// Stat describes the layout of a container without decoding its body.
type Stat struct {
	SymbolCount int         // Number of code table entries
	PadBits     int         // Body bit length modulo 8
	TableBytes  int         // Size of the serialized code table
	BodyBytes   int         // Size of the packed body
	Entries     []StatEntry // Code table in serialized order
}

// StatEntry is one code table entry in human-readable form.
type StatEntry struct {
	Symbol byte
	Length int
	Code   string // The code as a string of '0' and '1' characters
}

// Inspect parses the header and code table of a container.
// It fails with ErrCorrupt on anything Decode would reject before
// reconstructing the tree.
func Inspect(data []byte) (*Stat, error) {
	c, err := splitContainer(data)
	if err != nil {
		return nil, err
	}
	st := &Stat{
		SymbolCount: len(c.entries),
		PadBits:     c.padBits,
		TableBytes:  len(c.entries) * entryLen,
		BodyBytes:   len(c.body),
	}
	for _, e := range c.entries {
		st.Entries = append(st.Entries, StatEntry{
			Symbol: e.sym,
			Length: int(e.c.len),
			Code:   e.c.String(),
		})
	}
	return st, nil
}
