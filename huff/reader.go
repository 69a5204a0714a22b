// Copyright 2024, The huffio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huff

import (
	"encoding/binary"
	"io"

	"github.com/dsnet/golib/bits"
	"github.com/dsnet/golib/errs"
)

// container is the parsed wire layout, still undecoded.
type container struct {
	entries []tableEntry
	padBits int
	body    []byte
}

// splitContainer validates the header and slices data into code table and
// body. All structural failures report ErrCorrupt.
func splitContainer(data []byte) (c *container, err error) {
	defer errs.Recover(&err)

	errs.Assert(len(data) >= hdrLen, ErrCorrupt)
	errs.Assert(binary.LittleEndian.Uint32(data[0:]) == hdrMagic, ErrCorrupt)
	nsyms := int(binary.LittleEndian.Uint16(data[4:]))
	padBits := int(binary.LittleEndian.Uint16(data[6:]))
	errs.Assert(padBits <= 7, ErrCorrupt)
	rest := data[hdrLen:]

	if nsyms == 0 {
		// Sole marker for the empty input; nothing may follow the header.
		errs.Assert(len(rest) == 0 && padBits == 0, ErrCorrupt)
		return &container{}, nil
	}
	errs.Assert(nsyms <= maxSymbols, ErrCorrupt)
	errs.Assert(len(rest) >= nsyms*entryLen, ErrCorrupt)

	entries := make([]tableEntry, nsyms)
	for i := range entries {
		e := rest[i*entryLen:]
		clen := uint(e[1])
		cval := binary.LittleEndian.Uint32(e[2:])
		errs.Assert(clen >= 1 && clen <= maxCodeLen, ErrCorrupt)
		errs.Assert(clen == 32 || cval>>clen == 0, ErrCorrupt) // spare bits are zero
		entries[i] = tableEntry{sym: e[0], c: code{cval, clen}}
	}

	// A non-empty symbol set implies at least one code bit in the body.
	body := rest[nsyms*entryLen:]
	errs.Assert(len(body) > 0, ErrCorrupt)
	return &container{entries: entries, padBits: padBits, body: body}, nil
}

// Decode reverses Encode, restoring the original byte stream from a HUF
// container. It fails with ErrCorrupt if data is not a valid container.
func Decode(data []byte) ([]byte, error) {
	c, err := splitContainer(data)
	if err != nil {
		return nil, err
	}
	if len(c.entries) == 0 {
		return []byte{}, nil
	}
	t, err := treeFromCodes(c.entries)
	if err != nil {
		return nil, err
	}

	nbits := 8 * int64(len(c.body))
	if c.padBits > 0 {
		nbits -= int64(8 - c.padBits)
	}

	// Reverse each body byte so the LSB-first buffer hands back bits in
	// MSB-first wire order, then walk the tree one bit at a time. Exactly
	// nbits bits are consumed; decoding into the padding would fabricate a
	// trailing symbol whenever the zero pad happens to complete a path.
	buf := make([]byte, len(c.body))
	for i, b := range c.body {
		buf[i] = reverseLUT[b]
	}
	bb := bits.NewBuffer(nil)
	bb.ResetBuffer(buf)

	output := make([]byte, 0, len(data))
	cur := t.root
	for i := int64(0); i < nbits; i++ {
		bit, err := bb.ReadBit()
		if err != nil {
			return nil, ErrCorrupt
		}
		if bit {
			cur = cur.right
		} else {
			cur = cur.left
		}
		if cur == nil {
			return nil, ErrCorrupt // bit path leaves the code table
		}
		if cur.leaf {
			output = append(output, cur.sym)
			cur = t.root
		}
	}
	if cur != t.root {
		return nil, ErrCorrupt // body ends in the middle of a code
	}
	return output, nil
}

// Reader is an io.Reader producing the decoded byte stream of a HUF
// container. The container is materialized in full and decoded on the
// first call to Read.
type Reader struct {
	rd  io.Reader
	cnt int64  // Total number of bytes read
	buf []byte // Decoded data yet to be consumed
	ok  bool   // Whether the container has been decoded
	err error
}

// NewReader creates a new Reader decoding a container from rd.
func NewReader(rd io.Reader) *Reader {
	hr := new(Reader)
	hr.Reset(rd)
	return hr
}

// ReadCount reports the number of bytes read from the underlying reader.
func (hr *Reader) ReadCount() int64 { return hr.cnt }

// Read returns decoded bytes, then io.EOF.
func (hr *Reader) Read(buf []byte) (int, error) {
	if err := hr.fetch(); err != nil {
		return 0, err
	}
	if len(hr.buf) == 0 {
		return 0, io.EOF
	}
	n := copy(buf, hr.buf)
	hr.buf = hr.buf[n:]
	return n, nil
}

// Reset resets the Reader with a new io.Reader.
func (hr *Reader) Reset(rd io.Reader) {
	hr.rd, hr.cnt, hr.buf = rd, 0, nil
	hr.ok, hr.err = false, nil
}

func (hr *Reader) fetch() error {
	if hr.err != nil {
		return hr.err
	}
	if hr.ok {
		return nil
	}
	data, err := io.ReadAll(hr.rd)
	hr.cnt += int64(len(data))
	if err != nil {
		hr.err = err
		return err
	}
	hr.buf, err = Decode(data)
	if err != nil {
		hr.err = err
		return err
	}
	hr.ok = true
	return nil
}
