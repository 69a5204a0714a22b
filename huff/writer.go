// Copyright 2024, The huffio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huff

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/dsnet/golib/bits"
)

// Encode compresses input into a HUF container.
//
// The container is self-contained: Decode reproduces input byte for byte
// without further context. Empty input yields the bare 8-byte header with
// a zero symbol count. Encoding fails only with ErrCodeLen, when the
// frequency distribution is skewed enough to drive some code past 32 bits.
func Encode(input []byte) ([]byte, error) {
	if len(input) == 0 {
		out := make([]byte, hdrLen)
		binary.LittleEndian.PutUint32(out[0:], hdrMagic)
		return out, nil
	}

	t, err := treeFromFreqs(countFreqs(input))
	if err != nil {
		return nil, err
	}

	// Pack the body. The buffer is LSB-first, so each code is written with
	// its bits pre-reversed and each finished byte is reversed on the way
	// out, leaving the body MSB-first on the wire.
	bb := bits.NewBuffer(nil)
	for _, b := range input {
		c := t.codes[b]
		bb.WriteBits(uint(reverseUint32N(c.val, c.len)), int(c.len))
	}
	total := bb.BitsWritten()
	if pads := int(-total & 7); pads > 0 {
		bb.WriteBits(0, pads)
	}
	body := bb.Bytes()

	out := make([]byte, hdrLen+t.nsyms*entryLen+len(body))
	binary.LittleEndian.PutUint32(out[0:], hdrMagic)
	binary.LittleEndian.PutUint16(out[4:], uint16(t.nsyms))
	binary.LittleEndian.PutUint16(out[6:], uint16(total%8))
	off := hdrLen
	for s := 0; s < maxSymbols; s++ {
		c := t.codes[s]
		if c.len == 0 {
			continue
		}
		out[off+0] = byte(s)
		out[off+1] = byte(c.len)
		binary.LittleEndian.PutUint32(out[off+2:], c.val)
		off += entryLen
	}
	for i, b := range body {
		out[off+i] = reverseLUT[b]
	}
	return out, nil
}

// Writer is an io.WriteCloser producing a HUF container. Static Huffman
// coding needs the full frequency distribution up front, so the input is
// buffered and the container is encoded and written on Close.
type Writer struct {
	wr  io.Writer
	cnt int64 // Total number of bytes written
	buf bytes.Buffer
	err error
}

// NewWriter creates a new Writer writing a container to wr.
func NewWriter(wr io.Writer) *Writer {
	hw := new(Writer)
	hw.Reset(wr)
	return hw
}

// WriteCount reports the number of bytes written to the underlying writer.
func (hw *Writer) WriteCount() int64 { return hw.cnt }

// Write buffers raw input bytes.
func (hw *Writer) Write(buf []byte) (int, error) {
	if hw.err != nil {
		return 0, hw.err
	}
	return hw.buf.Write(buf)
}

// Close encodes the buffered input and writes the container. No data
// reaches the underlying writer before Close.
func (hw *Writer) Close() error {
	if hw.err != nil {
		return hw.err
	}
	data, err := Encode(hw.buf.Bytes())
	if err != nil {
		hw.err = err
		return err
	}
	n, err := hw.wr.Write(data)
	hw.cnt += int64(n)
	if err != nil {
		hw.err = err
		return err
	}
	hw.err = errClosed
	return nil
}

// Reset resets the Writer with a new io.Writer.
func (hw *Writer) Reset(wr io.Writer) {
	hw.wr, hw.cnt, hw.err = wr, 0, nil
	hw.buf.Reset()
}
