// Copyright 2024, The huffio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huff implements the HUF compressed container format.
//
// HUF is a static Huffman coding of an arbitrary byte stream. A container
// carries everything needed to reverse the transform: a fixed header, the
// code table of the tree the encoder built, and the packed bit stream.
// All integer fields are little-endian and fixed-width:
//
//	Header (8B):  magic   uint32  ".HUF"
//	              symbols uint16  number of code table entries (0..256)
//	              padding uint16  body bit length modulo 8 (0..7)
//	Entry (6B):   symbol  uint8
//	              length  uint8   code length in bits (1..32)
//	              code    uint32  code value, right-aligned
//	Body:         packed code bits, MSB-first per byte, the unused
//	              low-order bits of the final byte are zero
//
// A symbol count of zero marks the empty input; such a container is
// exactly the 8 header bytes. The padding field is meaningful only when
// the body is non-empty: zero means the final byte is fully used.
//
// Codes are stored right-aligned, so the first bit of a code is the most
// significant of its length low-order bits. The remaining high-order bits
// of the code field must be zero. Codes longer than 32 bits are not
// representable; encoding detects this and fails rather than truncate.
package huff

const (
	hdrMagic = 0x4655482e // ".HUF" read as a little-endian uint32

	hdrLen   = 8
	entryLen = 6

	maxSymbols = 256
	maxCodeLen = 32
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "huff: " + string(e) }

var (
	ErrCorrupt error = Error("container is corrupted")
	ErrCodeLen error = Error("code length exceeds 32 bits")

	errClosed error = Error("stream is closed")
)

// The body is packed MSB-first, while the bit buffers used internally are
// LSB-first. Reversing every byte at the container boundary converts
// between the two orders.
var reverseLUT [256]byte

func init() {
	for i := range reverseLUT {
		b := uint8(i)
		b = (b&0xaa)>>1 | (b&0x55)<<1
		b = (b&0xcc)>>2 | (b&0x33)<<2
		b = (b&0xf0)>>4 | (b&0x0f)<<4
		reverseLUT[i] = b
	}
}

// reverseUint32 reverses all bits of v.
func reverseUint32(v uint32) (x uint32) {
	x |= uint32(reverseLUT[byte(v>>0)]) << 24
	x |= uint32(reverseLUT[byte(v>>8)]) << 16
	x |= uint32(reverseLUT[byte(v>>16)]) << 8
	x |= uint32(reverseLUT[byte(v>>24)]) << 0
	return x
}

// reverseUint32N reverses the lower n bits of v.
func reverseUint32N(v uint32, n uint) (x uint32) {
	return reverseUint32(v << (32 - n))
}
