// Copyright 2024, The huffio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"io"

	"github.com/huffio/huffman/huff"
)

func init() {
	// Static Huffman coding has no compression levels; the level argument
	// is ignored.
	RegisterEncoder(FormatHuff, "huffio",
		func(w io.Writer, lvl int) io.WriteCloser {
			return huff.NewWriter(w)
		})
	RegisterDecoder(FormatHuff, "huffio",
		func(r io.Reader) io.ReadCloser {
			return io.NopCloser(huff.NewReader(r))
		})
}
