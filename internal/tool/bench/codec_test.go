// Copyright 2024, The huffio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/huffio/huffman/internal/testutil"
)

// TestCodecs tests that the output of each registered encoder is a valid
// input for each registered decoder of the same format. This runs in O(n^2)
// over the registered codecs, which stays cheap as long as the number of
// formats is small.
func TestCodecs(t *testing.T) {
	rand := testutil.NewRand(0)
	inputs := map[string][]byte{
		"empty":   {},
		"zeros":   make([]byte, 1<<16),
		"repeats": testutil.ResizeData([]byte("the quick brown fox jumps over the lazy dog. "), 1<<16),
		"random":  rand.Bytes(1 << 16),
	}

	for name, input := range inputs {
		input := input
		t.Run(fmt.Sprintf("File:%v", name), func(t *testing.T) { testFormats(t, input) })
	}
}

func testFormats(t *testing.T, input []byte) {
	t.Parallel()
	for _, ft := range []Format{FormatHuff, FormatFlate, FormatXZ} {
		ft := ft
		if len(Encoders[ft]) == 0 || len(Decoders[ft]) == 0 {
			continue
		}
		t.Run(fmt.Sprintf("Format:%v", ft), func(t *testing.T) { testEncoders(t, ft, input) })
	}
}

func testEncoders(t *testing.T, ft Format, input []byte) {
	const level = 6 // Default compression on all leveled encoders
	for encName, enc := range Encoders[ft] {
		encName, enc := encName, enc
		t.Run(fmt.Sprintf("Encoder:%v", encName), func(t *testing.T) {
			buf := new(bytes.Buffer)
			wr := enc(buf, level)
			if _, err := io.Copy(wr, bytes.NewReader(input)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := wr.Close(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for decName, dec := range Decoders[ft] {
				rd := dec(bytes.NewReader(buf.Bytes()))
				output, err := io.ReadAll(rd)
				if err != nil {
					t.Errorf("decoder %v, unexpected error: %v", decName, err)
					continue
				}
				if err := rd.Close(); err != nil {
					t.Errorf("decoder %v, unexpected error: %v", decName, err)
					continue
				}
				if !bytes.Equal(output, input) {
					t.Errorf("decoder %v, output data mismatch", decName)
				}
			}
		})
	}
}
