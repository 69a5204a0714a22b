// Copyright 2024, The huffio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"fmt"
	"os"

	"github.com/huffio/huffman/huff"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [input] [output]",
	Short: "Decompress a HUF container",
	Long:  "Read a HUF container and restore the original file byte for byte.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		input, output := args[0], args[1]

		data, err := os.ReadFile(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %s\n", input, err)
			os.Exit(1)
		}
		dst, err := huff.Decode(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding %s: %s\n", input, err)
			os.Exit(1)
		}
		if err := os.WriteFile(output, dst, 0666); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %s\n", output, err)
			os.Exit(1)
		}
		fmt.Printf("Decoded %s into %s (%d -> %d bytes)\n", input, output, len(data), len(dst))
	},
}
