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

var encodeCmd = &cobra.Command{
	Use:   "encode [input] [output]",
	Short: "Compress a file into a HUF container",
	Long:  "Read a file and write its static-Huffman compressed container.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		input, output := args[0], args[1]

		src, err := os.ReadFile(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %s\n", input, err)
			os.Exit(1)
		}
		data, err := huff.Encode(src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding %s: %s\n", input, err)
			os.Exit(1)
		}
		if err := os.WriteFile(output, data, 0666); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %s\n", output, err)
			os.Exit(1)
		}
		fmt.Printf("Encoded %s into %s (%d -> %d bytes)\n", input, output, len(src), len(data))
	},
}
