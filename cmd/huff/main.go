// Copyright 2024, The huffio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command huff compresses and decompresses files in the HUF container
// format. File access failures are reported as the underlying OS error;
// malformed containers are reported as "huff:" errors.
package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "huff",
	Short: "HUF compression utility",
	Long:  "huff is a lossless file compressor using static Huffman coding.",
}

func main() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.Execute()
}
