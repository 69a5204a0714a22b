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

var inspectCmd = &cobra.Command{
	Use:   "inspect [input]",
	Short: "View the layout of a HUF container",
	Long:  "Print the header fields and code table of a HUF container.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := args[0]
		quiet, _ := cmd.Flags().GetBool("quiet")

		data, err := os.ReadFile(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %s\n", input, err)
			os.Exit(1)
		}
		st, err := huff.Inspect(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error inspecting %s: %s\n", input, err)
			os.Exit(1)
		}

		fmt.Printf("Container %s:\n", input)
		fmt.Printf("\tSymbols: %d\n\tPadding: %d bits\n\tTable:   %d bytes\n\tBody:    %d bytes\n",
			st.SymbolCount, st.PadBits, st.TableBytes, st.BodyBytes)
		if quiet {
			return
		}
		for _, e := range st.Entries {
			fmt.Printf("\t%#02x (%q): %s\n", e.Symbol, e.Symbol, e.Code)
		}
	},
}

func init() {
	inspectCmd.Flags().BoolP("quiet", "Q", false, "Suppress output of the code table")
}
