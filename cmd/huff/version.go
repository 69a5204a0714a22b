// Copyright 2024, The huffio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "View huff's version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("huff version 0.1.0")
		return nil
	},
}
