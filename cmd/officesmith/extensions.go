// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/officesmith/internal/convert"
)

var extensionsCmd = &cobra.Command{
	Use:   "extensions",
	Short: "List the file extensions officesmith converts",
	Long: `Extensions prints the source file extensions accepted by convert.
Matching is case-sensitive. Output is one extension per line when not
writing to a terminal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		exts := convert.SupportedExtensions()
		if !isTerminal(out) {
			for _, ext := range exts {
				fmt.Fprintln(out, ext)
			}
			return nil
		}

		rows := make([][]string, len(exts))
		for i, ext := range exts {
			rows[i] = []string{fmt.Sprint(i + 1), ext}
		}
		fmt.Fprintln(out, renderTable(out, []string{"#", "Extension"}, rows, []columnAlignment{alignRight, alignLeft}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extensionsCmd)
}
