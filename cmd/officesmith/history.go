// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/officesmith/internal/history"
	"github.com/pdiddy/officesmith/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversions",
	Long: `History lists conversions recorded by convert, newest first, with their
outcome and duration. Filter by --status or --source.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of entries")
	historyCmd.Flags().String("status", "", "filter by status: converted, skipped, failed, cancelled")
	historyCmd.Flags().String("source", "", "filter by source path")
	historyCmd.Flags().String("history-db", "", "history database file")
	historyCmd.Flags().Bool("json", false, "output entries as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.History.DBPath == "" {
		return fmt.Errorf("history is disabled: no history_db configured")
	}

	store, err := history.Open(cfg.History)
	if err != nil {
		return err
	}
	defer store.Close()

	status, _ := cmd.Flags().GetString("status")
	source, _ := cmd.Flags().GetString("source")
	switch types.ConversionStatus(status) {
	case "", types.ConversionDone, types.ConversionSkipped, types.ConversionFailed, types.ConversionCancelled:
	default:
		return fmt.Errorf("unknown status %q", status)
	}

	entries, err := store.Recent(cmd.Context(), history.Query{
		Status: types.ConversionStatus(status),
		Source: source,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No conversions recorded.")
		return nil
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		detail := e.PDFPath
		if e.Error != "" {
			detail = e.Error
		}
		rows[i] = []string{
			e.Started.Local().Format(time.DateTime),
			string(e.Status),
			e.Source,
			e.Duration.Round(time.Millisecond).String(),
			detail,
		}
	}
	fmt.Fprintln(out, renderTable(out,
		[]string{"Started", "Status", "Source", "Duration", "Output / Error"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	))
	fmt.Fprintf(out, "\n%d entries\n", len(entries))
	return nil
}
