// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pdiddy/officesmith/internal/convert"
	"github.com/pdiddy/officesmith/internal/history"
	"github.com/pdiddy/officesmith/internal/libreoffice"
	"github.com/pdiddy/officesmith/internal/process"
	"github.com/pdiddy/officesmith/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert office documents to PDF",
	Long: `Convert runs soffice headless on each file and writes the PDF into the
output directory. Files whose PDF already exists are skipped unless --force
is given. Use --manifest to read jobs from a YAML file instead of arguments.

soffice runs one conversion at a time per machine; concurrent officesmith
processes queue on a shared lock file.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output-dir", "o", ".", "directory the PDFs are written to")
	convertCmd.Flags().String("manifest", "", "YAML file listing conversion jobs")
	convertCmd.Flags().Bool("force", false, "reconvert files whose PDF already exists")
	convertCmd.Flags().Duration("timeout", 0, "maximum time per soffice run (0 = no limit)")
	convertCmd.Flags().Bool("strict-exit", false, "treat a non-zero soffice exit status as failure")
	convertCmd.Flags().Bool("no-lock", false, "do not serialize soffice runs through the lock file")
	convertCmd.Flags().Bool("no-history", false, "do not record conversions in the history database")
	convertCmd.Flags().BoolP("verbose", "v", false, "forward soffice output to stderr")
	addLocatorFlags(convertCmd)

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	jobs, err := convertJobs(cmd, args, cfg.Conversion)
	if err != nil {
		return err
	}

	loc := libreoffice.NewSystemLocator(cfg.Conversion.LocatorConfig)
	if _, err := loc.ExecutablePath(); err != nil {
		return explainLocateError(err)
	}

	runner, err := newRunner(cmd, cfg.Conversion)
	if err != nil {
		return err
	}

	opts := []convert.Option{convert.WithStrictExit(cfg.Conversion.StrictExit)}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		opts = append(opts, convert.WithOutput(os.Stderr, os.Stderr))
	}
	conv := convert.NewConverter(loc, runner, opts...)

	batchOpts := convert.BatchOptions{Force: cfg.Conversion.Force}
	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory && cfg.History.DBPath != "" {
		store, err := history.Open(cfg.History)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
		} else {
			defer store.Close()
			batchOpts.Recorder = store
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	result := convert.ConvertBatch(ctx, conv, jobs, batchOpts, cmd.OutOrStdout())
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed+result.Cancelled)
	}
	return ctx.Err()
}

func convertJobs(cmd *cobra.Command, args []string, cfg types.ConversionConfig) ([]types.Job, error) {
	manifest, _ := cmd.Flags().GetString("manifest")
	switch {
	case manifest != "" && len(args) > 0:
		return nil, fmt.Errorf("give either files or --manifest, not both")
	case manifest != "":
		return convert.ReadManifest(manifest)
	case len(args) == 0:
		return nil, fmt.Errorf("provide one or more files to convert (supported: %v)", convert.SupportedExtensions())
	}
	return convert.JobsFromPaths(args, cfg.OutputDir), nil
}

func newRunner(cmd *cobra.Command, cfg types.ConversionConfig) (process.Runner, error) {
	var runner process.Runner = process.TimeoutRunner{Next: process.OSRunner{}, Timeout: cfg.Timeout}

	noLock, _ := cmd.Flags().GetBool("no-lock")
	if noLock || cfg.LockFile == "" {
		return runner, nil
	}
	locked, err := process.NewLockedRunner(runner, cfg.LockFile)
	if err != nil {
		return nil, err
	}
	return locked, nil
}
