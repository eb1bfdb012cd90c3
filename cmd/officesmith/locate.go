// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/officesmith/internal/libreoffice"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Show where LibreOffice is installed",
	Long: `Locate runs LibreOffice discovery for this platform and prints the
strategy used, the installation directory, and the soffice executable.
It exits non-zero when LibreOffice is not installed.`,
	RunE: runLocate,
}

func init() {
	locateCmd.Flags().Bool("json", false, "output as JSON")
	addLocatorFlags(locateCmd)

	rootCmd.AddCommand(locateCmd)
}

func addLocatorFlags(cmd *cobra.Command) {
	cmd.Flags().String("install-dir", "", "LibreOffice installation directory (skips discovery)")
	cmd.Flags().String("search-root", "", "directory searched for LibreOffice.app on macOS (default /Applications)")
}

type locateReport struct {
	Strategy   libreoffice.StrategyKind `json:"strategy"`
	Installed  bool                     `json:"installed"`
	Location   string                   `json:"install_location,omitempty"`
	Executable string                   `json:"executable,omitempty"`
	Error      string                   `json:"error,omitempty"`
}

func runLocate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	loc := libreoffice.NewSystemLocator(cfg.Conversion.LocatorConfig)
	report := locateReport{Strategy: loc.Kind(), Installed: loc.IsInstalled()}
	report.Location, _ = loc.InstallLocation()
	report.Executable, err = loc.ExecutablePath()
	if err != nil {
		report.Error = err.Error()
	}

	out := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(report); encErr != nil {
			return encErr
		}
	} else {
		fmt.Fprintf(out, "Strategy:   %s\n", report.Strategy)
		if report.Installed {
			fmt.Fprintf(out, "Location:   %s\n", report.Location)
			fmt.Fprintf(out, "Executable: %s\n", report.Executable)
		}
	}

	if err != nil {
		return explainLocateError(err)
	}
	return nil
}

// explainLocateError turns discovery failures into messages that tell the
// user what to do next.
func explainLocateError(err error) error {
	switch {
	case errors.Is(err, libreoffice.ErrUnsupportedPlatform):
		return fmt.Errorf("%w\nset --install-dir or conversion.install_dir to the LibreOffice directory", err)
	case errors.Is(err, libreoffice.ErrNotInstalled):
		return fmt.Errorf("%w: install it from https://www.libreoffice.org or set --install-dir", err)
	default:
		return err
	}
}
