// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/officesmith/pkg/types"
)

// flagKeys maps CLI flags to config keys. Flags a command does not define
// are ignored.
var flagKeys = map[string]string{
	"install-dir": "conversion.install_dir",
	"search-root": "conversion.search_root",
	"output-dir":  "conversion.output_dir",
	"timeout":     "conversion.timeout",
	"strict-exit": "conversion.strict_exit",
	"force":       "conversion.force",
	"lock-file":   "conversion.lock_file",
	"history-db":  "history.history_db",
	"limit":       "history.max_results",
}

// stateDir holds the lock file and history database by default.
func stateDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "officesmith")
}

func setDefaults() {
	viper.SetDefault("conversion.output_dir", ".")
	viper.SetDefault("conversion.lock_file", filepath.Join(stateDir(), "soffice.lock"))
	viper.SetDefault("history.history_db", filepath.Join(stateDir(), "history.db"))
	viper.SetDefault("history.max_results", 20)
}

// loadConfig merges defaults, config file, environment and the flags of
// cmd, in increasing precedence, and validates the result.
func loadConfig(cmd *cobra.Command) (types.Config, error) {
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := viper.BindPFlag(key, f); err != nil {
				return types.Config{}, fmt.Errorf("binding --%s: %w", flag, err)
			}
		}
	}

	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("reading configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
