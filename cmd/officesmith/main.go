// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the officesmith CLI, which finds a
// LibreOffice installation and drives soffice to convert office documents
// to PDF.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the officesmith CLI.
var rootCmd = &cobra.Command{
	Use:   "officesmith",
	Short: "Convert office documents to PDF with LibreOffice",
	Long: `officesmith locates the local LibreOffice installation and runs soffice
headless to convert office documents (Word, Excel, PowerPoint, OpenDocument,
text and HTML) to PDF.

Discovery uses the uninstall registry on Windows and searches /Applications
for LibreOffice.app on macOS. Other platforms need --install-dir.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		err := godotenv.Load()
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("loading .env: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Loaded .env")
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./officesmith.yaml or ~/.config/officesmith/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("officesmith")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "officesmith"))
		}
	}

	viper.SetEnvPrefix("OFFICESMITH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
