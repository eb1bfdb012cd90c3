// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// LocatorConfig holds settings for LibreOffice discovery.
type LocatorConfig struct {
	// InstallDir bypasses discovery and uses the given installation root.
	InstallDir string `json:"install_dir,omitempty" yaml:"install_dir,omitempty" mapstructure:"install_dir"`

	// SearchRoot is the directory the bundle search starts from
	// (default "/Applications"). Only used on macOS.
	SearchRoot string `json:"search_root,omitempty" yaml:"search_root,omitempty" mapstructure:"search_root"`
}

// ConversionConfig holds settings for the conversion stage.
type ConversionConfig struct {
	LocatorConfig `yaml:",inline" mapstructure:",squash"`

	// OutputDir is where soffice writes the PDF (default: current directory).
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// Timeout bounds a single soffice run. Zero means no limit.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// StrictExit turns a non-zero soffice exit status into an error.
	StrictExit bool `json:"strict_exit" yaml:"strict_exit" mapstructure:"strict_exit"`

	// Force reconverts sources whose PDF already exists in OutputDir.
	Force bool `json:"force" yaml:"force" mapstructure:"force"`

	// LockFile serializes soffice runs across processes. Empty disables locking.
	LockFile string `json:"lock_file,omitempty" yaml:"lock_file,omitempty" mapstructure:"lock_file"`
}

// HistoryConfig holds settings for the conversion history ledger.
type HistoryConfig struct {
	// DBPath is the SQLite database file. Empty disables history.
	DBPath string `json:"history_db,omitempty" yaml:"history_db,omitempty" mapstructure:"history_db"`

	// MaxResults is the default number of records listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// Config groups every section read from officesmith.yaml.
type Config struct {
	Conversion ConversionConfig `json:"conversion" yaml:"conversion" mapstructure:"conversion"`
	History    HistoryConfig    `json:"history" yaml:"history" mapstructure:"history"`
}

// Validate checks the conversion settings for values soffice cannot work with.
func (c ConversionConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Timeout, validation.Min(time.Duration(0)).Error("must not be negative")),
		validation.Field(&c.InstallDir, validation.Length(0, 4096)),
		validation.Field(&c.SearchRoot, validation.Length(0, 4096)),
	)
}

// Validate checks the history settings.
func (c HistoryConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.MaxResults, validation.Min(0)),
	)
}

// Validate checks every section and joins the failures.
func (c Config) Validate() error {
	var errs []error
	if err := c.Conversion.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.History.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
