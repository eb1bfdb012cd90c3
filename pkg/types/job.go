// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ConversionStatus indicates the outcome of converting one source document.
type ConversionStatus string

const (
	ConversionSkipped   ConversionStatus = "skipped"
	ConversionDone      ConversionStatus = "converted"
	ConversionFailed    ConversionStatus = "failed"
	ConversionCancelled ConversionStatus = "cancelled"
)

// Job is a single conversion request: one source document and the directory
// soffice writes its PDF into. It has no identity beyond the call it serves.
type Job struct {
	// Source is the document to convert.
	Source string `json:"source" yaml:"source"`

	// OutputDir is the directory the PDF lands in. Empty means the
	// current directory.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
}

// Validate requires a source path.
func (j Job) Validate() error {
	return validation.ValidateStruct(&j,
		validation.Field(&j.Source, validation.Required),
	)
}

// JobResult is the outcome of running a Job.
type JobResult struct {
	Job      Job              `json:"job" yaml:"job"`
	Status   ConversionStatus `json:"status" yaml:"status"`
	PDFPath  string           `json:"pdf_path,omitempty" yaml:"pdf_path,omitempty"`
	Err      string           `json:"error,omitempty" yaml:"error,omitempty"`
	Started  time.Time        `json:"started" yaml:"started"`
	Duration time.Duration    `json:"duration" yaml:"duration"`
}
