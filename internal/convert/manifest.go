// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/officesmith/pkg/types"
)

// Manifest is a YAML list of conversion jobs:
//
//	output_dir: pdf
//	jobs:
//	  - source: reports/q1.docx
//	  - source: slides/kickoff.pptx
//	    output_dir: pdf/slides
//
// Relative paths are resolved against the manifest's directory.
type Manifest struct {
	OutputDir string      `yaml:"output_dir,omitempty"`
	Jobs      []types.Job `yaml:"jobs"`
}

// Validate requires at least one job and a source on every job.
func (m Manifest) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Jobs, validation.Required),
	)
}

// ReadManifest loads and validates a manifest file and returns its jobs
// with defaults applied and paths resolved.
func ReadManifest(path string) ([]types.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return m.resolve(filepath.Dir(path)), nil
}

func (m Manifest) resolve(base string) []types.Job {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	jobs := make([]types.Job, len(m.Jobs))
	for i, j := range m.Jobs {
		out := j.OutputDir
		if out == "" {
			out = m.OutputDir
		}
		if out == "" {
			out = "."
		}
		jobs[i] = types.Job{Source: abs(j.Source), OutputDir: abs(out)}
	}
	return jobs
}
