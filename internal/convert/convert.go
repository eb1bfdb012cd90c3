// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns office documents into PDFs by running LibreOffice's
// soffice headless. Converter handles a single document; ConvertBatch runs
// many jobs and reports per-file status.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/pdiddy/officesmith/internal/process"
)

// ErrUnsupportedFileType matches every *UnsupportedFileTypeError.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// UnsupportedFileTypeError reports a source whose extension soffice is not
// asked to handle.
type UnsupportedFileTypeError struct {
	Ext string
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("'%s' is not supported", e.Ext)
}

func (e *UnsupportedFileTypeError) Is(target error) bool {
	return target == ErrUnsupportedFileType
}

// ExitStatusError reports a non-zero soffice exit when strict exit checking
// is enabled.
type ExitStatusError struct {
	Source string
	Code   int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("soffice exited with status %d converting %s", e.Code, e.Source)
}

// ExecutableLocator resolves the soffice executable.
// *libreoffice.Locator satisfies it.
type ExecutableLocator interface {
	ExecutablePath() (string, error)
}

// PDFConverter converts one source document into a PDF in outputDir.
type PDFConverter interface {
	ConvertToPdf(ctx context.Context, source, outputDir string) error
}

// Converter drives soffice through a process.Runner. It holds no state
// between calls and is safe for concurrent use.
type Converter struct {
	locator    ExecutableLocator
	runner     process.Runner
	strictExit bool
	stdout     io.Writer
	stderr     io.Writer
}

// Option configures a Converter.
type Option func(*Converter)

// WithStrictExit makes a non-zero soffice exit status an *ExitStatusError.
// By default the status is ignored.
func WithStrictExit(strict bool) Option {
	return func(c *Converter) { c.strictExit = strict }
}

// WithOutput forwards soffice's stdout and stderr. By default both are discarded.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(c *Converter) {
		c.stdout = stdout
		c.stderr = stderr
	}
}

// NewConverter creates a converter that finds soffice with loc and runs it
// with runner.
func NewConverter(loc ExecutableLocator, runner process.Runner, opts ...Option) *Converter {
	c := &Converter{locator: loc, runner: runner}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Arguments builds the soffice command line for converting src to PDF.
// Each element is passed as its own argv entry, so paths with spaces need
// no quoting.
func Arguments(src string) []string {
	return []string{
		"-norestore",
		"-nologo",
		"-nofirststartwizard",
		"-headless",
		"-convert-to", "pdf",
		src,
	}
}

// ConvertToPdf runs soffice to convert source into a PDF written to
// outputDir (the current directory when empty). It returns once soffice
// exits. The source extension is checked before anything is spawned.
// Locator errors such as libreoffice.ErrNotInstalled are returned as is.
// The exit status is only inspected with WithStrictExit; the PDF itself is
// never checked.
func (c *Converter) ConvertToPdf(ctx context.Context, source, outputDir string) error {
	if ext := filepath.Ext(source); !IsSupported(source) {
		return &UnsupportedFileTypeError{Ext: ext}
	}
	if outputDir == "" {
		outputDir = "."
	}

	src, err := filepath.Abs(source)
	if err != nil {
		return fmt.Errorf("resolving source %s: %w", source, err)
	}
	working, err := filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("resolving output directory %s: %w", outputDir, err)
	}

	exe, err := c.locator.ExecutablePath()
	if err != nil {
		return err
	}

	res, err := c.runner.Run(ctx, process.Command{
		Path:   exe,
		Args:   Arguments(src),
		Dir:    working,
		Stdout: c.stdout,
		Stderr: c.stderr,
	})
	if err != nil {
		return fmt.Errorf("converting %s: %w", source, err)
	}
	if c.strictExit && res.ExitCode != 0 {
		return &ExitStatusError{Source: source, Code: res.ExitCode}
	}
	return nil
}
