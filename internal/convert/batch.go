// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/officesmith/pkg/types"
)

// ErrOutputCollision reports a job whose PDF an earlier job in the same
// batch already writes.
var ErrOutputCollision = errors.New("output collides with an earlier job")

// Recorder persists the outcome of each job. history.Store satisfies it.
type Recorder interface {
	Record(ctx context.Context, r types.JobResult) error
}

// BatchOptions controls ConvertBatch.
type BatchOptions struct {
	// Force reconverts sources whose PDF already exists.
	Force bool
	// Recorder, when set, receives every job result.
	Recorder Recorder
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
	Cancelled int
	Results   []types.JobResult
}

// Total returns the total number of jobs processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed + r.Cancelled
}

// HasFailures reports whether any job failed or was cancelled.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0 || r.Cancelled > 0
}

// PDFPath returns where soffice writes the PDF for source in outputDir.
func PDFPath(source, outputDir string) string {
	if outputDir == "" {
		outputDir = "."
	}
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return filepath.Join(outputDir, base+".pdf")
}

// ConvertJob converts a single job, writing a status line to w. The job is
// skipped when its PDF already exists, unless force is set. Because soffice
// does not reliably report failures through its exit status, a run that
// leaves no PDF behind counts as failed.
func ConvertJob(ctx context.Context, c PDFConverter, job types.Job, force bool, w io.Writer) types.JobResult {
	res := types.JobResult{
		Job:     job,
		PDFPath: PDFPath(job.Source, job.OutputDir),
		Started: time.Now().UTC(),
	}
	name := filepath.Base(job.Source)
	fail := func(status types.ConversionStatus, err error) types.JobResult {
		res.Status = status
		res.Err = err.Error()
		res.Duration = time.Since(res.Started)
		fmt.Fprintf(w, "%s:  %s (%v)\n", status, name, err)
		return res
	}

	if !IsSupported(job.Source) {
		return fail(types.ConversionFailed, &UnsupportedFileTypeError{Ext: filepath.Ext(job.Source)})
	}

	if !force {
		if _, err := os.Stat(res.PDFPath); err == nil {
			res.Status = types.ConversionSkipped
			fmt.Fprintf(w, "skipped: %s (already exists)\n", name)
			return res
		}
	}

	if job.OutputDir != "" {
		if err := os.MkdirAll(job.OutputDir, 0o755); err != nil {
			return fail(types.ConversionFailed, err)
		}
	}

	// A PDF left over from a forced rerun would mask a failed conversion.
	if force {
		if err := os.Remove(res.PDFPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fail(types.ConversionFailed, err)
		}
	}

	if err := c.ConvertToPdf(ctx, job.Source, job.OutputDir); err != nil {
		if ctx.Err() != nil {
			return fail(types.ConversionCancelled, err)
		}
		return fail(types.ConversionFailed, err)
	}
	if _, err := os.Stat(res.PDFPath); err != nil {
		return fail(types.ConversionFailed, fmt.Errorf("soffice produced no PDF at %s", res.PDFPath))
	}

	res.Status = types.ConversionDone
	res.Duration = time.Since(res.Started)
	fmt.Fprintf(w, "converted: %s -> %s\n", name, res.PDFPath)
	return res
}

// ConvertBatch processes jobs in order, printing per-file status to w and
// returning a summary. It stops early once ctx is done. A job whose PDF
// path was already claimed by an earlier job fails with ErrOutputCollision
// instead of being skipped or overwriting that output.
func ConvertBatch(ctx context.Context, c PDFConverter, jobs []types.Job, opts BatchOptions, w io.Writer) BatchResult {
	var result BatchResult
	claimed := make(map[string]string, len(jobs))
	for _, job := range jobs {
		if ctx.Err() != nil {
			break
		}

		var r types.JobResult
		key := outputKey(PDFPath(job.Source, job.OutputDir))
		if first, ok := claimed[key]; ok {
			r = collision(job, first, w)
		} else {
			claimed[key] = job.Source
			r = ConvertJob(ctx, c, job, opts.Force, w)
		}
		switch r.Status {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionSkipped:
			result.Skipped++
		case types.ConversionFailed:
			result.Failed++
		case types.ConversionCancelled:
			result.Cancelled++
		}
		result.Results = append(result.Results, r)

		if opts.Recorder != nil {
			if err := opts.Recorder.Record(context.WithoutCancel(ctx), r); err != nil {
				fmt.Fprintf(w, "warning: recording %s: %v\n", filepath.Base(job.Source), err)
			}
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed+result.Cancelled, result.Total())
	return result
}

// JobsFromPaths builds jobs that write every source into outputDir.
func JobsFromPaths(sources []string, outputDir string) []types.Job {
	jobs := make([]types.Job, len(sources))
	for i, s := range sources {
		jobs[i] = types.Job{Source: s, OutputDir: outputDir}
	}
	return jobs
}

func outputKey(pdf string) string {
	if abs, err := filepath.Abs(pdf); err == nil {
		return abs
	}
	return filepath.Clean(pdf)
}

func collision(job types.Job, first string, w io.Writer) types.JobResult {
	res := types.JobResult{
		Job:     job,
		Status:  types.ConversionFailed,
		PDFPath: PDFPath(job.Source, job.OutputDir),
		Started: time.Now().UTC(),
	}
	err := fmt.Errorf("%w: %s is also the output of %s", ErrOutputCollision, res.PDFPath, first)
	res.Err = err.Error()
	fmt.Fprintf(w, "%s:  %s (%v)\n", res.Status, filepath.Base(job.Source), err)
	return res
}
