// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package process spawns external programs and waits for them to exit.
// Runner is the seam the converter depends on; OSRunner backs it with
// os/exec and LockedRunner serializes runs across processes.
package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"
)

// Command describes one program invocation.
type Command struct {
	// Path is the executable to run.
	Path string
	// Args are passed to the program as separate argv elements.
	Args []string
	// Dir is the working directory. Empty means the caller's.
	Dir string
	// Stdout and Stderr receive the program's output. Nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

// Result reports how a program exited.
type Result struct {
	// ExitCode is the program's exit status, or -1 when it was killed
	// by a signal.
	ExitCode int
}

// Runner starts a Command and blocks until it exits. A program that runs
// and exits non-zero is not an error: the code is reported in Result.
// Errors mean the program could not be started or ctx ended the run.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// waitDelay bounds how long Run waits for a killed program's output pipes
// to close.
const waitDelay = 5 * time.Second

// OSRunner is the production Runner backed by os/exec. Cancelling ctx
// kills the program together with every process it started, so no helper
// (such as soffice.bin) outlives the run.
type OSRunner struct{}

func (OSRunner) Run(ctx context.Context, c Command) (Result, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	cmd.WaitDelay = waitDelay
	tree := newProcessTree(cmd)

	if err := cmd.Start(); err != nil {
		return Result{ExitCode: -1}, fmt.Errorf("starting %s: %w", c.Path, err)
	}
	if err := tree.started(); err != nil {
		_ = cmd.Cancel()
		_ = cmd.Wait()
		return Result{ExitCode: -1}, fmt.Errorf("tracking %s: %w", c.Path, err)
	}
	defer tree.close()

	err := cmd.Wait()
	if err == nil {
		return Result{}, nil
	}

	res := Result{ExitCode: -1}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, fmt.Errorf("running %s: %w", c.Path, ctxErr)
	}
	switch {
	case exitErr != nil:
		return res, nil
	case errors.Is(err, exec.ErrWaitDelay):
		// The program exited but left its output pipes open.
		return Result{ExitCode: cmd.ProcessState.ExitCode()}, nil
	}
	return res, fmt.Errorf("waiting for %s: %w", c.Path, err)
}
