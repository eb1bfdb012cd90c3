// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package process

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 250 * time.Millisecond

// LockedRunner runs one command at a time across every process sharing
// the same lock file. soffice cannot serve two headless conversions from
// one user profile, so concurrent runs must queue.
type LockedRunner struct {
	next Runner
	path string
	lock *flock.Flock
	sem  chan struct{}
}

// NewLockedRunner wraps next with a file lock at path, creating the parent
// directory if needed.
func NewLockedRunner(next Runner, path string) (*LockedRunner, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}
	return &LockedRunner{
		next: next,
		path: path,
		lock: flock.New(path),
		sem:  make(chan struct{}, 1),
	}, nil
}

// Run waits for the lock, runs the command through the wrapped Runner and
// releases the lock when it exits. Cancelling ctx abandons the wait.
func (l *LockedRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	// flock does not exclude goroutines sharing one handle.
	select {
	case l.sem <- struct{}{}:
	case <-ctx.Done():
		return Result{}, fmt.Errorf("waiting for lock %s: %w", l.path, ctx.Err())
	}
	defer func() { <-l.sem }()

	ok, err := l.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return Result{}, fmt.Errorf("acquiring lock %s: %w", l.path, err)
	}
	if !ok {
		return Result{}, fmt.Errorf("lock %s is held by another process", l.path)
	}
	defer l.lock.Unlock()

	return l.next.Run(ctx, cmd)
}
