// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package process

import (
	"context"
	"time"
)

// TimeoutRunner bounds every run of the wrapped Runner. A zero Timeout
// leaves runs unbounded.
type TimeoutRunner struct {
	Next    Runner
	Timeout time.Duration
}

func (t TimeoutRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	if t.Timeout <= 0 {
		return t.Next.Run(ctx, cmd)
	}
	ctx, cancel := context.WithTimeout(ctx, t.Timeout)
	defer cancel()
	return t.Next.Run(ctx, cmd)
}
