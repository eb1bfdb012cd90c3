// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package process

import (
	"context"
	"testing"
	"time"
)

// deadlineRunner reports the deadline it was handed.
type deadlineRunner struct {
	deadline time.Time
	has      bool
}

func (d *deadlineRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	d.deadline, d.has = ctx.Deadline()
	return Result{}, nil
}

func TestTimeoutRunner(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		want    bool
	}{
		{name: "zero leaves run unbounded", timeout: 0},
		{name: "positive sets deadline", timeout: time.Minute, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &deadlineRunner{}
			start := time.Now()
			if _, err := (TimeoutRunner{Next: inner, Timeout: tt.timeout}).Run(context.Background(), Command{}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if inner.has != tt.want {
				t.Fatalf("deadline set = %v, want %v", inner.has, tt.want)
			}
			if tt.want && inner.deadline.Sub(start) > tt.timeout+time.Second {
				t.Errorf("deadline %v too far out", inner.deadline.Sub(start))
			}
		})
	}
}
