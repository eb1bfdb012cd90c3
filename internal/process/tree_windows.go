// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build windows

package process

import (
	"fmt"
	"os/exec"
	"sync"

	"golang.org/x/sys/windows"
)

// processTree places the program in a job object so that cancelling
// terminates it along with the processes it spawns.
type processTree struct {
	cmd *exec.Cmd

	mu  sync.Mutex
	job windows.Handle
}

func newProcessTree(cmd *exec.Cmd) *processTree {
	t := &processTree{cmd: cmd}
	cmd.Cancel = t.kill
	return t
}

func (t *processTree) started() error {
	job, err := windows.CreateJobObject(nil, nil)
	if err != nil {
		return fmt.Errorf("creating job object: %w", err)
	}

	proc, err := windows.OpenProcess(windows.PROCESS_SET_QUOTA|windows.PROCESS_TERMINATE, false, uint32(t.cmd.Process.Pid))
	if err != nil {
		windows.CloseHandle(job)
		return fmt.Errorf("opening process %d: %w", t.cmd.Process.Pid, err)
	}
	defer windows.CloseHandle(proc)

	if err := windows.AssignProcessToJobObject(job, proc); err != nil {
		windows.CloseHandle(job)
		return fmt.Errorf("assigning process %d to job: %w", t.cmd.Process.Pid, err)
	}

	t.mu.Lock()
	t.job = job
	t.mu.Unlock()
	return nil
}

func (t *processTree) kill() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.job == 0 {
		return t.cmd.Process.Kill()
	}
	return windows.TerminateJobObject(t.job, 1)
}

func (t *processTree) close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.job != 0 {
		windows.CloseHandle(t.job)
		t.job = 0
	}
}
