// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build unix

package process

import (
	"errors"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// processTree runs the program as the leader of a new process group and
// kills the whole group on cancel.
type processTree struct{}

func newProcessTree(cmd *exec.Cmd) *processTree {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		err := unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
		if errors.Is(err, unix.ESRCH) {
			return os.ErrProcessDone
		}
		return err
	}
	return &processTree{}
}

func (*processTree) started() error { return nil }

func (*processTree) close() {}
