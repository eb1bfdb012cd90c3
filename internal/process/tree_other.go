// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !unix && !windows

package process

import "os/exec"

// processTree falls back to killing only the direct child.
type processTree struct{}

func newProcessTree(*exec.Cmd) *processTree { return &processTree{} }

func (*processTree) started() error { return nil }

func (*processTree) close() {}
