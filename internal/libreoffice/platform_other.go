// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !windows && !darwin

package libreoffice

import (
	"runtime"

	"github.com/pdiddy/officesmith/pkg/types"
)

// nativeExecutable matches the layout of Linux distribution packages,
// e.g. /usr/lib/libreoffice/program/soffice.
const nativeExecutable = "program/soffice"

func systemStrategy(types.LocatorConfig) Strategy {
	return UnsupportedStrategy{OS: runtime.GOOS}
}
