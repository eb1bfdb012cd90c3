// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build darwin

package libreoffice

import (
	"github.com/spf13/afero"

	"github.com/pdiddy/officesmith/pkg/types"
)

const nativeExecutable = BundleExecutable

func systemStrategy(cfg types.LocatorConfig) Strategy {
	return NewBundleStrategy(afero.NewOsFs(), cfg.SearchRoot)
}
