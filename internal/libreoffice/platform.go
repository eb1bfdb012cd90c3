// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package libreoffice

import (
	"github.com/spf13/afero"

	"github.com/pdiddy/officesmith/pkg/types"
)

// NewSystemLocator returns a Locator for the host OS. A configured
// InstallDir takes precedence over platform discovery.
func NewSystemLocator(cfg types.LocatorConfig) *Locator {
	if cfg.InstallDir != "" {
		return NewLocator(NewStaticStrategy(afero.NewOsFs(), cfg.InstallDir, nativeExecutable))
	}
	return NewLocator(systemStrategy(cfg))
}
