// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build windows

package libreoffice

import "github.com/pdiddy/officesmith/pkg/types"

const nativeExecutable = RegistryExecutable

func systemStrategy(types.LocatorConfig) Strategy {
	return NewRegistryStrategy(machineRegistry{})
}
