// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build windows

package libreoffice

import (
	"golang.org/x/sys/windows/registry"
)

// machineRegistry reads keys below HKEY_LOCAL_MACHINE. Missing keys and
// values surface as ERROR_FILE_NOT_FOUND, which matches fs.ErrNotExist.
type machineRegistry struct{}

func (machineRegistry) SubKeyNames(path string) ([]string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.ENUMERATE_SUB_KEYS|registry.QUERY_VALUE)
	if err != nil {
		return nil, err
	}
	defer k.Close()
	return k.ReadSubKeyNames(-1)
}

func (machineRegistry) StringValue(path, name string) (string, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer k.Close()
	v, _, err := k.GetStringValue(name)
	return v, err
}
