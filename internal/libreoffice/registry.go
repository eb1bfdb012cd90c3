// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package libreoffice

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

const (
	// UninstallKey lists installed programs under HKEY_LOCAL_MACHINE.
	UninstallKey = `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`
	// UninstallKeyWOW64 lists 32-bit programs on 64-bit Windows.
	UninstallKeyWOW64 = `SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`

	// RegistryExecutable is soffice relative to a Windows install root.
	RegistryExecutable = "program/soffice.exe"

	appName              = "LibreOffice"
	valueDisplayName     = "DisplayName"
	valueInstallLocation = "InstallLocation"
)

// RegistryTree is read-only access to a hierarchical key-value store.
// Missing keys and values are reported with errors matching fs.ErrNotExist.
type RegistryTree interface {
	// SubKeyNames lists the immediate children of the key at path.
	SubKeyNames(path string) ([]string, error)

	// StringValue reads the named string value of the key at path.
	StringValue(path, name string) (string, error)
}

// RegistryStrategy finds LibreOffice through the uninstall entries in a
// RegistryTree. Roots are searched in order; within a root the first entry
// whose display name starts with "LibreOffice" decides that root's result.
type RegistryStrategy struct {
	tree  RegistryTree
	roots []string
}

// NewRegistryStrategy searches the native and WOW64 uninstall keys of tree.
func NewRegistryStrategy(tree RegistryTree) *RegistryStrategy {
	return &RegistryStrategy{
		tree:  tree,
		roots: []string{UninstallKey, UninstallKeyWOW64},
	}
}

func (s *RegistryStrategy) Kind() StrategyKind { return KindRegistry }

func (s *RegistryStrategy) ExecutableSuffix() string { return RegistryExecutable }

func (s *RegistryStrategy) Find() (string, error) {
	for _, root := range s.roots {
		dir, err := s.findUnder(root)
		if err != nil {
			return "", err
		}
		if dir != "" {
			return dir, nil
		}
	}
	return "", fmt.Errorf("%w: no %s uninstall entry in registry", ErrNotFound, appName)
}

// findUnder returns the install location of the first matching entry below
// root, or "" when root is missing, has no match, or the match records no
// location.
func (s *RegistryStrategy) findUnder(root string) (string, error) {
	names, err := s.tree.SubKeyNames(root)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("listing registry key %s: %w", root, err)
	}

	for _, name := range names {
		key := root + `\` + name

		display, err := s.tree.StringValue(key, valueDisplayName)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			display = name
		case err != nil:
			return "", fmt.Errorf("reading %s of %s: %w", valueDisplayName, key, err)
		}
		if !strings.HasPrefix(display, appName) {
			continue
		}

		dir, err := s.tree.StringValue(key, valueInstallLocation)
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		if err != nil {
			return "", fmt.Errorf("reading %s of %s: %w", valueInstallLocation, key, err)
		}
		return dir, nil
	}
	return "", nil
}
