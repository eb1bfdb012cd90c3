// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package libreoffice

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const (
	// DefaultSearchRoot is where macOS installs applications.
	DefaultSearchRoot = "/Applications"

	// BundleExecutable is soffice relative to the application bundle.
	BundleExecutable = "Contents/MacOS/soffice"

	bundleName   = "LibreOffice.app"
	bundleSuffix = ".app"
)

// BundleStrategy searches a directory tree for the LibreOffice application
// bundle. The walk is depth-first and pre-order over entries in lexical
// order: a directory ending in "LibreOffice.app" is returned at once,
// directories that are not ".app" bundles are descended into, and other
// bundles are skipped. A symlink is matched by name when it points at a
// directory, but the walk never descends through one.
type BundleStrategy struct {
	fs   afero.Fs
	root string
}

// NewBundleStrategy searches fsys starting at root. An empty root means
// DefaultSearchRoot.
func NewBundleStrategy(fsys afero.Fs, root string) *BundleStrategy {
	if root == "" {
		root = DefaultSearchRoot
	}
	return &BundleStrategy{fs: fsys, root: root}
}

func (s *BundleStrategy) Kind() StrategyKind { return KindBundle }

func (s *BundleStrategy) ExecutableSuffix() string { return BundleExecutable }

func (s *BundleStrategy) Find() (string, error) {
	entries, err := afero.ReadDir(s.fs, s.root)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: search root %s does not exist", ErrNotFound, s.root)
	}
	if err != nil {
		return "", fmt.Errorf("reading search root %s: %w", s.root, err)
	}

	if dir := s.search(s.root, entries); dir != "" {
		return dir, nil
	}
	return "", fmt.Errorf("%w: no %s under %s", ErrNotFound, bundleName, s.root)
}

func (s *BundleStrategy) search(dir string, entries []fs.FileInfo) string {
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if e.Mode()&fs.ModeSymlink != 0 {
			if strings.HasSuffix(e.Name(), bundleName) {
				if ok, _ := afero.IsDir(s.fs, path); ok {
					return path
				}
			}
			continue
		}
		if !e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), bundleName) {
			return path
		}
		if strings.HasSuffix(e.Name(), bundleSuffix) {
			continue
		}

		// Unreadable subdirectories are common under /Applications; skip them.
		children, err := afero.ReadDir(s.fs, path)
		if err != nil {
			continue
		}
		if found := s.search(path, children); found != "" {
			return found
		}
	}
	return ""
}
