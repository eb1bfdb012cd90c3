// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package libreoffice

import (
	"fmt"

	"github.com/spf13/afero"
)

// StaticStrategy uses a directory named by the user instead of searching.
type StaticStrategy struct {
	fs     afero.Fs
	dir    string
	suffix string
}

// NewStaticStrategy accepts dir as the installation root when it exists in
// fsys. suffix locates soffice within it.
func NewStaticStrategy(fsys afero.Fs, dir, suffix string) *StaticStrategy {
	return &StaticStrategy{fs: fsys, dir: dir, suffix: suffix}
}

func (s *StaticStrategy) Kind() StrategyKind { return KindStatic }

func (s *StaticStrategy) ExecutableSuffix() string { return s.suffix }

func (s *StaticStrategy) Find() (string, error) {
	ok, err := afero.DirExists(s.fs, s.dir)
	if err != nil {
		return "", fmt.Errorf("checking install dir %s: %w", s.dir, err)
	}
	if !ok {
		return "", fmt.Errorf("%w: install dir %s is not a directory", ErrNotFound, s.dir)
	}
	return s.dir, nil
}
