// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package libreoffice locates a LibreOffice installation and its soffice
// entry point. Discovery is delegated to one platform Strategy per Locator:
// the Windows uninstall registry, a macOS application bundle search, an
// explicit directory, or an unsupported-platform stub.
package libreoffice

import (
	"errors"
	"path/filepath"
	"sync"
)

var (
	// ErrNotFound reports that discovery ran but found no installation.
	ErrNotFound = errors.New("libreoffice installation not found")

	// ErrNotInstalled is returned when the executable path is requested
	// and no installation was found.
	ErrNotInstalled = errors.New("libreoffice is not installed")

	// ErrUnsupportedPlatform reports that the host OS has no discovery strategy.
	ErrUnsupportedPlatform = errors.New("platform not supported for libreoffice discovery")
)

// StrategyKind names the discovery variant a Locator uses.
type StrategyKind string

const (
	KindRegistry    StrategyKind = "registry"
	KindBundle      StrategyKind = "bundle"
	KindStatic      StrategyKind = "static"
	KindUnsupported StrategyKind = "unsupported"
)

// Strategy finds the installation root on one platform family.
type Strategy interface {
	// Kind identifies the strategy variant.
	Kind() StrategyKind

	// Find returns the installation root. It returns an error wrapping
	// ErrNotFound when the search completes without a match.
	Find() (string, error)

	// ExecutableSuffix is the slash-separated path of soffice relative
	// to the installation root.
	ExecutableSuffix() string
}

// Locator memoizes the installation root and executable path found by its
// Strategy. Each value is computed at most once, and failures are cached
// along with successes: a Locator that found nothing keeps reporting
// ErrNotFound even if LibreOffice is installed later. Build a new Locator
// to search again.
type Locator struct {
	strategy   Strategy
	location   func() (string, error)
	executable func() (string, error)
}

// NewLocator returns a Locator that discovers the installation with s.
func NewLocator(s Strategy) *Locator {
	l := &Locator{strategy: s}
	l.location = sync.OnceValues(s.Find)
	l.executable = sync.OnceValues(l.deriveExecutable)
	return l
}

// Kind returns the active strategy variant.
func (l *Locator) Kind() StrategyKind { return l.strategy.Kind() }

// InstallLocation returns the LibreOffice installation root. The first call
// runs the search; concurrent and later calls share its result.
func (l *Locator) InstallLocation() (string, error) {
	return l.location()
}

// ExecutablePath returns the path of soffice inside the installation.
// It returns ErrNotInstalled when discovery found nothing and propagates
// any other discovery error unchanged.
func (l *Locator) ExecutablePath() (string, error) {
	return l.executable()
}

// IsInstalled reports whether discovery found an installation.
func (l *Locator) IsInstalled() bool {
	_, err := l.InstallLocation()
	return err == nil
}

func (l *Locator) deriveExecutable() (string, error) {
	dir, err := l.InstallLocation()
	if errors.Is(err, ErrNotFound) {
		return "", ErrNotInstalled
	}
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.FromSlash(l.strategy.ExecutableSuffix())), nil
}
