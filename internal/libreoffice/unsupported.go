// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package libreoffice

import "fmt"

// UnsupportedStrategy fails every search on operating systems without a
// discovery implementation.
type UnsupportedStrategy struct {
	OS string
}

func (s UnsupportedStrategy) Kind() StrategyKind { return KindUnsupported }

func (s UnsupportedStrategy) ExecutableSuffix() string { return "" }

func (s UnsupportedStrategy) Find() (string, error) {
	return "", fmt.Errorf("%w: %s (use an explicit install dir)", ErrUnsupportedPlatform, s.OS)
}
