// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"path/filepath"
	"slices"
)

// supportedExtensions lists the source types soffice is asked to convert.
// Matching is case-sensitive.
var supportedExtensions = []string{
	".txt", ".html",
	".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx",
	".odt", ".ods", ".odp", ".odg", ".odc", ".odf", ".odi",
}

// SupportedExtensions returns the recognized source extensions in order.
func SupportedExtensions() []string {
	return slices.Clone(supportedExtensions)
}

// IsSupported reports whether path has a recognized source extension.
func IsSupported(path string) bool {
	return slices.Contains(supportedExtensions, filepath.Ext(path))
}
