package convert

import (
	"path/filepath"
	"strings"
)

const (
	documentExt = ".json"
	tabularExt  = ".csv"

	// enhancedSuffix marks the egress output so it never collides with
	// the original workbook sitting in the same directory.
	enhancedSuffix = " - Enhanced"
)

// DocumentPath returns the document path for a tabular input: the same
// path with its extension replaced by the document extension.
func DocumentPath(tabularPath string) string {
	return strings.TrimSuffix(tabularPath, filepath.Ext(tabularPath)) + documentExt
}

// EnhancedPath returns the tabular output path for a document: the
// document's base name with the enhanced-suffix marker and the tabular
// extension.
func EnhancedPath(documentPath string) string {
	return strings.TrimSuffix(documentPath, filepath.Ext(documentPath)) + enhancedSuffix + tabularExt
}
