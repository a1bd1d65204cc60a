// Package pathx adds the file-path helpers path/filepath leaves out.
package pathx

import (
	"path/filepath"
	"strings"
)

// StripExt removes the final extension from path, if any.
func StripExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// ReplaceExt swaps the final extension of path for ext, which may be given
// with or without its leading dot. An empty ext behaves like StripExt.
func ReplaceExt(path string, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return StripExt(path) + ext
}

// Segments splits path into its cleaned components. Leading and trailing
// separators are dropped; "." and "/" have no segments.
func Segments(path string) []string {
	clean := strings.Trim(filepath.ToSlash(filepath.Clean(path)), "/")
	if clean == "" || clean == "." {
		return nil
	}
	return strings.Split(clean, "/")
}
