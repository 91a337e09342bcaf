package rule

import (
	"path/filepath"
	"runtime"
	"strings"
)

// ancestors decomposes a path into its directory components, nearest to the
// file first. The file's own leaf name is always excluded. Platform drive
// prefixes are reduced to their readable names: the \\?\ verbatim marker is
// stripped everywhere and the drive-letter colon is stripped on Windows.
func ancestors(path string) []string {
	dir := filepath.Dir(path)
	volume := filepath.VolumeName(dir)

	var components []string
	for _, part := range strings.FieldsFunc(dir[len(volume):], isPathSeparator) {
		components = append(components, cleanComponent(part))
	}
	if volume != "" {
		components = append([]string{cleanComponent(volume)}, components...)
	}

	// Nearest-first ordering.
	for i, j := 0, len(components)-1; i < j; i, j = i+1, j-1 {
		components[i], components[j] = components[j], components[i]
	}
	return components
}

func isPathSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

func cleanComponent(component string) string {
	component = strings.ReplaceAll(component, `\\?\`, "")
	if runtime.GOOS == "windows" {
		component = strings.ReplaceAll(component, ":", "")
	}
	return component
}
