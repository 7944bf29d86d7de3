// Package inputs turns command-line arguments into the list of log paths to scan.
package inputs

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Expand returns args unchanged unless glob is true, in which case each
// argument containing pattern syntax is replaced by its matches in sorted
// order. Recursive patterns like logs/**/*.log are supported. A pattern that
// matches nothing, or fails to expand, is kept literally so the scanner
// reports it.
func Expand(args []string, glob bool) []string {
	if !glob {
		return args
	}

	paths := make([]string, 0, len(args))
	for _, arg := range args {
		if !hasMeta(arg) {
			paths = append(paths, arg)
			continue
		}

		matches, err := expandGlob(arg)
		if err != nil {
			slog.Warn("failed to expand pattern", "pattern", arg, "error", err)
			paths = append(paths, arg)
			continue
		}
		if len(matches) == 0 {
			slog.Debug("pattern matched no files", "pattern", arg)
			paths = append(paths, arg)
			continue
		}
		sort.Strings(matches)
		paths = append(paths, matches...)
	}
	return paths
}

func hasMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// expandGlob resolves a pattern to matching file paths, skipping directories.
func expandGlob(pattern string) ([]string, error) {
	return doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
}
