package output

import (
	"path/filepath"
	"strings"

	"github.com/quangtuyen1993/hardcoded-strings/internal/config"
)

// formatPath renders a file path according to the configured mode. baseDir is
// the directory relative paths are computed against, usually the working
// directory of the run.
func formatPath(path, baseDir string, mode config.PathMode) string {
	switch mode {
	case config.PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return filepath.ToSlash(abs)
		}
		return cleanSlash(path)
	case config.PathModeRelative:
		if rel, ok := relativeTo(path, baseDir); ok {
			return rel
		}
		return cleanSlash(path)
	default:
		// Auto prefers a relative path as long as it does not escape baseDir.
		if rel, ok := relativeTo(path, baseDir); ok && !strings.HasPrefix(rel, "../") {
			return rel
		}
		return cleanSlash(path)
	}
}

func relativeTo(path, baseDir string) (string, bool) {
	if baseDir == "" {
		return "", false
	}
	rel, err := filepath.Rel(baseDir, path)
	if err != nil {
		return "", false
	}
	return cleanSlash(rel), true
}

func cleanSlash(path string) string {
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}
