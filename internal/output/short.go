package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/quangtuyen1993/hardcoded-strings/internal/config"
	"github.com/quangtuyen1993/hardcoded-strings/internal/diag"
	"github.com/quangtuyen1993/hardcoded-strings/internal/source"
)

// Short writes one stable line per finding:
//
//	<severity> <rule> <path>:<line>:<col> <message>
//
// The same text serves as the golden format in tests, so it must stay free of
// colors and environment-dependent detail.
func Short(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, baseDir string, mode config.PathMode) error {
	for _, line := range ShortLines(diags, fs, baseDir, mode) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// ShortLines renders the short format line by line.
func ShortLines(diags []diag.Diagnostic, fs *source.FileSet, baseDir string, mode config.PathMode) []string {
	lines := make([]string, 0, len(diags))
	for _, d := range diags {
		file := fs.Get(d.Primary.File)
		if file == nil {
			continue
		}
		start, _ := fs.Resolve(d.Primary)
		lines = append(lines, fmt.Sprintf(
			"%s %s %s:%d:%d %s",
			severityLabel(d.Severity),
			d.Rule.ID(),
			formatPath(file.Path, baseDir, mode),
			start.Line,
			start.Col,
			sanitizeMessage(d.Message),
		))
	}
	return lines
}

func severityLabel(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "info"
	}
}

// sanitizeMessage collapses newlines so every finding stays on one line.
func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
