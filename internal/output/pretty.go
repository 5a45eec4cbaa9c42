package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/quangtuyen1993/hardcoded-strings/internal/config"
	"github.com/quangtuyen1993/hardcoded-strings/internal/diag"
	"github.com/quangtuyen1993/hardcoded-strings/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	ruleColor    = color.New(color.FgMagenta)
	markerColor  = color.New(color.FgGreen, color.Bold)
	helpColor    = color.New(color.FgBlue)
)

// Pretty renders findings for humans: a location header, the offending source
// line with an underline, then the correction hint and available fixes.
func Pretty(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, baseDir string, mode config.PathMode) error {
	for i, d := range diags {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := prettyOne(w, d, fs, baseDir, mode); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, baseDir string, mode config.PathMode) error {
	file := fs.Get(d.Primary.File)
	if file == nil {
		_, err := fmt.Fprintf(w, "%s %s: %s\n",
			severityColor(d.Severity).Sprint(severityLabel(d.Severity)),
			ruleColor.Sprint(d.Rule.ID()),
			sanitizeMessage(d.Message))
		return err
	}

	start, _ := fs.Resolve(d.Primary)
	_, err := fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		formatPath(file.Path, baseDir, mode),
		start.Line,
		start.Col,
		severityColor(d.Severity).Sprint(severityLabel(d.Severity)),
		ruleColor.Sprint(d.Rule.ID()),
		sanitizeMessage(d.Message))
	if err != nil {
		return err
	}

	if line := file.GetLine(start.Line); line != "" {
		if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  %s\n", markerColor.Sprint(underline(line, start.Col, spanWidth(d.Primary, line, start.Col)))); err != nil {
			return err
		}
	}

	if d.Correction != "" {
		if _, err := fmt.Fprintf(w, "  %s %s\n", helpColor.Sprint("help:"), d.Correction); err != nil {
			return err
		}
	}
	for _, fix := range d.Fixes {
		if _, err := fmt.Fprintf(w, "  %s %s\n", helpColor.Sprint("fix:"), fix.Title); err != nil {
			return err
		}
	}
	return nil
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// spanWidth clips the primary span to the rendered line.
func spanWidth(span source.Span, line string, col uint32) int {
	width := int(span.End) - int(span.Start)
	if width < 1 {
		width = 1
	}
	remaining := len(line) - int(col) + 1
	if remaining < 1 {
		remaining = 1
	}
	if width > remaining {
		width = remaining
	}
	return width
}

// underline builds the ^~~~ marker, keeping tabs from the source line so the
// marker stays aligned in terminals.
func underline(line string, col uint32, width int) string {
	var b strings.Builder
	for i := 0; i < int(col)-1 && i < len(line); i++ {
		if line[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('^')
	for i := 1; i < width; i++ {
		b.WriteByte('~')
	}
	return b.String()
}
