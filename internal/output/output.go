// Package output renders collected findings in the supported formats.
package output

import (
	"fmt"
	"io"

	"github.com/quangtuyen1993/hardcoded-strings/internal/config"
	"github.com/quangtuyen1993/hardcoded-strings/internal/diag"
	"github.com/quangtuyen1993/hardcoded-strings/internal/source"
)

// Render dispatches to the renderer selected by format.
func Render(w io.Writer, format config.Format, diags []diag.Diagnostic, fs *source.FileSet, baseDir string, mode config.PathMode) error {
	switch format {
	case config.FormatPretty:
		return Pretty(w, diags, fs, baseDir, mode)
	case config.FormatJSON:
		return JSON(w, diags, fs, baseDir, mode)
	case config.FormatShort:
		return Short(w, diags, fs, baseDir, mode)
	default:
		return fmt.Errorf("unknown output format %s", format)
	}
}
