package output

import (
	"encoding/json"
	"io"

	"github.com/quangtuyen1993/hardcoded-strings/internal/config"
	"github.com/quangtuyen1993/hardcoded-strings/internal/diag"
	"github.com/quangtuyen1993/hardcoded-strings/internal/source"
)

// Coordinate is a 1-based line/column pair.
type Coordinate struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Position covers the primary span of an issue.
type Position struct {
	Begin Coordinate `json:"begin"`
	End   Coordinate `json:"end"`
}

// Location ties an issue to a file position.
type Location struct {
	Path     string   `json:"path"`
	Position Position `json:"position"`
}

// Issue is one reported finding.
type Issue struct {
	IssueCode  string   `json:"issue_code"`
	IssueText  string   `json:"issue_text"`
	Severity   string   `json:"severity"`
	Correction string   `json:"correction,omitempty"`
	HasFix     bool     `json:"has_fix"`
	Location   Location `json:"location"`
}

// Report is the document emitted by the json format.
type Report struct {
	Issues []Issue `json:"issues"`
}

// JSON writes the machine-readable issue report.
func JSON(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, baseDir string, mode config.PathMode) error {
	report := BuildReport(diags, fs, baseDir, mode)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// BuildReport converts diagnostics into the report document.
func BuildReport(diags []diag.Diagnostic, fs *source.FileSet, baseDir string, mode config.PathMode) Report {
	report := Report{Issues: make([]Issue, 0, len(diags))}
	for _, d := range diags {
		file := fs.Get(d.Primary.File)
		if file == nil {
			continue
		}
		start, end := fs.Resolve(d.Primary)
		report.Issues = append(report.Issues, Issue{
			IssueCode:  d.Rule.ID(),
			IssueText:  sanitizeMessage(d.Message),
			Severity:   severityLabel(d.Severity),
			Correction: d.Correction,
			HasFix:     len(d.Fixes) > 0,
			Location: Location{
				Path: formatPath(file.Path, baseDir, mode),
				Position: Position{
					Begin: Coordinate{Line: int(start.Line), Column: int(start.Col)},
					End:   Coordinate{Line: int(end.Line), Column: int(end.Col)},
				},
			},
		})
	}
	return report
}
