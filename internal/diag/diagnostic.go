package diag

import (
	"github.com/quangtuyen1993/hardcoded-strings/internal/lintrules"
	"github.com/quangtuyen1993/hardcoded-strings/internal/source"
)

// TextEdit replaces the text covered by Span with NewText. OldText, when not
// empty, guards the edit: application fails if the current content differs.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// Fix is an automated correction attached to a diagnostic.
type Fix struct {
	Title string
	Edits []TextEdit
}

// Diagnostic is a single rule violation. Primary anchors it in the source;
// for the asset rule that is the owning constructor call, not the literal.
type Diagnostic struct {
	Severity   Severity
	Rule       lintrules.Rule
	Message    string
	Correction string
	Primary    source.Span
	Fixes      []Fix
}

// WithFix returns a copy of the diagnostic with the fix appended.
func (d Diagnostic) WithFix(title string, edits ...TextEdit) Diagnostic {
	d.Fixes = append(d.Fixes[:len(d.Fixes):len(d.Fixes)], Fix{
		Title: title,
		Edits: edits,
	})
	return d
}
