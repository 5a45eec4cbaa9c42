package fixer

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/quangtuyen1993/hardcoded-strings/internal/diag"
	"github.com/quangtuyen1993/hardcoded-strings/internal/lintrules"
	"github.com/quangtuyen1993/hardcoded-strings/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// Options configures fix application.
type Options struct {
	// DryRun computes the changed buffers without touching the disk.
	DryRun bool
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	Title     string
	Rule      lintrules.Rule
	Path      string
	EditCount int
}

// SkippedFix captures a skipped fix with a reason.
type SkippedFix struct {
	Title  string
	Reason string
}

// FileChange summarises modifications performed on a file.
type FileChange struct {
	Path      string
	EditCount int
}

// Result aggregates applied fixes, skipped ones, and file changes.
type Result struct {
	Applied []AppliedFix
	Skipped []SkippedFix
	Changes []FileChange
}

type candidate struct {
	diag  diag.Diagnostic
	fix   diag.Fix
	order int
}

// Apply collects the fixes attached to diagnostics and applies them to the
// files of fs. Fixes whose guards fail (changed content, overlapping edits,
// stale files) are skipped individually; the rest still go through.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts Options) (*Result, error) {
	result := &Result{
		Applied: make([]AppliedFix, 0),
		Skipped: make([]SkippedFix, 0),
		Changes: make([]FileChange, 0),
	}
	if fs == nil {
		return result, fmt.Errorf("fixer: FileSet is nil")
	}

	candidates := gatherCandidates(diagnostics)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)

	states := applyCandidates(fs, candidates, result)

	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}

	if !opts.DryRun {
		if err := flushChanges(fs, states); err != nil {
			return result, err
		}
	}
	return result, nil
}

func gatherCandidates(diagnostics []diag.Diagnostic) []candidate {
	cands := make([]candidate, 0)
	order := 0
	for _, d := range diagnostics {
		for _, f := range d.Fixes {
			if len(f.Edits) == 0 {
				continue
			}
			cands = append(cands, candidate{
				diag:  d,
				fix:   f,
				order: order,
			})
			order++
		}
	}
	return cands
}

// sortCandidates orders the candidates by file, span, then insertion order so
// application is deterministic regardless of reporting order.
func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := candidates[i].diag, candidates[j].diag
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		return candidates[i].order < candidates[j].order
	})
}

type fileState struct {
	buffer  []byte
	applied []diag.TextEdit
	edits   int
}

func applyCandidates(fs *source.FileSet, candidates []candidate, result *Result) map[source.FileID]*fileState {
	states := make(map[source.FileID]*fileState)
	staleness := make(map[source.FileID]string)

	for _, cand := range candidates {
		reason := applyOne(fs, cand, states, staleness)
		if reason != "" {
			result.Skipped = append(result.Skipped, SkippedFix{
				Title:  cand.fix.Title,
				Reason: reason,
			})
			continue
		}
		file := fs.Get(cand.diag.Primary.File)
		result.Applied = append(result.Applied, AppliedFix{
			Title:     cand.fix.Title,
			Rule:      cand.diag.Rule,
			Path:      file.Path,
			EditCount: len(cand.fix.Edits),
		})
	}

	ids := make([]source.FileID, 0, len(states))
	for id := range states {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		st := states[id]
		if st.edits == 0 {
			continue
		}
		result.Changes = append(result.Changes, FileChange{
			Path:      fs.Get(id).Path,
			EditCount: st.edits,
		})
	}
	return states
}

// applyOne stages a single fix and returns a skip reason, empty on success.
// All edits of a fix land or none do.
func applyOne(fs *source.FileSet, cand candidate, states map[source.FileID]*fileState, staleness map[source.FileID]string) string {
	edits := make([]diag.TextEdit, len(cand.fix.Edits))
	copy(edits, cand.fix.Edits)
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].Span.Start == edits[j].Span.Start {
			return edits[i].Span.End > edits[j].Span.End
		}
		return edits[i].Span.Start > edits[j].Span.Start
	})

	// Every edit of the asset rule targets a single file, but keep the
	// grouping honest anyway.
	staged := make(map[source.FileID]*fileState)

	for _, edit := range edits {
		file := fs.Get(edit.Span.File)
		if file == nil {
			return "edit targets an unknown file"
		}
		if file.Flags&source.FileVirtual != 0 {
			return "target file is virtual"
		}
		if reason := checkStaleness(file, staleness); reason != "" {
			return reason
		}

		st := staged[file.ID]
		if st == nil {
			base := states[file.ID]
			if base == nil {
				base = &fileState{buffer: append([]byte(nil), file.Content...)}
			}
			st = &fileState{
				buffer:  append([]byte(nil), base.buffer...),
				applied: append([]diag.TextEdit(nil), base.applied...),
				edits:   base.edits,
			}
			staged[file.ID] = st
		}

		if conflictsWithExisting(st.applied, edit) {
			return fmt.Sprintf("conflicts with a previously applied edit in %s", file.Path)
		}

		start := int(edit.Span.Start) + cumulativeDelta(st.applied, int(edit.Span.Start))
		end := int(edit.Span.End) + cumulativeDelta(st.applied, int(edit.Span.End))
		if start < 0 || end < start || end > len(st.buffer) {
			return "edit span out of range"
		}
		if edit.OldText != "" && string(st.buffer[start:end]) != edit.OldText {
			return "existing text does not match expected content"
		}

		suffix := append([]byte(nil), st.buffer[end:]...)
		st.buffer = append(append(st.buffer[:start], []byte(edit.NewText)...), suffix...)
		st.applied = insertEditSorted(st.applied, edit)
		st.edits++
	}

	for id, st := range staged {
		states[id] = st
	}
	return ""
}

// checkStaleness rejects fixes for files whose on-disk content no longer
// matches the analyzed snapshot. The verdict is cached per file.
func checkStaleness(file *source.File, cache map[source.FileID]string) string {
	if reason, ok := cache[file.ID]; ok {
		return reason
	}

	reason := ""
	content, err := os.ReadFile(file.Path) // #nosec G304 -- path comes from the analyzed file set
	if err != nil {
		reason = fmt.Sprintf("cannot read %s: %v", file.Path, err)
	} else {
		content, _ = source.Normalize(content)
		if sha256.Sum256(content) != file.Hash {
			reason = fmt.Sprintf("%s changed since analysis", file.Path)
		}
	}
	cache[file.ID] = reason
	return reason
}

func flushChanges(fs *source.FileSet, states map[source.FileID]*fileState) error {
	ids := make([]source.FileID, 0, len(states))
	for id := range states {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		st := states[id]
		if st.edits == 0 {
			continue
		}
		file := fs.Get(id)

		mode := os.FileMode(0o644)
		if info, err := os.Stat(file.Path); err == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(file.Path, st.buffer, mode); err != nil {
			return fmt.Errorf("write %s: %w", file.Path, err)
		}
	}
	return nil
}

func conflictsWithExisting(existing []diag.TextEdit, edit diag.TextEdit) bool {
	for _, prev := range existing {
		if spansConflict(prev, edit) {
			return true
		}
	}
	return false
}

// spansConflict reports whether two half-open edit spans overlap. Two
// zero-length edits at the same position never conflict; a zero-length edit
// conflicts with a span containing its position.
func spansConflict(a, b diag.TextEdit) bool {
	aStart, aEnd := a.Span.Start, a.Span.End
	bStart, bEnd := b.Span.Start, b.Span.End

	if aStart == aEnd && bStart == bEnd {
		return false
	}
	if aStart == aEnd {
		return bStart <= aStart && aStart < bEnd
	}
	if bStart == bEnd {
		return aStart <= bStart && bStart < aEnd
	}
	return aStart < bEnd && bStart < aEnd
}

// cumulativeDelta sums the length changes of edits fully before pos, mapping
// an original offset into the current buffer.
func cumulativeDelta(edits []diag.TextEdit, pos int) int {
	delta := 0
	for _, e := range edits {
		eStart := int(e.Span.Start)
		if eStart > pos {
			break
		}
		eEnd := int(e.Span.End)
		if eEnd <= pos {
			delta += len(e.NewText) - (eEnd - eStart)
		}
	}
	return delta
}

func insertEditSorted(edits []diag.TextEdit, edit diag.TextEdit) []diag.TextEdit {
	insertIdx := sort.Search(len(edits), func(i int) bool {
		if edits[i].Span.Start == edit.Span.Start {
			return edits[i].Span.End >= edit.Span.End
		}
		return edits[i].Span.Start > edit.Span.Start
	})
	edits = append(edits, diag.TextEdit{})
	copy(edits[insertIdx+1:], edits[insertIdx:])
	edits[insertIdx] = edit
	return edits
}
