package diag

import (
	"testing"

	"github.com/quangtuyen1993/hardcoded-strings/internal/lintrules"
	"github.com/quangtuyen1993/hardcoded-strings/internal/source"
)

func mkdiag(rule lintrules.Rule, file source.FileID, start, end uint32) Diagnostic {
	return Diagnostic{
		Severity: SevWarning,
		Rule:     rule,
		Message:  rule.Description(),
		Primary:  source.Span{File: file, Start: start, End: end},
	}
}

func TestBagCapacity(t *testing.T) {
	b := NewBag(2)

	if !b.Add(mkdiag(lintrules.WidgetString(), 0, 0, 1)) {
		t.Fatal("first add rejected")
	}
	if !b.Add(mkdiag(lintrules.WidgetString(), 0, 2, 3)) {
		t.Fatal("second add rejected")
	}
	if b.Add(mkdiag(lintrules.WidgetString(), 0, 4, 5)) {
		t.Fatal("third add accepted over capacity")
	}
	if !b.Full() {
		t.Error("bag not reported as full")
	}
	if b.Len() != 2 {
		t.Errorf("len: got %d, want 2", b.Len())
	}
}

func TestBagSort(t *testing.T) {
	b := NewBag(10)
	b.Add(mkdiag(lintrules.AssetPath(), 1, 5, 9))
	b.Add(mkdiag(lintrules.WidgetString(), 0, 7, 9))
	b.Add(mkdiag(lintrules.WidgetString(), 0, 2, 4))
	b.Sort()

	items := b.Items()
	if items[0].Primary.Start != 2 || items[1].Primary.Start != 7 || items[2].Primary.File != 1 {
		t.Errorf("unexpected order: %+v", items)
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(10)
	d := mkdiag(lintrules.WidgetString(), 0, 2, 4)
	b.Add(d)
	b.Add(d)
	b.Add(mkdiag(lintrules.AssetPath(), 0, 2, 4))
	b.Dedup()

	if b.Len() != 2 {
		t.Errorf("len after dedup: got %d, want 2", b.Len())
	}
}

func TestBagReporter(t *testing.T) {
	b := NewBag(4)
	var r Reporter = BagReporter{Bag: b}
	r.Report(mkdiag(lintrules.WidgetString(), 0, 0, 1))

	if b.Len() != 1 {
		t.Fatalf("len: got %d, want 1", b.Len())
	}

	// Nil bag and NopReporter must both swallow reports silently.
	BagReporter{}.Report(mkdiag(lintrules.WidgetString(), 0, 0, 1))
	NopReporter{}.Report(mkdiag(lintrules.WidgetString(), 0, 0, 1))
}

func TestDiagnosticWithFix(t *testing.T) {
	d := mkdiag(lintrules.AssetPath(), 0, 0, 30)
	fixed := d.WithFix("Use generated asset reference", TextEdit{
		Span:    d.Primary,
		NewText: "Assets.icons.home.svg()",
		OldText: "Image.asset('assets/icons/home.svg')",
	})

	if len(d.Fixes) != 0 {
		t.Error("WithFix modified the receiver")
	}
	if len(fixed.Fixes) != 1 || fixed.Fixes[0].Title == "" {
		t.Errorf("fix not attached: %+v", fixed.Fixes)
	}
}
