package rules

import (
	"strings"
	"testing"

	"github.com/quangtuyen1993/hardcoded-strings/internal/dartast"
	"github.com/quangtuyen1993/hardcoded-strings/internal/source"
)

func TestSuppressed(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "same-line canonical marker",
			text: "Text('Hello world') // ignore: avoid_hardcoded_strings_in_widgets",
			want: true,
		},
		{
			name: "preceding-line canonical marker",
			text: "// ignore: avoid_hardcoded_strings_in_widgets\nText('Hello world')",
			want: true,
		},
		{
			name: "file-level marker on preceding line",
			text: "// ignore_for_file: avoid_hardcoded_strings_in_widgets\nText('Hello world')",
			want: true,
		},
		{
			name: "loose hardcoded string marker case-insensitive",
			text: "// IGNORE: Hardcoded_String\nText('Hello world')",
			want: true,
		},
		{
			name: "hardcoded.ok marker",
			text: "Text('Hello world') // HARDCODED.OK",
			want: true,
		},
		{
			name: "marker two lines above does not apply",
			text: "// ignore: avoid_hardcoded_strings_in_widgets\n\nText('Hello world')",
			want: false,
		},
		{
			name: "unrelated comment",
			text: "Text('Hello world') // tidy this up",
			want: false,
		},
		{
			name: "no comment at all",
			text: "Text('Hello world')",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := testContext(t, tt.text)

			off := strings.Index(tt.text, "'Hello world'")
			if off < 0 {
				t.Fatal("test text lacks the literal")
			}
			lit := strLit(uint32(off), uint32(off+13), "Hello world")
			unitOf(lit)

			if got := ctx.Suppressed(lit); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSuppressedWithoutLineInfo(t *testing.T) {
	ctx, _ := testContext(t, "short")

	// Span beyond the file content: line resolution fails and the node
	// must count as not suppressed so findings are not silently dropped.
	lit := &dartast.Node{
		Kind:     dartast.KindStringLiteral,
		Span:     source.Span{Start: 1000, End: 1010},
		Value:    "whatever",
		HasValue: true,
	}
	unitOf(lit)

	if ctx.Suppressed(lit) {
		t.Error("unresolvable position reported as suppressed")
	}

	noFile := &Context{}
	if noFile.Suppressed(lit) {
		t.Error("missing file reported as suppressed")
	}
}
