package source

import (
	"testing"
)

func TestFileSetAddVirtual(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("lib/main.dart", []byte("void main() {}\n"))

	f := fs.Get(id)
	if f == nil {
		t.Fatal("Get returned nil for a just-added file")
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("virtual flag not set")
	}
	if f.Path != "lib/main.dart" {
		t.Errorf("path: got %q", f.Path)
	}

	got, ok := fs.GetByPath("lib/main.dart")
	if !ok || got.ID != id {
		t.Errorf("GetByPath: got %v, ok=%v", got, ok)
	}
}

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.dart", []byte("abc\ndefg\nhi"))

	start, end := fs.Resolve(Span{File: id, Start: 4, End: 8})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start: got %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 5 {
		t.Errorf("end: got %d:%d, want 2:5", end.Line, end.Col)
	}
}

func TestFileGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.dart", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{line: 0, want: ""},
		{line: 1, want: "first"},
		{line: 2, want: "second"},
		{line: 3, want: "third"},
		{line: 4, want: ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d): got %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestFileSlice(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.dart", []byte("Text('hello')"))
	f := fs.Get(id)

	if got := f.Slice(Span{File: id, Start: 5, End: 12}); got != "'hello'" {
		t.Errorf("Slice: got %q", got)
	}
	if got := f.Slice(Span{File: id, Start: 5, End: 100}); got != "" {
		t.Errorf("out-of-range Slice: got %q, want empty", got)
	}
}

func TestFileLineOf(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.dart", []byte("a\nb\nc"))
	f := fs.Get(id)

	if got := f.LineOf(2); got != 2 {
		t.Errorf("LineOf(2): got %d, want 2", got)
	}
	if got := f.LineOf(100); got != 0 {
		t.Errorf("LineOf out of range: got %d, want 0", got)
	}
}
