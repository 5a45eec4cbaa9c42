package dartast

import (
	"testing"
)

const sampleDump = `{
  "path": "lib/home.dart",
  "text": "Text('hi')",
  "unit": {
    "kind": "compilation_unit",
    "start": 0,
    "end": 10,
    "children": [
      {
        "kind": "constructor_call",
        "start": 0,
        "end": 10,
        "class": "Text",
        "type": "Text",
        "children": [
          {
            "kind": "argument_list",
            "start": 4,
            "end": 10,
            "children": [
              {"kind": "string_literal", "start": 5, "end": 9, "value": "hi"}
            ]
          }
        ]
      }
    ]
  },
  "types": {
    "Text": {"name": "Text", "super": "StatelessWidget"},
    "StatelessWidget": {"name": "StatelessWidget", "super": "Widget"},
    "Widget": {"name": "Widget"}
  }
}`

func TestDecode(t *testing.T) {
	doc, err := Decode([]byte(sampleDump), 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if doc.Path != "lib/home.dart" {
		t.Errorf("path: got %q", doc.Path)
	}
	if doc.Unit.Kind != KindCompilationUnit {
		t.Errorf("unit kind: got %v", doc.Unit.Kind)
	}

	call := doc.Unit.Children[0]
	if call.Kind != KindConstructorCall || call.Class != "Text" {
		t.Fatalf("unexpected first child: %v %q", call.Kind, call.Class)
	}
	if call.ConstructorName() != "Text" {
		t.Errorf("constructor name: got %q", call.ConstructorName())
	}

	lit := call.Children[0].Children[0]
	if lit.Kind != KindStringLiteral || !lit.HasValue || lit.Value != "hi" {
		t.Fatalf("unexpected literal: %+v", lit)
	}
	if lit.Parent() != call.Children[0] {
		t.Error("parent link not set")
	}

	typ, ok := doc.Types.Lookup(call.TypeRef)
	if !ok || typ.Super != "StatelessWidget" {
		t.Errorf("type lookup: got %+v, ok=%v", typ, ok)
	}
}

func TestDecodeRejectsBadSpans(t *testing.T) {
	_, err := Decode([]byte(`{
	  "path": "x.dart",
	  "text": "ab",
	  "unit": {"kind": "compilation_unit", "start": 0, "end": 99}
	}`), 0)
	if err == nil {
		t.Fatal("expected span validation error")
	}
}

func TestDecodeRejectsUnknownKind(t *testing.T) {
	_, err := Decode([]byte(`{
	  "path": "x.dart",
	  "text": "ab",
	  "unit": {"kind": "weird_thing", "start": 0, "end": 2}
	}`), 0)
	if err == nil {
		t.Fatal("expected unknown kind error")
	}
}

func TestWalkPrunes(t *testing.T) {
	doc, err := Decode([]byte(sampleDump), 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	var kinds []Kind
	Walk(doc.Unit, func(n *Node) bool {
		kinds = append(kinds, n.Kind)
		return n.Kind != KindConstructorCall
	})

	want := []Kind{KindCompilationUnit, KindConstructorCall}
	if len(kinds) != len(want) {
		t.Fatalf("visited %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("visited %v, want %v", kinds, want)
		}
	}
}

func TestInsideDirective(t *testing.T) {
	lit := &Node{Kind: KindStringLiteral, Value: "package:foo/foo.dart", HasValue: true}
	dir := &Node{Kind: KindDirective, Children: []*Node{lit}}
	unit := &Node{Kind: KindCompilationUnit, Children: []*Node{dir}}
	Link(unit)

	if !lit.InsideDirective() {
		t.Error("literal inside directive not detected")
	}
	if dir.InsideDirective() {
		t.Error("directive node itself must not count as inside a directive")
	}
}
