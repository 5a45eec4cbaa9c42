package dartast

import (
	"encoding/json"
	"fmt"

	"fortio.org/safecast"

	"github.com/quangtuyen1993/hardcoded-strings/internal/source"
)

// Document is one front-end dump: the original source text, the collapsed
// tree over it and the type table referenced by constructor calls.
type Document struct {
	Path  string
	Text  string
	Unit  *Node
	Types TypeTable
}

type docJSON struct {
	Path  string          `json:"path"`
	Text  string          `json:"text"`
	Unit  *nodeJSON       `json:"unit"`
	Types map[string]Type `json:"types"`
}

type nodeJSON struct {
	Kind     string      `json:"kind"`
	Start    uint32      `json:"start"`
	End      uint32      `json:"end"`
	Value    *string     `json:"value,omitempty"`
	Class    string      `json:"class,omitempty"`
	Ctor     string      `json:"ctor,omitempty"`
	Label    string      `json:"label,omitempty"`
	TypeRef  string      `json:"type,omitempty"`
	Children []*nodeJSON `json:"children,omitempty"`
}

// Decode parses a dump document and links the resulting tree. The fileID is
// assigned to every node span so that diagnostics resolve against the file
// registered for this document's text.
func Decode(data []byte, fileID source.FileID) (*Document, error) {
	var raw docJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse dump document: %w", err)
	}
	if raw.Unit == nil {
		return nil, fmt.Errorf("dump document has no unit")
	}

	textLen, err := safecast.Conv[uint32](len(raw.Text))
	if err != nil {
		return nil, fmt.Errorf("dump text too large: %w", err)
	}

	unit, err := buildNode(raw.Unit, fileID, textLen)
	if err != nil {
		return nil, fmt.Errorf("build tree for %s: %w", raw.Path, err)
	}
	Link(unit)

	types := TypeTable(raw.Types)
	if types == nil {
		types = TypeTable{}
	}

	return &Document{
		Path:  raw.Path,
		Text:  raw.Text,
		Unit:  unit,
		Types: types,
	}, nil
}

func buildNode(raw *nodeJSON, fileID source.FileID, textLen uint32) (*Node, error) {
	var kind Kind
	if err := kind.UnmarshalText([]byte(raw.Kind)); err != nil {
		return nil, err
	}

	if raw.Start > raw.End || raw.End > textLen {
		return nil, fmt.Errorf("node %s has span %d-%d outside text of %d bytes",
			raw.Kind, raw.Start, raw.End, textLen)
	}

	n := &Node{
		Kind: kind,
		Span: source.Span{
			File:  fileID,
			Start: raw.Start,
			End:   raw.End,
		},
		Class:   raw.Class,
		Ctor:    raw.Ctor,
		Label:   raw.Label,
		TypeRef: raw.TypeRef,
	}
	if raw.Value != nil {
		n.Value = *raw.Value
		n.HasValue = true
	}

	for _, child := range raw.Children {
		if child == nil {
			continue
		}
		built, err := buildNode(child, fileID, textLen)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, built)
	}

	return n, nil
}
