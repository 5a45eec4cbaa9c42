package dartast

import (
	"encoding"
	"fmt"
)

// Kind classifies a node of the host-supplied tree. The front end collapses
// the full Dart grammar into the handful of shapes the rules care about;
// everything else arrives as KindExpression.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindCompilationUnit
	KindDirective
	KindConstructorCall
	KindArgumentList
	KindNamedArgument
	KindFunctionExpression
	KindFunctionBody
	KindMapEntry
	KindIndexExpression
	KindStringLiteral
	KindExpression
)

var kindNames = map[Kind]string{
	KindCompilationUnit:    "compilation_unit",
	KindDirective:          "directive",
	KindConstructorCall:    "constructor_call",
	KindArgumentList:       "argument_list",
	KindNamedArgument:      "named_argument",
	KindFunctionExpression: "function_expression",
	KindFunctionBody:       "function_body",
	KindMapEntry:           "map_entry",
	KindIndexExpression:    "index_expression",
	KindStringLiteral:      "string_literal",
	KindExpression:         "expression",
}

func (k Kind) String() string {
	v, ok := kindNames[k]
	if !ok {
		return fmt.Sprintf("kind-invalid(%d)", k)
	}

	return v
}

var _ encoding.TextUnmarshaler = (*Kind)(nil)

// UnmarshalText for decoding dump documents.
func (k *Kind) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for kind, name := range kindNames {
		if name == text {
			*k = kind
			return nil
		}
	}

	return fmt.Errorf("unknown node kind %q", text)
}

func (k Kind) MarshalText() ([]byte, error) {
	v, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Kind(%d)", k)
	}

	return []byte(v), nil
}
