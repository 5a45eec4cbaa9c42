package rules

import (
	"github.com/quangtuyen1993/hardcoded-strings/internal/dartast"
)

// argumentContext describes a literal that is a direct argument of a
// constructor call: the owning call, the argument list it came through, the
// top-level argument entry holding the literal, and the bound parameter name
// for named arguments ("" for positional ones).
type argumentContext struct {
	owner   *dartast.Node
	argList *dartast.Node
	arg     *dartast.Node
	label   string
}

// directArgumentContext resolves the literal's direct-argument position.
// A literal separated from the nearest argument list by a function literal
// or function body belongs to a nested callback, not to the call, and yields
// no context. The same applies when the argument list does not belong to a
// constructor call, or when the literal is not itself a top-level entry (or
// the exact value of a named entry) of that list.
func directArgumentContext(lit *dartast.Node) (argumentContext, bool) {
	var argList *dartast.Node
	for cur := lit.Parent(); cur != nil; cur = cur.Parent() {
		if cur.Kind == dartast.KindFunctionExpression || cur.Kind == dartast.KindFunctionBody {
			return argumentContext{}, false
		}
		if cur.Kind == dartast.KindArgumentList {
			argList = cur
			break
		}
	}
	if argList == nil {
		return argumentContext{}, false
	}

	owner := argList.Parent()
	if owner == nil || owner.Kind != dartast.KindConstructorCall {
		return argumentContext{}, false
	}

	for _, entry := range argList.Children {
		if entry == lit {
			return argumentContext{
				owner:   owner,
				argList: argList,
				arg:     entry,
			}, true
		}
		if entry.Kind == dartast.KindNamedArgument &&
			len(entry.Children) == 1 && entry.Children[0] == lit {
			return argumentContext{
				owner:   owner,
				argList: argList,
				arg:     entry,
				label:   entry.Label,
			}, true
		}
	}

	return argumentContext{}, false
}

// usedAsKeyLike reports identifier-like uses of a literal: a map-entry key
// or a bracket-index subscript.
func usedAsKeyLike(lit *dartast.Node) bool {
	p := lit.Parent()
	if p == nil {
		return false
	}
	switch p.Kind {
	case dartast.KindMapEntry:
		return len(p.Children) > 0 && p.Children[0] == lit
	case dartast.KindIndexExpression:
		// Children are [target, subscript].
		return len(p.Children) >= 2 && p.Children[len(p.Children)-1] == lit
	}
	return false
}
