package rules

import (
	"testing"

	"github.com/quangtuyen1993/hardcoded-strings/internal/dartast"
	"github.com/quangtuyen1993/hardcoded-strings/internal/diag"
	"github.com/quangtuyen1993/hardcoded-strings/internal/source"
)

// flutterTypes is the type table shared by rule tests: a couple of concrete
// widgets, a two-step custom hierarchy and one non-widget class.
var flutterTypes = dartast.TypeTable{
	"Text":            {Name: "Text", Super: "StatelessWidget"},
	"Image":           {Name: "Image", Super: "StatefulWidget"},
	"SvgPicture":      {Name: "SvgPicture", Super: "StatefulWidget"},
	"AssetImage":      {Name: "AssetImage", Super: "ImageProvider"},
	"ImageProvider":   {Name: "ImageProvider"},
	"StatelessWidget": {Name: "StatelessWidget", Super: "Widget"},
	"StatefulWidget":  {Name: "StatefulWidget", Super: "Widget"},
	"Widget":          {Name: "Widget"},
	"CustomCard":      {Name: "CustomCard", Super: "Card"},
	"Card":            {Name: "Card", Super: "StatelessWidget"},
	"HttpClient":      {Name: "HttpClient", Super: "Object"},
	"Object":          {Name: "Object"},
}

func testContext(t *testing.T, text string) (*Context, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	id := fs.AddVirtual("lib/case.dart", []byte(text))
	bag := diag.NewBag(64)

	return &Context{
		File:     fs.Get(id),
		Types:    flutterTypes,
		Reporter: diag.BagReporter{Bag: bag},
	}, bag
}

func strLit(start, end uint32, value string) *dartast.Node {
	return &dartast.Node{
		Kind:     dartast.KindStringLiteral,
		Span:     source.Span{Start: start, End: end},
		Value:    value,
		HasValue: true,
	}
}

func ctorCall(class, ctor, typeRef string, start, end uint32, args ...*dartast.Node) *dartast.Node {
	argStart, argEnd := start, end
	if len(args) > 0 {
		argStart = args[0].Span.Start
		argEnd = args[len(args)-1].Span.End
	}
	call := &dartast.Node{
		Kind:    dartast.KindConstructorCall,
		Span:    source.Span{Start: start, End: end},
		Class:   class,
		Ctor:    ctor,
		TypeRef: typeRef,
		Children: []*dartast.Node{{
			Kind:     dartast.KindArgumentList,
			Span:     source.Span{Start: argStart, End: argEnd},
			Children: args,
		}},
	}
	return call
}

func namedArg(label string, start, end uint32, value *dartast.Node) *dartast.Node {
	return &dartast.Node{
		Kind:     dartast.KindNamedArgument,
		Span:     source.Span{Start: start, End: end},
		Label:    label,
		Children: []*dartast.Node{value},
	}
}

func unitOf(children ...*dartast.Node) *dartast.Node {
	var end uint32
	if len(children) > 0 {
		end = children[len(children)-1].Span.End
	}
	unit := &dartast.Node{
		Kind:     dartast.KindCompilationUnit,
		Span:     source.Span{End: end},
		Children: children,
	}
	dartast.Link(unit)
	return unit
}
