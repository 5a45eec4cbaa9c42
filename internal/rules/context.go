package rules

import (
	"github.com/quangtuyen1993/hardcoded-strings/internal/dartast"
	"github.com/quangtuyen1993/hardcoded-strings/internal/diag"
	"github.com/quangtuyen1993/hardcoded-strings/internal/lintrules"
	"github.com/quangtuyen1993/hardcoded-strings/internal/source"
)

// Context carries everything a rule may consult while checking one file:
// the file content with its line index, the resolved type table of the dump
// and the diagnostic sink. A Context lives for exactly one analysis pass and
// holds no mutable state of its own.
type Context struct {
	File     *source.File
	Types    dartast.TypeTable
	Reporter diag.Reporter

	// Stop, when set, is polled during traversal; a true result abandons
	// the remaining nodes of the pass.
	Stop func() bool
}

func (c *Context) report(d diag.Diagnostic) {
	if c.Reporter == nil {
		return
	}
	c.Reporter.Report(d)
}

// Rule checks string-literal nodes and reports violations through the
// context. Implementations are pure: same tree snapshot, same verdict.
type Rule interface {
	Code() lintrules.Rule
	CheckLiteral(ctx *Context, lit *dartast.Node)
}

// Default returns the rule set in its canonical order.
func Default() []Rule {
	return []Rule{
		NewHardcodedStrings(),
		NewHardcodedAssets(),
	}
}

// RunFile feeds every string-literal node of the unit to every rule.
func RunFile(ctx *Context, unit *dartast.Node, ruleset []Rule) {
	if ctx == nil || unit == nil {
		return
	}
	dartast.Walk(unit, func(n *dartast.Node) bool {
		if ctx.Stop != nil && ctx.Stop() {
			return false
		}
		if n.Kind != dartast.KindStringLiteral {
			return true
		}
		for _, r := range ruleset {
			r.CheckLiteral(ctx, n)
		}
		return true
	})
}
