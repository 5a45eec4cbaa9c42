package rules

import (
	"strings"

	"github.com/quangtuyen1993/hardcoded-strings/internal/dartast"
	"github.com/quangtuyen1993/hardcoded-strings/internal/diag"
	"github.com/quangtuyen1993/hardcoded-strings/internal/lintrules"
)

// HardcodedAssets flags raw asset paths passed to asset-consuming
// constructors and, when the path converts cleanly, offers a rewrite into
// the generated asset-reference API.
type HardcodedAssets struct{}

func NewHardcodedAssets() *HardcodedAssets {
	return &HardcodedAssets{}
}

func (r *HardcodedAssets) Code() lintrules.Rule {
	return lintrules.AssetPath()
}

// CheckLiteral reports at the owning constructor call, not the literal. A
// malformed path still yields the detection finding, just without the fix.
func (r *HardcodedAssets) CheckLiteral(ctx *Context, lit *dartast.Node) {
	if lit == nil || lit.Kind != dartast.KindStringLiteral || !lit.HasValue {
		return
	}
	if lit.InsideDirective() {
		return
	}
	if ctx.Suppressed(lit) {
		return
	}

	value := strings.TrimSpace(lit.Value)
	if !isAssetPath(value) {
		return
	}

	actx, ok := directArgumentContext(lit)
	if !ok {
		return
	}
	handler, ok := handlerFor(actx.owner.Class)
	if !ok || !handler.canHandle(actx.owner.Ctor) {
		return
	}

	d := diag.Diagnostic{
		Severity:   diag.SevWarning,
		Rule:       r.Code(),
		Message:    r.Code().Description(),
		Correction: r.Code().Correction(),
		Primary:    actx.owner.Span,
	}

	if symbol, converted := convertPathToSymbol(value); converted && ctx.File != nil {
		oldText := ctx.File.Slice(actx.owner.Span)
		if oldText != "" {
			newText := buildRewrite(symbol, remainingArgsText(ctx.File, actx), handler.suffix(value))
			d = d.WithFix("Replace with generated asset reference", diag.TextEdit{
				Span:    actx.owner.Span,
				NewText: newText,
				OldText: oldText,
			})
		}
	}

	ctx.report(d)
}
