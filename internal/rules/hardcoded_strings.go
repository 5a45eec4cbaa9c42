package rules

import (
	"github.com/quangtuyen1993/hardcoded-strings/internal/dartast"
	"github.com/quangtuyen1993/hardcoded-strings/internal/diag"
	"github.com/quangtuyen1993/hardcoded-strings/internal/lintrules"
)

// Parameter names whose values are identifiers, asset references or
// layout-enum strings rather than display text. A literal bound to one of
// these never counts as a hardcoded user-facing string.
var acceptableParameters = map[string]struct{}{
	"semanticLabel":      {},
	"semanticsLabel":     {},
	"semanticsHint":      {},
	"restorationId":      {},
	"restorationScopeId": {},
	"heroTag":            {},
	"debugLabel":         {},
	"debugName":          {},
	"fontFamily":         {},
	"fontPackage":        {},
	"package":            {},
	"name":               {},
	"asset":              {},
	"assetName":          {},
	"locale":             {},
	"languageCode":       {},
	"countryCode":        {},
	"routeName":          {},
	"mainAxisAlignment":  {},
	"crossAxisAlignment": {},
}

// minReportableLength excludes trivial literals: separators, single glyphs,
// two-letter codes.
const minReportableLength = 3

// HardcodedStrings flags natural-language string literals passed directly to
// widget constructors instead of going through localization or constants.
type HardcodedStrings struct{}

func NewHardcodedStrings() *HardcodedStrings {
	return &HardcodedStrings{}
}

func (r *HardcodedStrings) Code() lintrules.Rule {
	return lintrules.WidgetString()
}

// CheckLiteral applies the full exclusion chain and reports the literal when
// nothing excuses it. Every step degrades toward "no match": unresolved
// inputs never abort the pass.
func (r *HardcodedStrings) CheckLiteral(ctx *Context, lit *dartast.Node) {
	if lit == nil || lit.Kind != dartast.KindStringLiteral || !lit.HasValue {
		return
	}
	if lit.InsideDirective() {
		return
	}
	if ctx.Suppressed(lit) {
		return
	}

	actx, ok := directArgumentContext(lit)
	if !ok {
		return
	}
	if !isWidgetType(ctx.Types, actx.owner.TypeRef) {
		return
	}

	if len(lit.Value) < minReportableLength {
		return
	}
	if usedAsKeyLike(lit) {
		return
	}
	if actx.label != "" {
		if _, allowed := acceptableParameters[actx.label]; allowed {
			return
		}
	}
	if looksTechnical(lit.Value) {
		return
	}

	ctx.report(diag.Diagnostic{
		Severity:   diag.SevWarning,
		Rule:       r.Code(),
		Message:    r.Code().Description(),
		Correction: r.Code().Correction(),
		Primary:    lit.Span,
	})
}
