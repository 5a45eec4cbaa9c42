package rules

import (
	"strings"

	"github.com/quangtuyen1993/hardcoded-strings/internal/source"
)

// buildRewrite synthesizes the replacement call text from the converted
// symbol expression, the handler suffix and the verbatim texts of the
// remaining arguments.
func buildRewrite(symbolExpr string, remainingArgs []string, suffix string) string {
	if len(remainingArgs) == 0 {
		return symbolExpr + "." + suffix + "()"
	}
	return symbolExpr + "." + suffix + "(" + strings.Join(remainingArgs, ", ") + ")"
}

// remainingArgsText renders every top-level argument of the owning call
// except the matched asset-path entry, verbatim from the source. Named
// arguments keep their "name: expr" form because the slice covers the whole
// entry.
func remainingArgsText(file *source.File, actx argumentContext) []string {
	out := make([]string, 0, len(actx.argList.Children))
	for _, entry := range actx.argList.Children {
		if entry == actx.arg {
			continue
		}
		text := file.Slice(entry.Span)
		if text == "" {
			continue
		}
		out = append(out, text)
	}
	return out
}
