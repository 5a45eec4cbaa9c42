package rules

import (
	"github.com/quangtuyen1993/hardcoded-strings/internal/dartast"
)

// maxSupertypeChain bounds the supertype walk. Chains in the host type
// system are acyclic by construction, but this engine does not control that
// invariant, so the walk refuses to follow more steps than any sane
// hierarchy has.
const maxSupertypeChain = 64

// The closed set of widget base classes. A constructed type counts as a
// widget when its supertype chain reaches any of these names.
var widgetBaseClasses = map[string]struct{}{
	"Widget":              {},
	"StatelessWidget":     {},
	"StatefulWidget":      {},
	"State":               {},
	"RenderObjectWidget":  {},
	"InheritedWidget":     {},
	"PreferredSizeWidget": {},
	"Text":                {},
	"RichText":            {},
	"AppBar":              {},
	"Scaffold":            {},
	"SnackBar":            {},
	"AlertDialog":         {},
	"Tooltip":             {},
}

// isWidgetType walks the supertype chain of the type behind key and reports
// whether it hits a known widget base class. Unresolved types and broken
// chain links yield false.
func isWidgetType(types dartast.TypeTable, key string) bool {
	cur, ok := types.Lookup(key)
	if !ok {
		return false
	}

	for i := 0; i < maxSupertypeChain; i++ {
		if _, hit := widgetBaseClasses[cur.Name]; hit {
			return true
		}
		if cur.Super == "" {
			return false
		}
		next, ok := types.Lookup(cur.Super)
		if !ok {
			return false
		}
		cur = next
	}
	return false
}
