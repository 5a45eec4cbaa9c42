// Package lintrules defines the canonical rule codes enforced by flutterlint.
// Each rule represents a distinct verification invariant of the analysis pipeline.
//
// Rule numbering scheme:
//
//	HCS000–HCS099  Hardcoded user-facing text rules
//	HCA100–HCA199  Hardcoded asset reference rules
package lintrules

import "fmt"

// Rule represents a flutterlint rule code (HCS/HCA series).
type Rule int

const (
	ruleInvalid Rule = iota

	HCS001WidgetString
	HCA101AssetPath
)

// ID returns the stable machine identifier of the rule. These values are part
// of the external interface (suppress markers, JSON reports, fix registration)
// and must never change.
func (r Rule) ID() string {
	switch r {
	case HCS001WidgetString:
		return "hardcoded_strings"
	case HCA101AssetPath:
		return "hardcoded_assets"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// String returns the canonical code and short name of the rule.
// Example: "HCS001: WidgetString"
func (r Rule) String() string {
	switch r {
	case HCS001WidgetString:
		return "HCS001: WidgetString"
	case HCA101AssetPath:
		return "HCA101: AssetPath"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Description returns the problem message shown for a violation of the rule.
func (r Rule) Description() string {
	switch r {
	case HCS001WidgetString:
		return "Avoid using hardcoded strings in the code."
	case HCA101AssetPath:
		return "Avoid using hardcoded asset paths in the code."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

// Correction returns the recommended remediation for the rule.
func (r Rule) Correction() string {
	switch r {
	case HCS001WidgetString:
		return "Route user-facing text through localization or a named constant."
	case HCA101AssetPath:
		return "Use the generated asset classes instead of raw asset paths."
	default:
		return ""
	}
}

// Canonical constructors — for readability and stable call sites.

func WidgetString() Rule { return HCS001WidgetString }
func AssetPath() Rule    { return HCA101AssetPath }
