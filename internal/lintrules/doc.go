// Package lintrules is the single source of truth for flutterlint rule codes.
//
// Each rule in flutterlint represents a verifiable invariant of Flutter UI
// code hygiene. The HCS/HCA series provides a stable numeric and textual
// identity for every rule so that violations can be reported, filtered and
// suppressed consistently across analysis passes and report formats.
//
// # Structure
//
// Rule codes follow the format “HCS<NNN>: <Name>” / “HCA<NNN>: <Name>” and are
// grouped by functional area:
//
//	HCS000–HCS099  Hardcoded user-facing text rules
//	HCA100–HCA199  Hardcoded asset reference rules
//
// Example:
//
//	lintrules.HCS001WidgetString.ID()          → "hardcoded_strings"
//	lintrules.HCS001WidgetString.String()      → "HCS001: WidgetString"
//	lintrules.HCS001WidgetString.Description() → "Avoid using hardcoded strings in the code."
//
// # Notes
//
//   - Rule identifiers are stable; never renumber existing codes.
//   - ID() values appear in suppress comments inside analyzed Dart sources and
//     therefore form a compatibility contract with user code.
package lintrules
