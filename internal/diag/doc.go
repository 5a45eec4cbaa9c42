// Package diag defines the diagnostic model shared by the rules and the
// drivers: severities, diagnostics with optional automated fixes, the
// Reporter sink contract and the capacity-bounded Bag collector.
//
// Diagnostics are immutable values. A rule creates one per match and hands it
// to a Reporter; nothing in this package persists them between runs.
package diag
