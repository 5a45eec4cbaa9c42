// Package rules implements the flutterlint rule engine: the classification
// and matching logic deciding, per string-literal node of a front-end tree,
// whether it is a widget-facing hardcoded string or a hardcoded asset path.
//
// Every predicate here is total and side-effect free over the immutable tree
// snapshot of one analysis pass. Unresolvable inputs (missing line info,
// unresolved static type, malformed asset path) degrade to "rule does not
// match"; a single unanalyzable node never stops the pass.
//
// Core components:
//
//   - Suppress scanner
//     Matches the literal's line and the preceding one against the known
//     suppress comment patterns.
//
//   - Technical-string classifier
//     Excludes URLs, colors, identifiers, paths and other non-display
//     values from the hardcoded-strings rule.
//
//   - Widget classifier
//     Walks the constructed type's supertype chain against the closed set
//     of widget base classes, with a hard iteration cap.
//
//   - Argument context resolver
//     Decides whether a literal is a direct (non-nested-callback) argument
//     of a constructor call and which named parameter it binds to.
//
//   - Asset pipeline
//     Path validation, handler registry, path-to-symbol conversion and the
//     textual rewrite synthesizer feeding the automated fix.
//
// The two entry points are the HardcodedStrings and HardcodedAssets rules,
// driven by RunFile over every string literal of a unit.
package rules
