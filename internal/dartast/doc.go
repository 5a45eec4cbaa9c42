// Package dartast holds the read-only model of the tree supplied by the Dart
// front end.
//
// The front end (an external collaborator running inside the Dart analyzer)
// parses and type-resolves each source file, collapses its AST into the node
// kinds the rules distinguish, and emits the result as a JSON dump document
// together with the original source text and a type table. This package
// decodes such documents, links parent pointers and exposes navigation
// helpers. It never mutates a tree after linking and performs no I/O beyond
// decoding the bytes it is handed.
package dartast
