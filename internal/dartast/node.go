package dartast

import (
	"github.com/quangtuyen1993/hardcoded-strings/internal/source"
)

// Node is a single node of the externally-parsed tree. The front end owns the
// tree; this package only reads it. Nodes are immutable after Link.
type Node struct {
	Kind Kind
	Span source.Span

	// Value is the resolved constant string value of a string literal.
	// HasValue is false when the front end could not resolve one
	// (interpolation, const expressions it does not evaluate).
	Value    string
	HasValue bool

	// Class and Ctor describe a constructor call: Class is the constructed
	// class name, Ctor the optional named-constructor subname
	// ("Image.asset" → Class "Image", Ctor "asset").
	Class string
	Ctor  string

	// Label is the parameter name of a named argument.
	Label string

	// TypeRef keys the static type of a constructor call in the document's
	// type table. Empty when the front end failed to resolve the type.
	TypeRef string

	Children []*Node

	parent *Node
}

// Parent returns the enclosing node, nil at the compilation unit.
func (n *Node) Parent() *Node {
	return n.parent
}

// ConstructorName renders the full constructor name of a constructor-call
// node, e.g. "Image.asset" or "Text".
func (n *Node) ConstructorName() string {
	if n.Ctor == "" {
		return n.Class
	}
	return n.Class + "." + n.Ctor
}

// InsideDirective reports whether the node is located within an import,
// export or part directive.
func (n *Node) InsideDirective() bool {
	for cur := n.parent; cur != nil; cur = cur.parent {
		if cur.Kind == KindDirective {
			return true
		}
	}
	return false
}

// Link wires parent pointers throughout the tree rooted at n. The decoder
// calls it once per document; tests constructing trees by hand call it too.
func Link(n *Node) {
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		child.parent = n
		Link(child)
	}
}

// Walk visits the tree in preorder. The visitor returns false to prune the
// subtree below the current node.
func Walk(n *Node, visit func(*Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, child := range n.Children {
		Walk(child, visit)
	}
}
