package dartast

// Type is the resolved static type of a constructed expression. Super names
// the single supertype forming a linear chain; it is empty at the chain end.
// The host type system guarantees acyclic chains, the consumers of this table
// do not rely on that guarantee.
type Type struct {
	Name  string `json:"name"`
	Super string `json:"super,omitempty"`
}

// TypeTable maps type keys to resolved types. Keys are the TypeRef values
// carried by constructor-call nodes.
type TypeTable map[string]Type

// Lookup resolves a type key. The second result is false for unknown keys,
// including the empty key left by unresolved constructor calls.
func (t TypeTable) Lookup(key string) (Type, bool) {
	if key == "" {
		return Type{}, false
	}
	typ, ok := t[key]
	return typ, ok
}
