package vocabulary

import "strings"

// Namespace is one prefix declaration
type Namespace struct {
	Prefix string `json:"prefix" yaml:"prefix"`
	URI    string `json:"uri" yaml:"uri"`
}

// Namespaces is an ordered prefix → URI mapping. The zero value is empty and
// ready to use. It is not safe for concurrent mutation.
type Namespaces struct {
	entries []Namespace
	index   map[string]int
}

// Set declares prefix. Redeclaring a prefix replaces its URI but keeps the
// position of the first declaration.
func (n *Namespaces) Set(prefix, uri string) {
	if n.index == nil {
		n.index = make(map[string]int)
	}
	if i, ok := n.index[prefix]; ok {
		n.entries[i].URI = uri
		return
	}
	n.index[prefix] = len(n.entries)
	n.entries = append(n.entries, Namespace{Prefix: prefix, URI: uri})
}

// Get returns the URI declared for prefix.
func (n *Namespaces) Get(prefix string) (string, bool) {
	if n == nil {
		return "", false
	}
	i, ok := n.index[prefix]
	if !ok {
		return "", false
	}
	return n.entries[i].URI, true
}

// Len returns the number of declared prefixes.
func (n *Namespaces) Len() int {
	if n == nil {
		return 0
	}
	return len(n.entries)
}

// All returns a copy of the declarations in declaration order.
func (n *Namespaces) All() []Namespace {
	if n == nil {
		return nil
	}
	out := make([]Namespace, len(n.entries))
	copy(out, n.entries)
	return out
}

// Map returns the declarations as a plain map.
func (n *Namespaces) Map() map[string]string {
	out := make(map[string]string, n.Len())
	for _, ns := range n.All() {
		out[ns.Prefix] = ns.URI
	}
	return out
}

// Expand converts a compact "prefix:local" term into a full IRI using the
// declared prefixes. Absolute IRIs are returned unchanged with ok=true.
// Terms with an undeclared prefix, or without a prefix, are returned
// unchanged with ok=false.
func (n *Namespaces) Expand(term string) (string, bool) {
	if IsAbsoluteIRI(term) {
		return term, true
	}
	prefix, local, ok := SplitTerm(term)
	if !ok {
		return term, false
	}
	uri, ok := n.Get(prefix)
	if !ok {
		return term, false
	}
	return uri + local, true
}

// SplitTerm splits a compact term at its first colon.
// ok is false when the term carries no prefix separator.
func SplitTerm(term string) (prefix, local string, ok bool) {
	i := strings.IndexByte(term, ':')
	if i < 0 {
		return "", term, false
	}
	return term[:i], term[i+1:], true
}

// IsAbsoluteIRI reports whether term is already a full IRI ("scheme://...").
func IsAbsoluteIRI(term string) bool {
	_, local, ok := SplitTerm(term)
	return ok && strings.HasPrefix(local, "//")
}
