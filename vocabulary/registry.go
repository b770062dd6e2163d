package vocabulary

import (
	"sort"
	"sync"
)

// Registry maps well-known prefixes to namespace IRIs. It is safe for
// concurrent use.
type Registry struct {
	mu       sync.RWMutex
	prefixes map[string]string
}

// Option is a functional option for configuring a Registry.
type Option func(*Registry)

// WithPrefix registers an additional prefix, overriding a standard one with
// the same name.
func WithPrefix(prefix, uri string) Option {
	return func(r *Registry) {
		r.prefixes[prefix] = uri
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{prefixes: make(map[string]string)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewStandardRegistry creates a registry pre-populated with the standard
// prefixes (rdf, rdfs, owl, skos, dcterms, dc, schema, sioc, foaf, prov).
func NewStandardRegistry(opts ...Option) *Registry {
	r := &Registry{prefixes: make(map[string]string, len(standardPrefixes)+len(opts))}
	for prefix, uri := range standardPrefixes {
		r.prefixes[prefix] = uri
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds or replaces a prefix.
func (r *Registry) Register(prefix, uri string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prefixes[prefix] = uri
}

// Lookup returns the namespace IRI registered for prefix.
func (r *Registry) Lookup(prefix string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	uri, ok := r.prefixes[prefix]
	return uri, ok
}

// Prefixes returns the registered prefixes in sorted order.
func (r *Registry) Prefixes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefixes := make([]string, 0, len(r.prefixes))
	for prefix := range r.prefixes {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	return prefixes
}

// Resolve expands term, preferring the document's own declarations and
// falling back to the registry for undeclared prefixes. declared may be nil.
func (r *Registry) Resolve(term string, declared *Namespaces) (string, bool) {
	if iri, ok := declared.Expand(term); ok {
		return iri, true
	}
	prefix, local, ok := SplitTerm(term)
	if !ok {
		return term, false
	}
	uri, ok := r.Lookup(prefix)
	if !ok {
		return term, false
	}
	return uri + local, true
}
