package entity

import (
	"maps"
	"sort"

	"github.com/pebsconsulting/createphp/vocabulary"
)

// Mapper binds descriptors to the storage layer of the mapped objects.
// The loader passes it through untouched.
type Mapper interface {
	// CanonicalName returns the class name under which metadata for className
	// is looked up, e.g. stripping proxy or alias names.
	CanonicalName(className string) string
}

// MapperFunc adapts a function to the Mapper interface
type MapperFunc func(className string) string

// CanonicalName calls f(className)
func (f MapperFunc) CanonicalName(className string) string {
	return f(className)
}

// TypeFactory resolves the descriptor of a class. Collections use it to
// resolve the type of their items.
type TypeFactory interface {
	GetType(className string) (*Type, error)
}

// Type is the RDF mapping of one class
type Type struct {
	mapper       Mapper
	vocabularies vocabulary.Namespaces
	rdfType      string
	hasRdfType   bool
	config       map[string]string
	fields       map[string]Field
}

// NewType creates an empty type descriptor. A nil config is treated as empty.
func NewType(mapper Mapper, config map[string]string) *Type {
	if config == nil {
		config = map[string]string{}
	}
	return &Type{
		mapper: mapper,
		config: config,
		fields: make(map[string]Field),
	}
}

// Mapper returns the mapper the type was built with
func (t *Type) Mapper() Mapper {
	return t.mapper
}

// SetVocabulary declares a prefix; redeclaring a prefix replaces its URI
func (t *Type) SetVocabulary(prefix, uri string) {
	t.vocabularies.Set(prefix, uri)
}

// Vocabulary returns the namespace URI declared for prefix
func (t *Type) Vocabulary(prefix string) (string, bool) {
	return t.vocabularies.Get(prefix)
}

// Vocabularies returns a copy of the declared prefixes in declaration order
func (t *Type) Vocabularies() *vocabulary.Namespaces {
	var ns vocabulary.Namespaces
	for _, decl := range t.vocabularies.All() {
		ns.Set(decl.Prefix, decl.URI)
	}
	return &ns
}

// SetRdfType sets the root semantic type (typeof)
func (t *Type) SetRdfType(rdfType string) {
	t.rdfType = rdfType
	t.hasRdfType = true
}

// RdfType returns the root semantic type; ok is false when none was declared
func (t *Type) RdfType() (string, bool) {
	return t.rdfType, t.hasRdfType
}

// Config returns a copy of the type-level configuration
func (t *Type) Config() map[string]string {
	return maps.Clone(t.config)
}

// SetField registers f under its identifier, replacing any field already
// registered with the same identifier.
func (t *Type) SetField(f Field) {
	t.fields[f.Identifier()] = f
}

// Field returns the field registered under identifier
func (t *Type) Field(identifier string) (Field, bool) {
	f, ok := t.fields[identifier]
	return f, ok
}

// Fields returns the fields keyed by identifier
func (t *Type) Fields() map[string]Field {
	return maps.Clone(t.fields)
}

// Identifiers returns the field identifiers in sorted order
func (t *Type) Identifiers() []string {
	ids := make([]string, 0, len(t.fields))
	for id := range t.fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of fields
func (t *Type) Len() int {
	return len(t.fields)
}
