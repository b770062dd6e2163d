package entity

import "maps"

// FieldKind discriminates the field variants
type FieldKind int

const (
	// KindProperty is a scalar field
	KindProperty FieldKind = iota
	// KindCollection is a multi-valued, relational field
	KindCollection
)

// String returns the element name used for the kind in metadata documents
func (k FieldKind) String() string {
	switch k {
	case KindProperty:
		return "property"
	case KindCollection:
		return "collection"
	default:
		return "unknown"
	}
}

// TermKey returns the attribute carrying the field's semantic term:
// "property" for properties, "rel" for collections.
func (k FieldKind) TermKey() string {
	if k == KindCollection {
		return "rel"
	}
	return "property"
}

// Attributes is the markup attribute bundle of a field
type Attributes map[string]string

// Clone returns a copy of the bundle. Cloning nil yields nil.
func (a Attributes) Clone() Attributes {
	return maps.Clone(a)
}

// Field is the contract shared by Property and Collection
type Field interface {
	Identifier() string
	Kind() FieldKind

	// Term returns the semantic term, i.e. the bundle entry under Kind().TermKey()
	Term() string

	Attributes() Attributes
	SetAttributes(attributes Attributes)

	// TagName returns the tag name override, empty when the renderer default applies
	TagName() string
	SetTagName(tagName string)

	Config() map[string]string
}

type field struct {
	identifier string
	attributes Attributes
	tagName    string
	config     map[string]string
}

func newField(identifier string, config map[string]string) field {
	if config == nil {
		config = map[string]string{}
	}
	return field{
		identifier: identifier,
		attributes: Attributes{},
		config:     config,
	}
}

func (f *field) Identifier() string {
	return f.identifier
}

func (f *field) Attributes() Attributes {
	return f.attributes.Clone()
}

// SetAttributes replaces the attribute bundle
func (f *field) SetAttributes(attributes Attributes) {
	f.attributes = attributes.Clone()
	if f.attributes == nil {
		f.attributes = Attributes{}
	}
}

func (f *field) TagName() string {
	return f.tagName
}

func (f *field) SetTagName(tagName string) {
	f.tagName = tagName
}

func (f *field) Config() map[string]string {
	return maps.Clone(f.config)
}

// Property is a scalar field
type Property struct {
	field
}

// NewProperty creates a property descriptor. A nil config is treated as empty.
func NewProperty(identifier string, config map[string]string) *Property {
	return &Property{field: newField(identifier, config)}
}

// Kind returns KindProperty
func (p *Property) Kind() FieldKind {
	return KindProperty
}

// Term returns the "property" attribute
func (p *Property) Term() string {
	return p.attributes[KindProperty.TermKey()]
}
