package entity

import (
	"fmt"

	"github.com/pebsconsulting/createphp/errors"
)

// Collection is a multi-valued field whose items are instances of another
// mapped type.
type Collection struct {
	field
	factory TypeFactory
}

// NewCollection creates a collection descriptor. factory is used to resolve
// the type of the collection's items.
func NewCollection(identifier string, factory TypeFactory, config map[string]string) *Collection {
	return &Collection{
		field:   newField(identifier, config),
		factory: factory,
	}
}

// Kind returns KindCollection
func (c *Collection) Kind() FieldKind {
	return KindCollection
}

// Term returns the "rel" attribute
func (c *Collection) Term() string {
	return c.attributes[KindCollection.TermKey()]
}

// TypeFactory returns the factory the collection was built with
func (c *Collection) TypeFactory() TypeFactory {
	return c.factory
}

// RelatedType resolves the descriptor of the collection's item class.
func (c *Collection) RelatedType(className string) (*Type, error) {
	if c.factory == nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("collection %q: %w", c.identifier, errors.ErrMissingConfig),
			"Collection", "RelatedType", "resolve type factory")
	}
	return c.factory.GetType(className)
}
