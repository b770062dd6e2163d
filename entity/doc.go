// Package entity defines the descriptors produced by the metadata loader.
//
// A Type describes how one class maps onto RDF: the vocabulary prefixes its
// document declares, an optional root semantic type (typeof), free-form
// configuration, and one Field per mapped class member. Fields come in two
// kinds:
//
//   - Property: a scalar field, annotated with the "property" attribute
//   - Collection: a multi-valued field, annotated with the "rel" attribute,
//     which resolves its related type through a TypeFactory
//
// Each field carries the attribute bundle that the rendering layer writes
// onto its element, an optional tag name override and its own configuration.
//
// Descriptors are built once by a loader and are meant to be read afterwards;
// the accessors return copies of the underlying maps.
package entity
