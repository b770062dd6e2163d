// Package errors classifies failures raised while loading RDF metadata.
//
// Errors are classified as transient, invalid or fatal. Components wrap the
// errors they return with a consistent "component.method: action failed"
// prefix so that logs identify where a failure originated:
//
//	if id == "" {
//	    return errors.WrapInvalid(errors.ErrMalformedMetadata,
//	        "XMLDriver", "LoadTypeForClass", "read field identifier")
//	}
//
// Callers test for a condition with the sentinel values and the
// classification helpers:
//
//	if errors.Is(err, errors.ErrMalformedMetadata) { ... }
//	if errors.IsInvalid(err) { ... }
//
// A missing metadata document is not an error for the driver (it returns a
// nil type); ErrTypeNotFound is only raised by the type factory, whose callers
// need a type to continue.
package errors
