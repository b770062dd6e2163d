package vocabulary

// Standard namespace IRIs
//
// References:
// - RDF: https://www.w3.org/TR/rdf11-concepts/
// - SKOS: https://www.w3.org/TR/skos-reference/
// - Dublin Core: https://www.dublincore.org/specifications/dublin-core/dcmi-terms/
// - Schema.org: https://schema.org/
// - SIOC: http://rdfs.org/sioc/spec/
// - PROV-O: https://www.w3.org/TR/prov-o/
const (
	RDFNamespace     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace    = "http://www.w3.org/2000/01/rdf-schema#"
	OWLNamespace     = "http://www.w3.org/2002/07/owl#"
	SKOSNamespace    = "http://www.w3.org/2004/02/skos/core#"
	DCTermsNamespace = "http://purl.org/dc/terms/"
	// DCNamespace is the legacy Dublin Core elements set (dc:title), distinct from dcterms.
	DCNamespace     = "http://purl.org/dc/elements/1.1/"
	SchemaNamespace = "http://schema.org/"
	SIOCNamespace   = "http://rdfs.org/sioc/ns#"
	FOAFNamespace   = "http://xmlns.com/foaf/0.1/"
	PROVNamespace   = "http://www.w3.org/ns/prov#"
)

// standardPrefixes maps the conventional prefix of each standard namespace.
var standardPrefixes = map[string]string{
	"rdf":     RDFNamespace,
	"rdfs":    RDFSNamespace,
	"owl":     OWLNamespace,
	"skos":    SKOSNamespace,
	"dcterms": DCTermsNamespace,
	"dc":      DCNamespace,
	"schema":  SchemaNamespace,
	"sioc":    SIOCNamespace,
	"foaf":    FOAFNamespace,
	"prov":    PROVNamespace,
}

// Frequently used terms, in full IRI form
const (
	// RDFType is the predicate rendered for a type's root semantic type (typeof)
	RDFType = RDFNamespace + "type"

	// RDFSLabel provides a human-readable name for a resource
	RDFSLabel = RDFSNamespace + "label"

	// DCTermsTitle provides the name given to the resource
	DCTermsTitle = DCTermsNamespace + "title"

	// SIOCPost is the class of articles and messages
	SIOCPost = SIOCNamespace + "Post"

	// SIOCContent is the textual content of an item
	SIOCContent = SIOCNamespace + "content"

	// SKOSRelated links associated resources, typically used for tag collections
	SKOSRelated = SKOSNamespace + "related"
)
