// Package vocabulary provides RDF vocabulary namespaces and prefixed term handling.
//
// Metadata documents write semantic terms in compact form, "prefix:localname",
// and declare the prefixes they use as XML namespace declarations on the
// document root:
//
//	<type xmlns:sioc="http://rdfs.org/sioc/ns#" typeof="sioc:Post">
//
// The loader keeps terms in that compact form. Namespaces records the
// declarations of one document in declaration order, and Expand turns a
// compact term into a full IRI for consumers that need one (RDF export,
// JSON-LD contexts):
//
//	var ns vocabulary.Namespaces
//	ns.Set("sioc", vocabulary.SIOCNamespace)
//	iri, ok := ns.Expand("sioc:Post") // "http://rdfs.org/sioc/ns#Post", true
//
// # Well-known prefixes
//
// Registry maps commonly used prefixes to their namespace IRIs. It is used as
// a fallback when a term uses a prefix the document did not declare:
//
//	reg := vocabulary.NewStandardRegistry()
//	iri, ok := reg.Resolve("dcterms:title", &ns)
//
// Registries are plain values, there is no package-level registry. Callers
// that need extra prefixes pass WithPrefix options or call Register.
//
// No validation of terms is performed: a term whose prefix is unknown is
// returned unchanged with ok=false.
package vocabulary
