// Package createphp resolves declarative RDF mapping metadata for classes.
//
// Each mapped class is described by one XML document, named after the class
// with namespace separators turned into dots (Blog\Article becomes
// Blog.Article.xml), looked up in an ordered list of directories:
//
//	<type xmlns:sioc="http://rdfs.org/sioc/ns#"
//	      xmlns:dcterms="http://purl.org/dc/terms/"
//	      typeof="sioc:Post">
//	    <config key="my" value="value"/>
//	    <children>
//	        <property property="dcterms:title" identifier="title" tag-name="h2"/>
//	        <collection rel="dcterms:hasPart" identifier="comments"/>
//	    </children>
//	</type>
//
// The packages are layered:
//
//   - metadata: locates and parses documents and builds descriptors (XMLDriver)
//   - entity: the descriptors (Type, Property, Collection)
//   - vocabulary: ordered prefix maps and well-known namespaces
//   - typefactory: cached resolution by class name, shared with collections
//   - config: layered JSON/YAML configuration with environment overrides
//   - metric: Prometheus metrics
//   - errors: classified error wrapping
//
// The rdfmeta command in cmd/rdfmeta exposes resolution on the command line.
package createphp
