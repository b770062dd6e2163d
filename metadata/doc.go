// Package metadata resolves the RDF mapping of a class from XML documents.
//
// Resolution runs in four steps:
//
//  1. ClassFilename maps the class name to a document name
//     (App\Entity\Article → App.Entity.Article.xml).
//  2. A Locator searches its directories in order and parses the first
//     document it finds. No document is not an error: the class is simply
//     unmapped.
//  3. ExtractConfig and BuildAttributes read the configuration entries and
//     the markup attribute bundle of each element.
//  4. XMLDriver assembles the entity.Type: vocabulary prefixes from the
//     document's xmlns declarations, the root typeof, and one entity.Property
//     or entity.Collection per child of <children>. Unknown child elements
//     are skipped.
//
// Basic usage:
//
//	driver := metadata.NewXMLDriver([]string{"config/rdf", "vendor/rdf"},
//	    metadata.WithLogger(logger))
//
//	typ, err := driver.LoadTypeForClass(`App\Entity\Article`, mapper, factory)
//	if err != nil {
//	    return err
//	}
//	if typ == nil {
//	    // no metadata: render the object without RDFa annotations
//	}
//
// The driver keeps no state between calls and performs no caching; wrap it
// in a typefactory.Factory to reuse loaded types. Drivers are safe for
// concurrent use as long as the documents are not modified while loading.
package metadata
