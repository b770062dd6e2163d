package metadata

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pebsconsulting/createphp/entity"
	"github.com/pebsconsulting/createphp/errors"
	"github.com/pebsconsulting/createphp/metric"
)

// Driver loads the RDF type descriptor of a class
type Driver interface {
	// LoadTypeForClass returns the descriptor for className, or nil when no
	// metadata exists for the class.
	LoadTypeForClass(className string, mapper entity.Mapper, factory entity.TypeFactory) (*entity.Type, error)
}

// XMLDriver loads type descriptors from XML documents, one per class:
//
//	<type xmlns:sioc="http://rdfs.org/sioc/ns#"
//	      xmlns:dcterms="http://purl.org/dc/terms/"
//	      xmlns:skos="http://www.w3.org/2004/02/skos/core#"
//	      typeof="sioc:Post">
//	    <config key="my" value="value"/>
//	    <children>
//	        <property property="dcterms:title" identifier="title" tag-name="h2"/>
//	        <collection rel="skos:related" identifier="tags" tag-name="ul">
//	            <config key="my" value="value"/>
//	            <attribute key="class" value="tags"/>
//	        </collection>
//	        <property property="sioc:content" identifier="content"/>
//	    </children>
//	</type>
//
// The document for class App\Entity\Article is App.Entity.Article.xml; the
// first configured directory holding it wins.
type XMLDriver struct {
	locator *Locator
	logger  *slog.Logger
	metrics *metric.Metrics
}

var _ Driver = (*XMLDriver)(nil)

// NewXMLDriver creates a driver searching directories in list order
func NewXMLDriver(directories []string, opts ...Option) *XMLDriver {
	o := applyOptions(opts...)
	return &XMLDriver{
		locator: NewLocator(directories, opts...),
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// Locator returns the locator used to find documents
func (d *XMLDriver) Locator() *Locator {
	return d.locator
}

// LoadTypeForClass returns the type descriptor for className, or nil and no
// error when none of the directories holds a document for it. mapper is
// handed to the type as is; factory is given to every collection.
//
// A field element without an identifier fails the whole load with an error
// wrapping errors.ErrMalformedMetadata. XML syntax errors are returned with
// the underlying *xml.SyntaxError in their chain.
func (d *XMLDriver) LoadTypeForClass(
	className string, mapper entity.Mapper, factory entity.TypeFactory,
) (*entity.Type, error) {
	start := time.Now()

	root, err := d.locator.Locate(className)
	if err != nil {
		d.recordResolution(metric.ResultError, start)
		return nil, err
	}
	if root == nil {
		d.recordResolution(metric.ResultNotFound, start)
		return nil, nil
	}

	typ, err := d.buildType(root, mapper, factory)
	if err != nil {
		d.recordResolution(metric.ResultError, start)
		return nil, errors.Wrap(err, "XMLDriver", "LoadTypeForClass", fmt.Sprintf("build type %s", className))
	}

	d.recordResolution(metric.ResultFound, start)
	d.logger.Debug("loaded rdf type",
		"class", className,
		"fields", typ.Len(),
		"vocabularies", typ.Vocabularies().Len())
	return typ, nil
}

func (d *XMLDriver) buildType(root *Node, mapper entity.Mapper, factory entity.TypeFactory) (*entity.Type, error) {
	typ := entity.NewType(mapper, ExtractConfig(root))

	for _, ns := range root.DocumentNamespaces() {
		typ.SetVocabulary(ns.Prefix, ns.URI)
	}
	if rdfType, ok := root.Attr("typeof"); ok {
		typ.SetRdfType(rdfType)
	}

	children := root.Child("children")
	if children == nil {
		return typ, nil
	}

	for _, child := range children.Children {
		var f entity.Field
		switch child.Name {
		case entity.KindProperty.String():
			id, err := fieldIdentifier(child)
			if err != nil {
				return nil, err
			}
			f = entity.NewProperty(id, ExtractConfig(child))
		case entity.KindCollection.String():
			id, err := fieldIdentifier(child)
			if err != nil {
				return nil, err
			}
			f = entity.NewCollection(id, factory, ExtractConfig(child))
		default:
			d.logger.Debug("ignoring unknown child element", "element", child.Name, "line", child.Line)
			if d.metrics != nil {
				d.metrics.RecordSkippedChild()
			}
			continue
		}

		attributes, tagName := BuildAttributes(child, f.Kind())
		f.SetAttributes(attributes)
		if tagName != "" {
			f.SetTagName(tagName)
		}

		typ.SetField(f)
		if d.metrics != nil {
			d.metrics.RecordField(f.Kind().String())
		}
	}

	return typ, nil
}

func fieldIdentifier(node *Node) (string, error) {
	id, _ := node.Attr("identifier")
	if id == "" {
		return "", errors.WrapInvalid(
			fmt.Errorf("<%s> on line %d has no identifier: %w", node.Name, node.Line, errors.ErrMalformedMetadata),
			"XMLDriver", "buildType", "read field identifier")
	}
	return id, nil
}

func (d *XMLDriver) recordResolution(result string, start time.Time) {
	if d.metrics != nil {
		d.metrics.RecordResolution(result, time.Since(start))
	}
}
