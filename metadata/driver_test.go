package metadata

import (
	"bytes"
	"encoding/xml"
	"log/slog"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pebsconsulting/createphp/entity"
	"github.com/pebsconsulting/createphp/errors"
	"github.com/pebsconsulting/createphp/metric"
	"github.com/pebsconsulting/createphp/vocabulary"
)

const articleDoc = `<type
    xmlns:sioc="http://rdfs.org/sioc/ns#"
    xmlns:dcterms="http://purl.org/dc/terms/"
    xmlns:skos="http://www.w3.org/2004/02/skos/core#"
    typeof="sioc:Post"
>
    <config key="my" value="value"/>
    <children>
        <property property="dcterms:title" identifier="title" tag-name="h2"/>
        <collection rel="skos:related" identifier="tags" tag-name="ul">
            <config key="my" value="value"/>
            <attribute key="class" value="tags"/>
        </collection>
    </children>
</type>`

type nameMapper struct{}

func (nameMapper) CanonicalName(className string) string { return className }

type nopFactory struct{}

func (nopFactory) GetType(string) (*entity.Type, error) { return nil, errors.ErrTypeNotFound }

func newTestDriver(t *testing.T, docs map[string]string, opts ...Option) *XMLDriver {
	t.Helper()
	fs := memfs.New()
	for path, content := range docs {
		writeDoc(t, fs, path, content)
	}
	return NewXMLDriver([]string{"/rdf"}, append([]Option{WithFilesystem(fs)}, opts...)...)
}

func TestXMLDriver_LoadTypeForClass(t *testing.T) {
	driver := newTestDriver(t, map[string]string{"/rdf/Blog.Article.xml": articleDoc})
	factory := nopFactory{}

	typ, err := driver.LoadTypeForClass(`Blog\Article`, nameMapper{}, factory)
	require.NoError(t, err)
	require.NotNil(t, typ)

	rdfType, ok := typ.RdfType()
	assert.True(t, ok)
	assert.Equal(t, "sioc:Post", rdfType)
	assert.Equal(t, map[string]string{"my": "value"}, typ.Config())
	assert.IsType(t, nameMapper{}, typ.Mapper())

	assert.Equal(t, []vocabulary.Namespace{
		{Prefix: "sioc", URI: vocabulary.SIOCNamespace},
		{Prefix: "dcterms", URI: vocabulary.DCTermsNamespace},
		{Prefix: "skos", URI: vocabulary.SKOSNamespace},
	}, typ.Vocabularies().All())

	require.Equal(t, []string{"tags", "title"}, typ.Identifiers())

	title, _ := typ.Field("title")
	require.IsType(t, &entity.Property{}, title)
	assert.Equal(t, entity.Attributes{"property": "dcterms:title"}, title.Attributes())
	assert.Equal(t, "h2", title.TagName())
	assert.Empty(t, title.Config())

	tags, _ := typ.Field("tags")
	require.IsType(t, &entity.Collection{}, tags)
	assert.Equal(t, entity.Attributes{"rel": "skos:related", "class": "tags"}, tags.Attributes())
	assert.Equal(t, "ul", tags.TagName())
	assert.Equal(t, map[string]string{"my": "value"}, tags.Config())
	assert.Equal(t, factory, tags.(*entity.Collection).TypeFactory())
}

func TestXMLDriver_NotFound(t *testing.T) {
	driver := newTestDriver(t, map[string]string{"/rdf/Blog.Article.xml": articleDoc})

	typ, err := driver.LoadTypeForClass(`Blog\Comment`, nil, nil)
	assert.NoError(t, err)
	assert.Nil(t, typ)

	empty := NewXMLDriver(nil, WithFilesystem(memfs.New()))
	typ, err = empty.LoadTypeForClass(`Blog\Article`, nil, nil)
	assert.NoError(t, err)
	assert.Nil(t, typ)
}

func TestXMLDriver_Vocabularies(t *testing.T) {
	driver := newTestDriver(t, map[string]string{
		"/rdf/Two.xml": `<type xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:foaf="http://xmlns.com/foaf/0.1/"/>`,
		"/rdf/Redeclared.xml": `<type xmlns:ex="http://example.com/first#" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <children xmlns:ex="http://example.com/second#"/>
</type>`,
		"/rdf/Default.xml": `<type xmlns="http://schema.org/"/>`,
	})

	typ, err := driver.LoadTypeForClass("Two", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"dc":   vocabulary.DCNamespace,
		"foaf": vocabulary.FOAFNamespace,
	}, typ.Vocabularies().Map())
	_, ok := typ.RdfType()
	assert.False(t, ok, "no typeof means no rdf type")
	assert.Zero(t, typ.Len())

	typ, err = driver.LoadTypeForClass("Redeclared", nil, nil)
	require.NoError(t, err)
	uri, ok := typ.Vocabulary("ex")
	require.True(t, ok)
	assert.Equal(t, "http://example.com/second#", uri)
	assert.Equal(t, 2, typ.Vocabularies().Len())

	typ, err = driver.LoadTypeForClass("Default", nil, nil)
	require.NoError(t, err)
	uri, ok = typ.Vocabulary("")
	require.True(t, ok)
	assert.Equal(t, vocabulary.SchemaNamespace, uri)
}

func TestXMLDriver_FieldRules(t *testing.T) {
	driver := newTestDriver(t, map[string]string{"/rdf/Rules.xml": `<type>
  <config key="mode" value="a"/>
  <config key="mode" value="b"/>
  <children>
    <property identifier="content"/>
    <property property="dc:title" identifier="title">
      <attribute key="property" value="overridden"/>
    </property>
    <widget identifier="future"/>
    <property property="dc:first" identifier="dup"/>
    <collection rel="dc:second" identifier="dup"/>
  </children>
</type>`})

	typ, err := driver.LoadTypeForClass("Rules", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"mode": "b"}, typ.Config())
	assert.Equal(t, []string{"content", "dup", "title"}, typ.Identifiers())

	content, _ := typ.Field("content")
	assert.Equal(t, "content", content.Term())

	title, _ := typ.Field("title")
	assert.Equal(t, "overridden", title.Attributes()["property"])
	assert.Empty(t, title.TagName())

	dup, _ := typ.Field("dup")
	assert.Equal(t, entity.KindCollection, dup.Kind(), "last declared field wins")
	assert.Equal(t, "dc:second", dup.Term())

	_, ok := typ.Field("future")
	assert.False(t, ok, "unknown elements are skipped")
}

func TestXMLDriver_MissingIdentifier(t *testing.T) {
	driver := newTestDriver(t, map[string]string{
		"/rdf/NoID.xml":    "<type>\n<children>\n<property property=\"dc:title\"/>\n</children>\n</type>",
		"/rdf/EmptyID.xml": `<type><children><collection rel="x" identifier=""/></children></type>`,
	})

	for _, class := range []string{"NoID", "EmptyID"} {
		t.Run(class, func(t *testing.T) {
			typ, err := driver.LoadTypeForClass(class, nil, nil)
			require.Error(t, err)
			assert.Nil(t, typ)
			assert.ErrorIs(t, err, errors.ErrMalformedMetadata)
			assert.True(t, errors.IsInvalid(err))
		})
	}

	_, err := driver.LoadTypeForClass("NoID", nil, nil)
	assert.Contains(t, err.Error(), "<property> on line 3 has no identifier")
}

func TestXMLDriver_MalformedDocument(t *testing.T) {
	driver := newTestDriver(t, map[string]string{"/rdf/Bad.xml": `<type><children>`})

	typ, err := driver.LoadTypeForClass("Bad", nil, nil)
	require.Error(t, err)
	assert.Nil(t, typ)

	var syntaxErr *xml.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr))
}

func TestXMLDriver_MetricsAndLogging(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := metric.NewMetrics()

	driver := newTestDriver(t, map[string]string{
		"/rdf/Blog.Article.xml": articleDoc,
		"/rdf/Odd.xml":          `<type><children><widget/><property identifier="a"/></children></type>`,
		"/rdf/Bad.xml":          `<type>`,
	}, WithMetrics(m), WithLogger(logger))

	_, err := driver.LoadTypeForClass(`Blog\Article`, nil, nil)
	require.NoError(t, err)
	_, err = driver.LoadTypeForClass("Odd", nil, nil)
	require.NoError(t, err)
	_, err = driver.LoadTypeForClass("Missing", nil, nil)
	require.NoError(t, err)
	_, err = driver.LoadTypeForClass("Bad", nil, nil)
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ResolutionsTotal.WithLabelValues(metric.ResultFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResolutionsTotal.WithLabelValues(metric.ResultNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResolutionsTotal.WithLabelValues(metric.ResultError)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.FieldsLoaded.WithLabelValues("property")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FieldsLoaded.WithLabelValues("collection")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChildrenSkipped))

	assert.Contains(t, logs.String(), "loaded rdf type")
	assert.Contains(t, logs.String(), "ignoring unknown child element")
	assert.Contains(t, logs.String(), "no metadata document")
}
