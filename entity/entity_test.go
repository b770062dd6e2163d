package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pebsconsulting/createphp/errors"
	"github.com/pebsconsulting/createphp/vocabulary"
)

type stubFactory struct {
	types     map[string]*Type
	requested []string
}

func (f *stubFactory) GetType(className string) (*Type, error) {
	f.requested = append(f.requested, className)
	if t, ok := f.types[className]; ok {
		return t, nil
	}
	return nil, errors.ErrTypeNotFound
}

type identityMapper struct{}

func (identityMapper) CanonicalName(className string) string { return className }

func TestFieldKind(t *testing.T) {
	assert.Equal(t, "property", KindProperty.String())
	assert.Equal(t, "collection", KindCollection.String())
	assert.Equal(t, "unknown", FieldKind(42).String())

	assert.Equal(t, "property", KindProperty.TermKey())
	assert.Equal(t, "rel", KindCollection.TermKey())
}

func TestProperty(t *testing.T) {
	p := NewProperty("title", nil)

	assert.Equal(t, "title", p.Identifier())
	assert.Equal(t, KindProperty, p.Kind())
	assert.Empty(t, p.Config())
	assert.Empty(t, p.Term())

	p.SetAttributes(Attributes{"property": "dcterms:title", "class": "headline"})
	p.SetTagName("h2")

	assert.Equal(t, "dcterms:title", p.Term())
	assert.Equal(t, "h2", p.TagName())

	attrs := p.Attributes()
	attrs["class"] = "mutated"
	assert.Equal(t, "headline", p.Attributes()["class"], "accessor must return a copy")

	p.SetAttributes(nil)
	assert.NotNil(t, p.Attributes())
	assert.Empty(t, p.Attributes())
}

func TestCollection_RelatedType(t *testing.T) {
	related := NewType(nil, nil)
	factory := &stubFactory{types: map[string]*Type{"App.Tag": related}}

	c := NewCollection("tags", factory, map[string]string{"my": "value"})
	c.SetAttributes(Attributes{"rel": "skos:related"})

	assert.Equal(t, KindCollection, c.Kind())
	assert.Equal(t, "skos:related", c.Term())
	assert.Equal(t, map[string]string{"my": "value"}, c.Config())
	assert.Same(t, factory, c.TypeFactory())

	got, err := c.RelatedType("App.Tag")
	require.NoError(t, err)
	assert.Same(t, related, got)

	_, err = c.RelatedType("App.Missing")
	assert.ErrorIs(t, err, errors.ErrTypeNotFound)
	assert.Equal(t, []string{"App.Tag", "App.Missing"}, factory.requested)
}

func TestCollection_RelatedTypeWithoutFactory(t *testing.T) {
	c := NewCollection("tags", nil, nil)

	_, err := c.RelatedType("App.Tag")
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
	assert.ErrorIs(t, err, errors.ErrMissingConfig)
}

func TestType_Fields(t *testing.T) {
	typ := NewType(identityMapper{}, map[string]string{"my": "value"})

	_, ok := typ.RdfType()
	assert.False(t, ok)

	typ.SetRdfType("sioc:Post")
	rdfType, ok := typ.RdfType()
	assert.True(t, ok)
	assert.Equal(t, "sioc:Post", rdfType)

	first := NewProperty("title", nil)
	second := NewProperty("title", map[string]string{"v": "2"})
	typ.SetField(first)
	typ.SetField(NewCollection("tags", nil, nil))
	typ.SetField(second)

	assert.Equal(t, 2, typ.Len())
	assert.Equal(t, []string{"tags", "title"}, typ.Identifiers())

	f, ok := typ.Field("title")
	require.True(t, ok)
	assert.Same(t, second, f, "last registered field wins")

	_, ok = typ.Field("missing")
	assert.False(t, ok)

	assert.Len(t, typ.Fields(), 2)
	assert.Equal(t, map[string]string{"my": "value"}, typ.Config())
	assert.IsType(t, identityMapper{}, typ.Mapper())
}

func TestType_Vocabularies(t *testing.T) {
	typ := NewType(nil, nil)
	typ.SetVocabulary("sioc", vocabulary.SIOCNamespace)
	typ.SetVocabulary("dcterms", vocabulary.DCTermsNamespace)

	uri, ok := typ.Vocabulary("sioc")
	assert.True(t, ok)
	assert.Equal(t, vocabulary.SIOCNamespace, uri)

	ns := typ.Vocabularies()
	ns.Set("extra", "http://example.com/#")
	assert.Equal(t, 2, typ.Vocabularies().Len(), "Vocabularies must return a copy")
}

func TestType_Describe(t *testing.T) {
	typ := NewType(nil, map[string]string{"k": "v"})
	typ.SetVocabulary("sioc", vocabulary.SIOCNamespace)
	typ.SetRdfType("sioc:Post")

	title := NewProperty("title", nil)
	title.SetAttributes(Attributes{"property": "dcterms:title"})
	title.SetTagName("h2")
	typ.SetField(title)

	tags := NewCollection("tags", nil, map[string]string{"my": "value"})
	tags.SetAttributes(Attributes{"rel": "skos:related", "class": "tags"})
	typ.SetField(tags)

	d := typ.Describe()
	assert.Equal(t, "sioc:Post", d.RdfType)
	assert.Equal(t, []vocabulary.Namespace{{Prefix: "sioc", URI: vocabulary.SIOCNamespace}}, d.Vocabularies)
	assert.Equal(t, map[string]string{"k": "v"}, d.Config)
	require.Len(t, d.Fields, 2)

	assert.Equal(t, FieldDescription{
		Identifier: "tags",
		Kind:       "collection",
		Attributes: map[string]string{"rel": "skos:related", "class": "tags"},
		Config:     map[string]string{"my": "value"},
	}, d.Fields[0])
	assert.Equal(t, FieldDescription{
		Identifier: "title",
		Kind:       "property",
		TagName:    "h2",
		Attributes: map[string]string{"property": "dcterms:title"},
	}, d.Fields[1])
}

func TestMapperFunc(t *testing.T) {
	var m Mapper = MapperFunc(func(className string) string { return "Canonical\\" + className })
	assert.Equal(t, "Canonical\\Article", m.CanonicalName("Article"))
}
