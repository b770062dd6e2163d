package metadata

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pebsconsulting/createphp/errors"
	"github.com/pebsconsulting/createphp/vocabulary"
)

func mustParse(t *testing.T, doc string) *Node {
	t.Helper()
	root, err := ParseDocument(strings.NewReader(doc))
	require.NoError(t, err)
	return root
}

func TestParseDocument(t *testing.T) {
	root := mustParse(t, `<?xml version="1.0"?>
<!-- header -->
<type xmlns="http://example.com/default#" xmlns:sioc="http://rdfs.org/sioc/ns#" typeof="sioc:Post" xml:lang="en">
  text is dropped
  <children>
    <property identifier="title"/>
    <other/>
  </children>
</type>`)

	assert.Equal(t, "type", root.Name)
	assert.Equal(t, 3, root.Line)
	assert.Equal(t, []vocabulary.Namespace{
		{Prefix: "", URI: "http://example.com/default#"},
		{Prefix: "sioc", URI: vocabulary.SIOCNamespace},
	}, root.Namespaces)

	typeOf, ok := root.Attr("typeof")
	assert.True(t, ok)
	assert.Equal(t, "sioc:Post", typeOf)

	_, ok = root.Attr("lang")
	assert.False(t, ok, "prefixed attributes are not plain attributes")

	children := root.Child("children")
	require.NotNil(t, children)
	require.Len(t, children.Children, 2)
	assert.Equal(t, "property", children.Children[0].Name)
	assert.Equal(t, 6, children.Children[0].Line)
	assert.Equal(t, "other", children.Children[1].Name)

	assert.Nil(t, root.Child("missing"))
	assert.Len(t, children.ChildrenNamed("property"), 1)
	assert.Equal(t, "fallback", root.AttrOr("missing", "fallback"))
}

func TestParseDocument_DocumentNamespaces(t *testing.T) {
	root := mustParse(t, `<type xmlns:a="urn:a" xmlns:b="urn:b">
  <children xmlns:c="urn:c">
    <property identifier="x" xmlns:a="urn:a2"/>
  </children>
</type>`)

	assert.Equal(t, []vocabulary.Namespace{
		{Prefix: "a", URI: "urn:a"},
		{Prefix: "b", URI: "urn:b"},
		{Prefix: "c", URI: "urn:c"},
		{Prefix: "a", URI: "urn:a2"},
	}, root.DocumentNamespaces())
}

func TestParseDocument_Errors(t *testing.T) {
	t.Run("syntax error", func(t *testing.T) {
		_, err := ParseDocument(strings.NewReader(`<type><children></type>`))
		require.Error(t, err)
		var syntaxErr *xml.SyntaxError
		assert.True(t, errors.As(err, &syntaxErr))
	})

	t.Run("truncated document", func(t *testing.T) {
		_, err := ParseDocument(strings.NewReader(`<type><children>`))
		require.Error(t, err)
		var syntaxErr *xml.SyntaxError
		assert.True(t, errors.As(err, &syntaxErr))
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := ParseDocument(strings.NewReader(""))
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrParsingFailed)
		assert.True(t, errors.IsInvalid(err))
	})

	t.Run("second root element", func(t *testing.T) {
		_, err := ParseDocument(strings.NewReader(`<type typeof="a:B"/><type typeof="c:D"/>`))
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrParsingFailed)
		assert.Contains(t, err.Error(), "second root element <type>")
	})

	t.Run("text after root", func(t *testing.T) {
		_, err := ParseDocument(strings.NewReader(`<type typeof="a:B"/>garbage`))
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrParsingFailed)
		assert.True(t, errors.IsInvalid(err))
	})

	t.Run("markup after root", func(t *testing.T) {
		_, err := ParseDocument(strings.NewReader(`<type typeof="a:B"/><<`))
		require.Error(t, err)
	})
}

func TestParseDocument_Trailing(t *testing.T) {
	root := mustParse(t, "<type typeof=\"a:B\"/>\n<!-- end -->\n<?pi data?>\n\t ")
	assert.Equal(t, "type", root.Name)
}

func TestParseDocument_Latin1(t *testing.T) {
	doc := append([]byte(`<?xml version="1.0" encoding="ISO-8859-1"?>
<type typeof="sioc:Post"><config key="label" value="caf`), 0xe9)
	doc = append(doc, []byte(`"/></type>`)...)

	root, err := ParseDocument(bytes.NewReader(doc))
	require.NoError(t, err)
	cfg := root.Child("config")
	require.NotNil(t, cfg)
	assert.Equal(t, "café", cfg.AttrOr("value", ""))
}
