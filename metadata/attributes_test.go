package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pebsconsulting/createphp/entity"
)

func TestBuildAttributes(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		kind       entity.FieldKind
		attributes entity.Attributes
		tagName    string
	}{
		{
			name:       "property term",
			doc:        `<property property="dcterms:title" identifier="title" tag-name="h2"/>`,
			kind:       entity.KindProperty,
			attributes: entity.Attributes{"property": "dcterms:title"},
			tagName:    "h2",
		},
		{
			name:       "collection term uses rel",
			doc:        `<collection rel="skos:related" identifier="tags"/>`,
			kind:       entity.KindCollection,
			attributes: entity.Attributes{"rel": "skos:related"},
		},
		{
			name:       "falls back to identifier",
			doc:        `<property identifier="content"/>`,
			kind:       entity.KindProperty,
			attributes: entity.Attributes{"property": "content"},
		},
		{
			name:       "collection ignores property attribute",
			doc:        `<collection property="dc:title" identifier="tags"/>`,
			kind:       entity.KindCollection,
			attributes: entity.Attributes{"rel": "tags"},
		},
		{
			name:       "custom attribute overrides term",
			doc:        `<property property="dc:title" identifier="title"><attribute key="property" value="overridden"/></property>`,
			kind:       entity.KindProperty,
			attributes: entity.Attributes{"property": "overridden"},
		},
		{
			name: "custom attributes in document order",
			doc: `<collection rel="skos:related" identifier="tags" tag-name="ul">
				<attribute key="class" value="first"/>
				<config key="ignored" value="x"/>
				<attribute key="class" value="tags"/>
				<attribute key="data-x" value="1"/>
			</collection>`,
			kind:       entity.KindCollection,
			attributes: entity.Attributes{"rel": "skos:related", "class": "tags", "data-x": "1"},
			tagName:    "ul",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attributes, tagName := BuildAttributes(mustParse(t, tt.doc), tt.kind)
			assert.Equal(t, tt.attributes, attributes)
			assert.Equal(t, tt.tagName, tagName)
		})
	}
}
