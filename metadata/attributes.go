package metadata

import "github.com/pebsconsulting/createphp/entity"

// BuildAttributes computes the attribute bundle of a <property> or
// <collection> node and its tag name override.
//
// The bundle starts with the semantic term under kind.TermKey(), read from
// the node's "property" or "rel" attribute and falling back to its
// identifier. Each <attribute key="" value=""/> child is then applied in
// document order and may replace the term entry. tagName is empty when the
// node has no tag-name attribute.
func BuildAttributes(node *Node, kind entity.FieldKind) (attributes entity.Attributes, tagName string) {
	termKey := kind.TermKey()
	term, ok := node.Attr(termKey)
	if !ok {
		term = node.AttrOr("identifier", "")
	}

	attributes = entity.Attributes{termKey: term}
	for _, a := range node.ChildrenNamed("attribute") {
		attributes[a.AttrOr("key", "")] = a.AttrOr("value", "")
	}

	return attributes, node.AttrOr("tag-name", "")
}
