package metadata

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"

	"github.com/pebsconsulting/createphp/errors"
	"github.com/pebsconsulting/createphp/vocabulary"
)

// Attr is an element attribute. Space holds the namespace URI for prefixed
// attributes and is empty for plain ones.
type Attr struct {
	Space string
	Name  string
	Value string
}

// Node is an element of a parsed metadata document
type Node struct {
	// Name is the element's local name
	Name  string
	Attrs []Attr
	// Namespaces holds the xmlns declarations made on this element, the
	// default namespace under the empty prefix.
	Namespaces []vocabulary.Namespace
	Children   []*Node
	// Line is the line on which the start tag ends
	Line int
}

// Attr returns the value of the plain (unprefixed) attribute name.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Space == "" && a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrOr returns the value of attribute name or def when it is absent.
func (n *Node) AttrOr(name, def string) string {
	if v, ok := n.Attr(name); ok {
		return v
	}
	return def
}

// Child returns the first direct child called name
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns the direct children called name in document order
func (n *Node) ChildrenNamed(name string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// DocumentNamespaces returns every namespace declaration in the subtree
// rooted at n, in document order.
func (n *Node) DocumentNamespaces() []vocabulary.Namespace {
	decls := append([]vocabulary.Namespace(nil), n.Namespaces...)
	for _, c := range n.Children {
		decls = append(decls, c.DocumentNamespaces()...)
	}
	return decls
}

// ParseDocument reads an XML document and returns its root element.
// Character data, comments and processing instructions are dropped.
// Documents declaring a non UTF-8 encoding are transcoded while reading.
// Syntax errors are returned as *xml.SyntaxError.
func ParseDocument(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var (
		root  *Node
		stack []*Node
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if root != nil {
			if err := checkTrailing(tok); err != nil {
				return nil, err
			}
			continue
		}

		switch t := tok.(type) {
		case xml.StartElement:
			line, _ := dec.InputPos()
			node := newNode(t, line)
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)

		case xml.EndElement:
			if len(stack) == 1 {
				root = stack[0]
			}
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("no root element: %w", errors.ErrParsingFailed),
			"metadata", "ParseDocument", "read document")
	}
	return root, nil
}

// checkTrailing accepts the tokens allowed after the root element closes.
func checkTrailing(tok xml.Token) error {
	switch t := tok.(type) {
	case xml.Comment, xml.ProcInst:
		return nil
	case xml.CharData:
		if len(bytes.TrimSpace(t)) == 0 {
			return nil
		}
		return errors.WrapInvalid(
			fmt.Errorf("text after root element: %w", errors.ErrParsingFailed),
			"metadata", "ParseDocument", "read document")
	case xml.StartElement:
		return errors.WrapInvalid(
			fmt.Errorf("second root element <%s>: %w", t.Name.Local, errors.ErrParsingFailed),
			"metadata", "ParseDocument", "read document")
	default:
		return errors.WrapInvalid(
			fmt.Errorf("content after root element: %w", errors.ErrParsingFailed),
			"metadata", "ParseDocument", "read document")
	}
}

func newNode(start xml.StartElement, line int) *Node {
	node := &Node{Name: start.Name.Local, Line: line}
	for _, a := range start.Attr {
		switch {
		case a.Name.Space == "xmlns":
			node.Namespaces = append(node.Namespaces, vocabulary.Namespace{Prefix: a.Name.Local, URI: a.Value})
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			node.Namespaces = append(node.Namespaces, vocabulary.Namespace{Prefix: "", URI: a.Value})
		default:
			node.Attrs = append(node.Attrs, Attr{Space: a.Name.Space, Name: a.Name.Local, Value: a.Value})
		}
	}
	return node
}
