// Package markup parses XML documents into a small read-only node tree.
package markup

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Attr is a single name/value attribute on a node.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of a parsed document. The document itself is a Node
// with an empty Name whose children are the top-level elements.
type Node struct {
	Name     string
	Attrs    []Attr
	Children []*Node
	text     strings.Builder
}

// Parse reads an XML document and returns its document node.
func Parse(r io.Reader) (*Node, error) {
	doc := &Node{}
	stack := []*Node{doc}

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse markup: %w", err)
		}

		top := stack[len(stack)-1]
		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local}
			for _, a := range t.Attr {
				n.Attrs = append(n.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			top.Children = append(top.Children, n)
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			// Character data outside the root element is ignorable whitespace.
			if top != doc {
				top.text.Write(t)
			}
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("failed to parse markup: unclosed element <%s>", stack[len(stack)-1].Name)
	}
	if len(doc.Children) == 0 {
		return nil, errors.New("failed to parse markup: no root element")
	}
	return doc, nil
}

// ParseString parses an XML document held in a string.
func ParseString(s string) (*Node, error) {
	return Parse(strings.NewReader(s))
}

// Root returns the first top-level element, or nil.
func (n *Node) Root() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// Elements returns the direct children named tag, in document order.
func (n *Node) Elements(tag string) []*Node {
	var result []*Node
	for _, c := range n.Children {
		if c.Name == tag {
			result = append(result, c)
		}
	}
	return result
}

// Attr returns the value of the named attribute, or "" if absent.
func (n *Node) Attr(name string) string {
	v, _ := n.LookupAttr(name)
	return v
}

// LookupAttr returns the value of the named attribute and whether it was present.
func (n *Node) LookupAttr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Text returns the node's own character data with whitespace untouched.
// Text inside child elements is not included.
func (n *Node) Text() string {
	return n.text.String()
}
