// Package markup holds the generic element tree read from a generator
// document and the attribute helpers the generator queries it with.
package markup

import "strings"

// Attribute is one name/value pair in declaration order.
type Attribute struct {
	Name  string
	Value string
}

// Node is one XML element. Children holds element children only; character
// data of the element itself is accumulated into Text.
type Node struct {
	Tag        string
	Attributes []Attribute
	Children   []*Node
	Text       string
}

// Attr returns the value of the named attribute and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrValue returns the named attribute's value, or "" when absent.
func (n *Node) AttrValue(name string) string {
	v, _ := n.Attr(name)
	return v
}

// Elements returns the element children in document order.
func (n *Node) Elements() []*Node {
	if n == nil {
		return nil
	}
	return n.Children
}

// HasElements reports whether the node has at least one element child.
func (n *Node) HasElements() bool {
	return n != nil && len(n.Children) > 0
}

// Find returns the first element child with the given tag, or nil.
func (n *Node) Find(tag string) *Node {
	for _, child := range n.Elements() {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}

// TextValue returns the trimmed text content. The boolean is false when the
// node is nil or its text is blank.
func (n *Node) TextValue() (string, bool) {
	if n == nil {
		return "", false
	}
	text := strings.TrimSpace(n.Text)
	return text, text != ""
}
