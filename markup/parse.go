package markup

import (
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/teranos/xmlprops/errors"
)

// Parse reads one XML document and returns its root element.
// Comments, processing instructions and directives are dropped.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)

	var (
		root  *Node
		stack []*Node
		text  []*strings.Builder
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidDocument, "%v", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, errors.Wrap(errors.ErrInvalidDocument, "multiple root elements")
			}
			node := &Node{Tag: localName(t.Name)}
			for _, a := range t.Attr {
				node.Attributes = append(node.Attributes, Attribute{Name: localName(a.Name), Value: a.Value})
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			} else {
				root = node
			}
			stack = append(stack, node)
			text = append(text, &strings.Builder{})

		case xml.EndElement:
			last := len(stack) - 1
			stack[last].Text = text[last].String()
			stack = stack[:last]
			text = text[:last]

		case xml.CharData:
			if len(text) > 0 {
				text[len(text)-1].Write(t)
			}
		}
	}

	if root == nil {
		return nil, errors.Wrap(errors.ErrInvalidDocument, "no root element")
	}
	return root, nil
}

// ParseFile parses the document stored at path.
func ParseFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	root, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return root, nil
}

// localName keeps namespaced tags such as tools:ignore readable.
func localName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}
