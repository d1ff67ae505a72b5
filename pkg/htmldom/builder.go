package htmldom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Parse reads an HTML document from r and builds the conversion tree.
// The returned node is a synthetic root whose children are the parsed
// document's top-level nodes.
func Parse(r io.Reader) (*Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return FromHTML(doc), nil
}

// ParseFragment reads an HTML document and returns the subtree matched by
// the given CSS selector (the first match, in document order). An empty
// selector behaves like Parse. A selector that matches nothing is an error.
func ParseFragment(r io.Reader, selector string) (*Node, error) {
	if selector == "" {
		return Parse(r)
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	sel := doc.Find(selector)
	if sel.Length() == 0 {
		return nil, fmt.Errorf("selector %q matched no elements", selector)
	}

	root := NewElement("#root")
	AppendChild(root, FromHTML(sel.Nodes[0]))
	return root, nil
}

// FromHTML converts an x/net/html parse tree into the conversion tree.
// Element and text nodes are kept; comments, doctypes and other node
// types are dropped. Tag names are lowercased and attribute order is
// preserved as parsed.
func FromHTML(src *html.Node) *Node {
	if converted := convert(src); converted != nil {
		return converted
	}
	return NewElement("#root")
}

func convert(src *html.Node) *Node {
	switch src.Type {
	case html.DocumentNode:
		root := NewElement("#root")
		buildChildren(root, src)
		return root
	case html.ElementNode:
		el := NewElement(strings.ToLower(src.Data))
		for _, a := range src.Attr {
			el.Attr = append(el.Attr, Attribute{Name: strings.ToLower(a.Key), Value: a.Val})
		}
		buildChildren(el, src)
		return el
	case html.TextNode:
		return NewText(src.Data)
	default:
		return nil
	}
}

func buildChildren(parent *Node, src *html.Node) {
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		if converted := convert(c); converted != nil {
			AppendChild(parent, converted)
		}
	}
}
