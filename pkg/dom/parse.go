package dom

import (
	"errors"
	"io"

	"golang.org/x/net/html"
)

// Parse reads an HTML document and copies it into a new arena. Parsing
// follows the HTML5 tree-construction rules, so unclosed tags, misnested
// markup and the leading newline of a textarea are handled like a browser
// would.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Join(ErrParse, err)
	}

	doc := NewDocument()
	if err := doc.importChildren(doc.Root(), root); err != nil {
		return nil, errors.Join(ErrParse, err)
	}
	return doc, nil
}

func (d *Document) importChildren(parent Element, src *html.Node) error {
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		var e Element
		switch c.Type {
		case html.ElementNode:
			e = d.CreateElement(c.Data)
			for _, a := range c.Attr {
				d.setAttr(e.id, attrName(a), a.Val)
			}
		case html.TextNode:
			e = d.CreateText(c.Data)
		case html.CommentNode:
			e = d.CreateComment(c.Data)
		case html.DoctypeNode:
			e = d.CreateDoctype(c.Data)
		default:
			continue
		}

		if err := d.AppendChild(parent, e); err != nil {
			return err
		}
		if c.Type == html.ElementNode {
			if err := d.importChildren(e, c); err != nil {
				return err
			}
		}
	}
	return nil
}

// attrName keeps foreign attribute prefixes such as xlink:href.
func attrName(a html.Attribute) string {
	if a.Namespace == "" {
		return a.Key
	}
	return a.Namespace + ":" + a.Key
}
