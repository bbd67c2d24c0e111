package dom

import (
	"strings"

	"github.com/dmitrymomot/formkit/pkg/validity"
)

// Attr is one content attribute.
type Attr struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Element is a borrowed handle to a node of a Document. Despite the name it
// may point at any node type; NodeType tells which. The zero Element behaves
// like an empty detached fragment.
type Element struct {
	doc *Document
	id  NodeID
}

var _ validity.Control = Element{}

var zeroNode = node{typ: validity.DocumentFragmentNode, parent: noParent}

func (e Element) n() *node {
	if e.doc == nil || e.id < 0 || int(e.id) >= len(e.doc.nodes) {
		return &zeroNode
	}
	return &e.doc.nodes[e.id]
}

// ID returns the arena index of the node.
func (e Element) ID() NodeID { return e.id }

// IsZero reports whether e is not bound to a document.
func (e Element) IsZero() bool { return e.doc == nil }

func (e Element) NodeType() validity.NodeType { return e.n().typ }

// LocalName returns the lower-case tag name, or "" for non-elements.
func (e Element) LocalName() string {
	n := e.n()
	if n.typ != validity.ElementNode {
		return ""
	}
	return n.name
}

// Data returns the character data of a text or comment node, or the name of
// a doctype.
func (e Element) Data() string {
	n := e.n()
	if n.typ == validity.DoctypeNode {
		return n.name
	}
	return n.data
}

// Attribute looks up an attribute. Lookup is ASCII case-insensitive.
func (e Element) Attribute(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range e.n().attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func (e Element) hasAttr(name string) bool {
	_, ok := e.Attribute(name)
	return ok
}

// Attributes returns a copy of the attribute list in insertion order.
func (e Element) Attributes() []Attr {
	attrs := e.n().attrs
	if len(attrs) == 0 {
		return nil
	}
	return append([]Attr(nil), attrs...)
}

// Parent returns the parent node, if attached.
func (e Element) Parent() (Element, bool) {
	p := e.n().parent
	if p == noParent {
		return Element{}, false
	}
	return Element{doc: e.doc, id: p}, true
}

// Children returns the direct children in order.
func (e Element) Children() []Element {
	ids := e.n().children
	if len(ids) == 0 {
		return nil
	}
	out := make([]Element, len(ids))
	for i, id := range ids {
		out[i] = Element{doc: e.doc, id: id}
	}
	return out
}

// TextContent concatenates the data of all descendant text nodes.
func (e Element) TextContent() string {
	var b strings.Builder
	e.walk(func(d Element) bool {
		if d.NodeType() == validity.TextNode {
			b.WriteString(d.n().data)
		}
		return true
	})
	return b.String()
}

// IsListed reports whether the element is one of the listed form controls
// the validity engine knows about.
func (e Element) IsListed() bool {
	switch e.LocalName() {
	case "input", "button", "object", "select", "textarea":
		return true
	default:
		return false
	}
}

// Checked reports the checkedness of a checkbox or radio button: the dirty
// state if set, else the presence of the checked attribute.
func (e Element) Checked() bool {
	if c := e.n().checked; c != nil {
		return *c
	}
	return e.hasAttr("checked")
}

// walk runs fn over e and its descendants in pre-order. It reports false
// once fn has asked to stop.
func (e Element) walk(fn func(Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, id := range e.n().children {
		if !(Element{doc: e.doc, id: id}).walk(fn) {
			return false
		}
	}
	return true
}

func (e Element) inputType() string {
	typ, _ := e.Attribute("type")
	return strings.ToLower(strings.TrimSpace(typ))
}

func (e Element) isRadio() bool {
	return e.LocalName() == "input" && e.inputType() == "radio"
}

// ownerSelect finds the select an option belongs to: its parent, or its
// grandparent through an optgroup.
func (e Element) ownerSelect() (Element, bool) {
	if e.LocalName() != "option" {
		return Element{}, false
	}
	for p, ok := e.Parent(); ok; p, ok = p.Parent() {
		switch p.LocalName() {
		case "select":
			return p, true
		case "optgroup":
			continue
		default:
			return Element{}, false
		}
	}
	return Element{}, false
}
