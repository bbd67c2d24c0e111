package dom

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/validity"
)

// NodeID indexes a node in its document's arena.
type NodeID int

const noParent NodeID = -1

// node is one arena slot. Nodes are never freed; a removed node simply has
// no parent.
type node struct {
	typ      validity.NodeType
	name     string // lower-case tag name for elements, doctype name for doctypes
	data     string // character data for text and comment nodes
	attrs    []Attr
	parent   NodeID
	children []NodeID

	// Dirty state set through the document API. nil means the content
	// attribute still decides.
	value    *string
	checked  *bool
	selected *bool
}

// Document owns every node of a tree. Element handles borrow it.
// A Document is not safe for concurrent mutation; concurrent reads are fine.
type Document struct {
	nodes []node
}

// NewDocument returns an empty document holding only its root node.
func NewDocument() *Document {
	return &Document{nodes: []node{{typ: validity.DocumentNode, parent: noParent}}}
}

// Root returns the document node.
func (d *Document) Root() Element {
	return Element{doc: d, id: 0}
}

// Len reports how many nodes the arena holds, attached or not.
func (d *Document) Len() int {
	return len(d.nodes)
}

// Node returns the handle for id.
func (d *Document) Node(id NodeID) (Element, error) {
	if id < 0 || int(id) >= len(d.nodes) {
		return Element{}, ErrInvalidNode
	}
	return Element{doc: d, id: id}, nil
}

// CreateElement adds a detached element. attrs is a flat list of name/value
// pairs; a trailing name without a value gets the empty string.
func (d *Document) CreateElement(name string, attrs ...string) Element {
	e := d.add(node{typ: validity.ElementNode, name: strings.ToLower(name), parent: noParent})
	for i := 0; i < len(attrs); i += 2 {
		value := ""
		if i+1 < len(attrs) {
			value = attrs[i+1]
		}
		d.setAttr(e.id, attrs[i], value)
	}
	return e
}

// CreateText adds a detached text node.
func (d *Document) CreateText(data string) Element {
	return d.add(node{typ: validity.TextNode, data: data, parent: noParent})
}

// CreateComment adds a detached comment node.
func (d *Document) CreateComment(data string) Element {
	return d.add(node{typ: validity.CommentNode, data: data, parent: noParent})
}

// CreateDoctype adds a detached doctype node.
func (d *Document) CreateDoctype(name string) Element {
	return d.add(node{typ: validity.DoctypeNode, name: name, parent: noParent})
}

func (d *Document) add(n node) Element {
	d.nodes = append(d.nodes, n)
	return Element{doc: d, id: NodeID(len(d.nodes) - 1)}
}

// AppendChild moves child to the end of parent's children, detaching it from
// its previous parent first.
func (d *Document) AppendChild(parent, child Element) error {
	if !d.owns(parent) || !d.owns(child) {
		return ErrInvalidNode
	}
	switch d.nodes[parent.id].typ {
	case validity.ElementNode, validity.DocumentNode, validity.DocumentFragmentNode:
	default:
		return ErrHierarchy
	}
	if d.nodes[child.id].typ == validity.DocumentNode {
		return ErrHierarchy
	}
	for p := parent.id; p != noParent; p = d.nodes[p].parent {
		if p == child.id {
			return ErrHierarchy
		}
	}

	d.detach(child.id)
	d.nodes[child.id].parent = parent.id
	d.nodes[parent.id].children = append(d.nodes[parent.id].children, child.id)
	return nil
}

// RemoveChild detaches child from parent. The node stays in the arena and can
// be appended again.
func (d *Document) RemoveChild(parent, child Element) error {
	if !d.owns(parent) || !d.owns(child) {
		return ErrInvalidNode
	}
	if d.nodes[child.id].parent != parent.id {
		return ErrHierarchy
	}
	d.detach(child.id)
	return nil
}

func (d *Document) detach(id NodeID) {
	p := d.nodes[id].parent
	if p == noParent {
		return
	}
	siblings := d.nodes[p].children
	if i := slices.Index(siblings, id); i >= 0 {
		d.nodes[p].children = slices.Delete(siblings, i, i+1)
	}
	d.nodes[id].parent = noParent
}

// SetAttribute sets or replaces an attribute. Names are ASCII-lowercased.
func (d *Document) SetAttribute(e Element, name, value string) error {
	if err := d.element(e); err != nil {
		return err
	}
	d.setAttr(e.id, name, value)
	return nil
}

func (d *Document) setAttr(id NodeID, name, value string) {
	name = strings.ToLower(name)
	n := &d.nodes[id]
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attr{Name: name, Value: value})
}

// RemoveAttribute deletes an attribute if present.
func (d *Document) RemoveAttribute(e Element, name string) error {
	if err := d.element(e); err != nil {
		return err
	}
	name = strings.ToLower(name)
	n := &d.nodes[e.id]
	n.attrs = slices.DeleteFunc(n.attrs, func(a Attr) bool { return a.Name == name })
	return nil
}

// SetValue sets the dirty value of an input or textarea. From then on the
// value attribute or the textarea body no longer decide the value.
func (d *Document) SetValue(e Element, value string) error {
	if err := d.element(e); err != nil {
		return err
	}
	d.nodes[e.id].value = &value
	return nil
}

// SetChecked sets the checkedness of a checkbox or radio button. Checking a
// radio button unchecks the other radio buttons of its group.
func (d *Document) SetChecked(e Element, checked bool) error {
	if err := d.element(e); err != nil {
		return err
	}
	d.nodes[e.id].checked = &checked
	if checked && e.isRadio() {
		group, _ := e.Attribute("name")
		if group == "" {
			return nil
		}
		off := false
		d.Walk(func(other Element) bool {
			if other.id != e.id && other.isRadio() {
				if name, _ := other.Attribute("name"); name == group {
					d.nodes[other.id].checked = &off
				}
			}
			return true
		})
	}
	return nil
}

// SetSelected sets the selectedness of an option. Selecting an option of a
// single-choice select deselects its siblings.
func (d *Document) SetSelected(e Element, selected bool) error {
	if err := d.element(e); err != nil {
		return err
	}
	d.nodes[e.id].selected = &selected
	if !selected {
		return nil
	}
	sel, ok := e.ownerSelect()
	if !ok || sel.hasAttr("multiple") {
		return nil
	}
	off := false
	for _, opt := range sel.optionElements() {
		if opt.id != e.id {
			d.nodes[opt.id].selected = &off
		}
	}
	return nil
}

// Walk visits every node attached to the root in tree order. Returning false
// from fn stops the walk.
func (d *Document) Walk(fn func(Element) bool) {
	d.Root().walk(fn)
}

// Controls returns the listed form controls attached to the document in tree
// order.
func (d *Document) Controls() []Element {
	var out []Element
	d.Walk(func(e Element) bool {
		if e.IsListed() {
			out = append(out, e)
		}
		return true
	})
	return out
}

func (d *Document) owns(e Element) bool {
	return e.doc == d && e.id >= 0 && int(e.id) < len(d.nodes)
}

func (d *Document) element(e Element) error {
	if !d.owns(e) {
		return ErrInvalidNode
	}
	if d.nodes[e.id].typ != validity.ElementNode {
		return ErrNotElement
	}
	return nil
}
