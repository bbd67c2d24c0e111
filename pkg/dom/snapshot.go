package dom

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"mime"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

// SnapshotFormat is the encoding of a Snapshot.
type SnapshotFormat string

const (
	SnapshotYAML SnapshotFormat = "yaml"
	SnapshotJSON SnapshotFormat = "json"
)

// SnapshotFormatFromPath picks the format from a file extension.
func SnapshotFormatFromPath(path string) (SnapshotFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return SnapshotYAML, nil
	case ".json":
		return SnapshotJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// SnapshotFormatFromMediaType picks the format from a Content-Type header.
func SnapshotFormatFromMediaType(contentType string) (SnapshotFormat, error) {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", errors.Join(ErrUnsupportedFormat, err)
	}
	switch mt {
	case "application/yaml", "application/x-yaml", "text/yaml":
		return SnapshotYAML, nil
	case "application/json":
		return SnapshotJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mt)
	}
}

// Snapshot is a flat, serialisable description of a form's controls. It is
// the non-HTML input of the checker.
//
//	controls:
//	  - tag: input
//	    attributes: {type: email, required: ""}
//	    value: not-an-email
//	  - tag: select
//	    attributes: {required: ""}
//	    options:
//	      - {label: Choose, value: ""}
//	      - {label: Red, selected: true}
type Snapshot struct {
	Controls []ControlSnapshot `json:"controls" yaml:"controls"`
}

// ControlSnapshot describes one control. Value is the dirty value; when nil
// the value attribute (or Text for a textarea) decides.
type ControlSnapshot struct {
	Tag        string            `json:"tag" yaml:"tag"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Value      *string           `json:"value,omitempty" yaml:"value,omitempty"`
	Text       string            `json:"text,omitempty" yaml:"text,omitempty"`
	Checked    *bool             `json:"checked,omitempty" yaml:"checked,omitempty"`
	Options    []OptionSnapshot  `json:"options,omitempty" yaml:"options,omitempty"`
	Groups     []GroupSnapshot   `json:"optgroups,omitempty" yaml:"optgroups,omitempty"`
}

// OptionSnapshot describes an option of a select. A nil Value means the
// option has no value attribute and Label stands in for it.
type OptionSnapshot struct {
	Label    string  `json:"label,omitempty" yaml:"label,omitempty"`
	Value    *string `json:"value,omitempty" yaml:"value,omitempty"`
	Selected bool    `json:"selected,omitempty" yaml:"selected,omitempty"`
	Disabled bool    `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// GroupSnapshot describes an optgroup. Its options follow the select's own
// options in tree order.
type GroupSnapshot struct {
	Label    string           `json:"label,omitempty" yaml:"label,omitempty"`
	Disabled bool             `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Options  []OptionSnapshot `json:"options,omitempty" yaml:"options,omitempty"`
}

// LoadSnapshot decodes a snapshot and builds its document. Unknown fields
// are rejected.
func LoadSnapshot(r io.Reader, format SnapshotFormat) (*Document, error) {
	var s Snapshot
	switch format {
	case SnapshotYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Join(ErrInvalidSnapshot, err)
		}
	case SnapshotJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, errors.Join(ErrInvalidSnapshot, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return s.Document()
}

// Document builds a document holding a single form with the snapshot's
// controls as children, in order.
func (s Snapshot) Document() (*Document, error) {
	doc := NewDocument()
	form := doc.CreateElement("form")
	if err := doc.AppendChild(doc.Root(), form); err != nil {
		return nil, err
	}

	for i, c := range s.Controls {
		e, err := c.build(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: control %d: %w", ErrInvalidSnapshot, i, err)
		}
		if err := doc.AppendChild(form, e); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

var (
	errMissingTag   = errors.New("tag is required")
	errOptionsOnTag = errors.New("options are only allowed on select")
	errTextOnTag    = errors.New("text is only allowed on textarea")
)

func (c ControlSnapshot) build(doc *Document) (Element, error) {
	tag := strings.ToLower(strings.TrimSpace(c.Tag))
	switch {
	case tag == "":
		return Element{}, errMissingTag
	case tag != "select" && (len(c.Options) > 0 || len(c.Groups) > 0):
		return Element{}, errOptionsOnTag
	case tag != "textarea" && c.Text != "":
		return Element{}, errTextOnTag
	}

	e := doc.CreateElement(tag)
	for _, name := range slices.Sorted(maps.Keys(c.Attributes)) {
		doc.setAttr(e.id, name, c.Attributes[name])
	}
	if c.Value != nil {
		doc.nodes[e.id].value = c.Value
	}
	if c.Checked != nil {
		doc.nodes[e.id].checked = c.Checked
	}
	if c.Text != "" {
		if err := doc.AppendChild(e, doc.CreateText(sanitizer.StripLeadingNewline(c.Text))); err != nil {
			return Element{}, err
		}
	}

	for _, o := range c.Options {
		if err := doc.AppendChild(e, o.build(doc)); err != nil {
			return Element{}, err
		}
	}
	for _, g := range c.Groups {
		group := doc.CreateElement("optgroup")
		if g.Label != "" {
			doc.setAttr(group.id, "label", g.Label)
		}
		if g.Disabled {
			doc.setAttr(group.id, "disabled", "")
		}
		for _, o := range g.Options {
			if err := doc.AppendChild(group, o.build(doc)); err != nil {
				return Element{}, err
			}
		}
		if err := doc.AppendChild(e, group); err != nil {
			return Element{}, err
		}
	}
	return e, nil
}

func (o OptionSnapshot) build(doc *Document) Element {
	e := doc.CreateElement("option")
	if o.Value != nil {
		doc.setAttr(e.id, "value", *o.Value)
	}
	if o.Selected {
		doc.setAttr(e.id, "selected", "")
	}
	if o.Disabled {
		doc.setAttr(e.id, "disabled", "")
	}
	if o.Label != "" {
		_ = doc.AppendChild(e, doc.CreateText(o.Label))
	}
	return e
}
