package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/dom"
	"github.com/dmitrymomot/formkit/pkg/validity"
)

func TestValueForValidation(t *testing.T) {
	tests := []struct {
		name   string
		build  func(d *dom.Document) dom.Element
		want   string
		wantOK bool
	}{
		{
			name:   "text strips line breaks",
			build:  func(d *dom.Document) dom.Element { return d.CreateElement("input", "value", "a\r\nb") },
			want:   "ab",
			wantOK: true,
		},
		{
			name: "dirty value wins over attribute",
			build: func(d *dom.Document) dom.Element {
				e := d.CreateElement("input", "type", "search", "value", "attr")
				_ = d.SetValue(e, "dirty")
				return e
			},
			want:   "dirty",
			wantOK: true,
		},
		{
			name:   "url is trimmed",
			build:  func(d *dom.Document) dom.Element { return d.CreateElement("input", "type", "url", "value", " https://x.io \n") },
			want:   "https://x.io",
			wantOK: true,
		},
		{
			name:   "single email is trimmed",
			build:  func(d *dom.Document) dom.Element { return d.CreateElement("input", "type", "email", "value", " a@b.co\n") },
			want:   "a@b.co",
			wantOK: true,
		},
		{
			name: "multiple email entries are trimmed",
			build: func(d *dom.Document) dom.Element {
				return d.CreateElement("input", "type", "email", "multiple", "", "value", " a@b.co , c@d.io ")
			},
			want:   "a@b.co,c@d.io",
			wantOK: true,
		},
		{
			name:   "number is left raw",
			build:  func(d *dom.Document) dom.Element { return d.CreateElement("input", "type", "number", "value", " 5 ") },
			want:   " 5 ",
			wantOK: true,
		},
		{
			name:   "unknown type behaves like text",
			build:  func(d *dom.Document) dom.Element { return d.CreateElement("input", "type", "fancy", "value", "x\ny") },
			want:   "xy",
			wantOK: true,
		},
		{
			name:  "empty value is absent",
			build: func(d *dom.Document) dom.Element { return d.CreateElement("input", "value", "") },
		},
		{
			name:  "value made only of line breaks is absent",
			build: func(d *dom.Document) dom.Element { return d.CreateElement("input", "value", "\r\n") },
		},
		{
			name:  "unchecked checkbox",
			build: func(d *dom.Document) dom.Element { return d.CreateElement("input", "type", "checkbox") },
		},
		{
			name:   "checked checkbox defaults to on",
			build:  func(d *dom.Document) dom.Element { return d.CreateElement("input", "type", "checkbox", "checked") },
			want:   "on",
			wantOK: true,
		},
		{
			name: "checked radio exposes its value",
			build: func(d *dom.Document) dom.Element {
				e := d.CreateElement("input", "type", "radio", "value", "yes")
				_ = d.SetChecked(e, true)
				return e
			},
			want:   "yes",
			wantOK: true,
		},
		{
			name: "dirty unchecked overrides attribute",
			build: func(d *dom.Document) dom.Element {
				e := d.CreateElement("input", "type", "checkbox", "checked")
				_ = d.SetChecked(e, false)
				return e
			},
		},
		{
			name:  "file input has no value",
			build: func(d *dom.Document) dom.Element { return d.CreateElement("input", "type", "file", "value", "x") },
		},
		{
			name: "textarea body with normalised newlines",
			build: func(d *dom.Document) dom.Element {
				e := d.CreateElement("textarea")
				_ = d.AppendChild(e, d.CreateText("a\r\nb\rc"))
				return e
			},
			want:   "a\nb\nc",
			wantOK: true,
		},
		{
			name: "textarea dirty value",
			build: func(d *dom.Document) dom.Element {
				e := d.CreateElement("textarea")
				_ = d.AppendChild(e, d.CreateText("body"))
				_ = d.SetValue(e, "")
				return e
			},
		},
		{
			name:  "select has no value",
			build: func(d *dom.Document) dom.Element { return d.CreateElement("select", "value", "x") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.build(dom.NewDocument()).ValueForValidation()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRadioGroup(t *testing.T) {
	doc := dom.NewDocument()
	form := doc.CreateElement("form")
	require.NoError(t, doc.AppendChild(doc.Root(), form))
	a := doc.CreateElement("input", "type", "radio", "name", "g", "value", "a", "checked")
	b := doc.CreateElement("input", "type", "radio", "name", "g", "value", "b")
	other := doc.CreateElement("input", "type", "radio", "name", "h", "checked")
	for _, e := range []dom.Element{a, b, other} {
		require.NoError(t, doc.AppendChild(form, e))
	}

	require.NoError(t, doc.SetChecked(b, true))
	assert.False(t, a.Checked())
	assert.True(t, b.Checked())
	assert.True(t, other.Checked())
}

func newSelect(t *testing.T, doc *dom.Document, attrs []string, options ...dom.Element) dom.Element {
	t.Helper()
	sel := doc.CreateElement("select", attrs...)
	require.NoError(t, doc.AppendChild(doc.Root(), sel))
	for _, o := range options {
		require.NoError(t, doc.AppendChild(sel, o))
	}
	return sel
}

func option(doc *dom.Document, label string, attrs ...string) dom.Element {
	o := doc.CreateElement("option", attrs...)
	if label != "" {
		_ = doc.AppendChild(o, doc.CreateText(label))
	}
	return o
}

func TestOptions(t *testing.T) {
	t.Run("first enabled option is selected by default", func(t *testing.T) {
		doc := dom.NewDocument()
		sel := newSelect(t, doc, nil,
			option(doc, "Disabled", "disabled"),
			option(doc, "  Red \n  Apple "),
		)
		assert.Equal(t, []validity.Option{
			{Selected: false, Enabled: false, Value: "Disabled"},
			{Selected: true, Enabled: true, Value: "Red Apple"},
		}, sel.Options())
	})

	t.Run("list box has no default", func(t *testing.T) {
		doc := dom.NewDocument()
		sel := newSelect(t, doc, []string{"size", "4"}, option(doc, "a"), option(doc, "b"))
		for _, o := range sel.Options() {
			assert.False(t, o.Selected)
		}
	})

	t.Run("single choice keeps the last selected", func(t *testing.T) {
		doc := dom.NewDocument()
		sel := newSelect(t, doc, nil,
			option(doc, "a", "selected"),
			option(doc, "b", "selected"),
			option(doc, "c"),
		)
		opts := sel.Options()
		assert.False(t, opts[0].Selected)
		assert.True(t, opts[1].Selected)
		assert.False(t, opts[2].Selected)
	})

	t.Run("multiple keeps every selection and no default", func(t *testing.T) {
		doc := dom.NewDocument()
		sel := newSelect(t, doc, []string{"multiple"},
			option(doc, "a", "selected"),
			option(doc, "b", "selected"),
			option(doc, "c"),
		)
		opts := sel.Options()
		assert.True(t, opts[0].Selected)
		assert.True(t, opts[1].Selected)
		assert.False(t, opts[2].Selected)
	})

	t.Run("disabled optgroup disables its options", func(t *testing.T) {
		doc := dom.NewDocument()
		group := doc.CreateElement("optgroup", "disabled")
		require.NoError(t, doc.AppendChild(group, option(doc, "inner", "value", "i")))
		sel := newSelect(t, doc, []string{"multiple"}, option(doc, "outer"), group)
		assert.Equal(t, []validity.Option{
			{Enabled: true, Value: "outer"},
			{Enabled: false, Value: "i"},
		}, sel.Options())
	})

	t.Run("selecting an option deselects its siblings", func(t *testing.T) {
		doc := dom.NewDocument()
		a := option(doc, "a", "selected")
		b := option(doc, "b")
		sel := newSelect(t, doc, nil, a, b)
		require.NoError(t, doc.SetSelected(b, true))
		assert.False(t, a.Selected())
		opts := sel.Options()
		assert.False(t, opts[0].Selected)
		assert.True(t, opts[1].Selected)
	})

	t.Run("non-select has no options", func(t *testing.T) {
		doc := dom.NewDocument()
		div := doc.CreateElement("div")
		require.NoError(t, doc.AppendChild(div, option(doc, "a")))
		assert.Nil(t, div.Options())
	})
}

func TestRequiredSelectPlaceholder(t *testing.T) {
	doc := dom.NewDocument()
	placeholder := option(doc, "Choose", "value", "")
	red := option(doc, "Red")
	sel := newSelect(t, doc, []string{"required"}, placeholder, red)

	assert.True(t, validity.IsValueMissing(sel))

	require.NoError(t, doc.SetSelected(red, true))
	assert.False(t, validity.IsValueMissing(sel))
	assert.True(t, validity.Valid(sel))
}
