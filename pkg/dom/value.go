package dom

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
	"github.com/dmitrymomot/formkit/pkg/validity"
)

var (
	stripLineBreaks = sanitizer.StripLineBreaks
	stripAndTrim    = sanitizer.Compose(sanitizer.StripLineBreaks, sanitizer.Trim)

	// valueSanitizers holds the value sanitization algorithm per input type.
	// Types in the text state that are not listed here use stripLineBreaks.
	valueSanitizers = map[string]func(value string, multiple bool) string{
		"url": func(v string, _ bool) string { return stripAndTrim(v) },
		"email": func(v string, multiple bool) string {
			if !multiple {
				return stripAndTrim(v)
			}
			return sanitizer.JoinCommaList(sanitizer.SplitCommaList(stripLineBreaks(v)))
		},
	}

	// rawTypes keep their value untouched.
	rawTypes = map[string]bool{
		"hidden": true, "submit": true, "image": true, "reset": true, "button": true,
		"number": true, "range": true, "color": true,
		"date": true, "month": true, "week": true, "time": true, "datetime-local": true,
	}
)

// ValueForValidation returns the sanitized value of an input or textarea.
// An empty value is reported as absent, as is any value of other elements.
func (e Element) ValueForValidation() (string, bool) {
	var v string
	switch e.LocalName() {
	case "input":
		var ok bool
		if v, ok = e.inputValue(); !ok {
			return "", false
		}
	case "textarea":
		v = e.textareaValue()
	default:
		return "", false
	}
	if v == "" {
		return "", false
	}
	return v, true
}

func (e Element) inputValue() (string, bool) {
	typ := e.inputType()
	switch typ {
	case "file":
		return "", false
	case "checkbox", "radio":
		if !e.Checked() {
			return "", false
		}
		if v, ok := e.Attribute("value"); ok {
			return v, true
		}
		return "on", true
	}

	raw := ""
	if dirty := e.n().value; dirty != nil {
		raw = *dirty
	} else if v, ok := e.Attribute("value"); ok {
		raw = v
	}

	if fn, ok := valueSanitizers[typ]; ok {
		return fn(raw, e.hasAttr("multiple")), true
	}
	if rawTypes[typ] {
		return raw, true
	}
	return stripLineBreaks(raw), true
}

func (e Element) textareaValue() string {
	if dirty := e.n().value; dirty != nil {
		return sanitizer.NormalizeNewlines(*dirty)
	}
	return sanitizer.NormalizeNewlines(e.TextContent())
}

// Options lists the options of a select in tree order with their effective
// selectedness, enabledness and value. Non-select elements have none.
func (e Element) Options() []validity.Option {
	if e.LocalName() != "select" {
		return nil
	}
	elems := e.optionElements()
	if len(elems) == 0 {
		return nil
	}

	opts := make([]validity.Option, len(elems))
	lastSelected, firstEnabled := -1, -1
	for i, o := range elems {
		opts[i] = validity.Option{
			Selected: o.Selected(),
			Enabled:  o.optionEnabled(),
			Value:    o.OptionValue(),
		}
		if opts[i].Selected {
			lastSelected = i
		}
		if opts[i].Enabled && firstEnabled < 0 {
			firstEnabled = i
		}
	}

	if e.hasAttr("multiple") {
		return opts
	}
	// A single-choice select keeps at most the last selected option and,
	// when shown as a drop-down, falls back to the first enabled one.
	for i := range opts {
		opts[i].Selected = i == lastSelected
	}
	if lastSelected < 0 && firstEnabled >= 0 && e.displaySize() == 1 {
		opts[firstEnabled].Selected = true
	}
	return opts
}

// optionElements collects descendant options without descending into them.
func (e Element) optionElements() []Element {
	var out []Element
	for _, c := range e.Children() {
		switch c.LocalName() {
		case "option":
			out = append(out, c)
		case "":
		default:
			out = append(out, c.optionElements()...)
		}
	}
	return out
}

// displaySize parses the size attribute of a select; 1 means a drop-down.
func (e Element) displaySize() int {
	raw, ok := e.Attribute("size")
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(sanitizer.Trim(raw))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Selected reports the raw selectedness of an option: the dirty state if
// set, else the presence of the selected attribute. Select-level defaults
// are applied by Options.
func (e Element) Selected() bool {
	if s := e.n().selected; s != nil {
		return *s
	}
	return e.hasAttr("selected")
}

// OptionValue is the value attribute of an option, or its text with ASCII
// whitespace stripped and collapsed.
func (e Element) OptionValue() string {
	if v, ok := e.Attribute("value"); ok {
		return v
	}
	return sanitizer.CollapseWhitespace(e.TextContent())
}

func (e Element) optionEnabled() bool {
	if e.hasAttr("disabled") {
		return false
	}
	p, ok := e.Parent()
	return !ok || p.LocalName() != "optgroup" || !p.hasAttr("disabled")
}

// Label returns the name attribute of a control, falling back to its id.
func (e Element) Label() string {
	for _, name := range []string{"name", "id"} {
		if v, ok := e.Attribute(name); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
