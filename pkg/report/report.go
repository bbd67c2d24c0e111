package report

import (
	"github.com/dmitrymomot/formkit/pkg/dom"
	"github.com/dmitrymomot/formkit/pkg/validity"
)

// Entry is the validity of one listed control.
type Entry struct {
	Index    int            `json:"index" yaml:"index"`
	Tag      string         `json:"tag" yaml:"tag"`
	Type     string         `json:"type,omitempty" yaml:"type,omitempty"`
	Kind     string         `json:"kind" yaml:"kind"`
	Name     string         `json:"name,omitempty" yaml:"name,omitempty"`
	HasValue bool           `json:"has_value" yaml:"has_value"`
	Valid    bool           `json:"valid" yaml:"valid"`
	Flags    []string       `json:"flags,omitempty" yaml:"flags,omitempty"`
	State    validity.State `json:"state" yaml:"state"`
}

// Report aggregates the entries of one document.
type Report struct {
	Source  string         `json:"source,omitempty" yaml:"source,omitempty"`
	Valid   bool           `json:"valid" yaml:"valid"`
	Total   int            `json:"total" yaml:"total"`
	Invalid int            `json:"invalid" yaml:"invalid"`
	Counts  map[string]int `json:"counts,omitempty" yaml:"counts,omitempty"`
	Entries []Entry        `json:"entries" yaml:"entries"`
}

// Build evaluates every listed control of doc. A nil evaluator uses the
// package default of pkg/validity.
func Build(doc *dom.Document, ev *validity.Evaluator) Report {
	if ev == nil {
		ev = validity.New()
	}

	controls := doc.Controls()
	r := Report{
		Valid:   true,
		Total:   len(controls),
		Entries: make([]Entry, 0, len(controls)),
	}
	for i, c := range controls {
		state := ev.Check(c)
		typ, _ := c.Attribute("type")
		_, hasValue := c.ValueForValidation()

		e := Entry{
			Index:    i,
			Tag:      c.LocalName(),
			Type:     typ,
			Kind:     validity.Classify(c).String(),
			Name:     c.Label(),
			HasValue: hasValue,
			Valid:    state.Valid(),
			Flags:    state.FlagNames(),
			State:    state,
		}
		if !e.Valid {
			r.Valid = false
			r.Invalid++
			if r.Counts == nil {
				r.Counts = make(map[string]int)
			}
			for _, f := range e.Flags {
				r.Counts[f]++
			}
		}
		r.Entries = append(r.Entries, e)
	}
	return r
}

// InvalidEntries returns only the entries with at least one flag raised.
func (r Report) InvalidEntries() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if !e.Valid {
			out = append(out, e)
		}
	}
	return out
}
