// Package dom is a small arena-backed document model for form markup.
//
// A Document owns every node in a flat slice; Element is a cheap handle
// (document pointer plus index) that implements validity.Control, so the
// validity engine can evaluate controls without owning or copying the tree.
//
// Documents come from three places:
//
//   - the builder API (CreateElement, AppendChild, SetAttribute, SetValue, ...)
//   - Parse, which runs the HTML5 parser from golang.org/x/net/html
//   - LoadSnapshot, which decodes a YAML or JSON list of controls
//
// Element.ValueForValidation applies the value sanitization rules of each
// input type before handing the value over, and Element.Options resolves
// option enabledness and the default selection of single-choice selects.
//
//	doc, err := dom.Parse(strings.NewReader(`<input type=email value=" a@b.co ">`))
//	if err != nil {
//	    return err
//	}
//	for _, c := range doc.Controls() {
//	    v, _ := c.ValueForValidation() // "a@b.co"
//	}
package dom
