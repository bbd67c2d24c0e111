// Package report turns the validity of every control in a document into a
// Report and encodes it as text, JSON, YAML or HTML.
//
//	rep := report.Build(doc, validity.New())
//	if err := rep.Write(os.Stdout, report.FormatText); err != nil {
//	    return err
//	}
//
// The HTML encoding is a templ component so HTTP handlers can stream it or
// patch it into a live page.
package report
