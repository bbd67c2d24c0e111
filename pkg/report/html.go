package report

import (
	"context"
	"io"
)

//go:generate templ generate

// ElementID is the id of the root element rendered by Component. Live pages
// patch the report by targeting it.
const ElementID = "formkit-report"

// WriteHTML renders the standalone page to w.
func WriteHTML(w io.Writer, r Report) error {
	return Page(r).Render(context.Background(), w)
}
