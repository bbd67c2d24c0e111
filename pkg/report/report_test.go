package report_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/dom"
	"github.com/dmitrymomot/formkit/pkg/report"
	"github.com/dmitrymomot/formkit/pkg/validity"
)

const markup = `<form>
<input type="email" name="email" value="nope">
<input type="number" name="qty" max="5" step="2" value="3">
<textarea name="note"></textarea>
<select name="pick" required><option value="">-</option><option>a</option></select>
<button>send</button>
</form>`

func buildReport(t *testing.T) report.Report {
	t.Helper()
	doc, err := dom.Parse(strings.NewReader(markup))
	require.NoError(t, err)
	return report.Build(doc, nil)
}

func TestBuild(t *testing.T) {
	r := buildReport(t)

	assert.False(t, r.Valid)
	assert.Equal(t, 5, r.Total)
	assert.Equal(t, 3, r.Invalid)
	assert.Equal(t, map[string]int{"typeMismatch": 1, "stepMismatch": 1, "valueMissing": 1}, r.Counts)

	require.Len(t, r.Entries, 5)
	email := r.Entries[0]
	assert.Equal(t, 0, email.Index)
	assert.Equal(t, "input", email.Tag)
	assert.Equal(t, "email", email.Type)
	assert.Equal(t, "text-input", email.Kind)
	assert.Equal(t, "email", email.Name)
	assert.True(t, email.HasValue)
	assert.False(t, email.Valid)
	assert.Equal(t, []string{"typeMismatch"}, email.Flags)
	assert.True(t, email.State.TypeMismatch)

	assert.Equal(t, "number-input", r.Entries[1].Kind)
	assert.Equal(t, []string{"stepMismatch"}, r.Entries[1].Flags)

	note := r.Entries[2]
	assert.True(t, note.Valid)
	assert.False(t, note.HasValue)
	assert.Nil(t, note.Flags)

	assert.Equal(t, "button", r.Entries[4].Kind)
	assert.True(t, r.Entries[4].Valid)

	invalid := r.InvalidEntries()
	require.Len(t, invalid, 3)
	assert.Equal(t, "pick", invalid[2].Name)
}

func TestBuildEmptyDocument(t *testing.T) {
	r := report.Build(dom.NewDocument(), validity.New())
	assert.True(t, r.Valid)
	assert.Zero(t, r.Total)
	assert.Nil(t, r.Counts)
	assert.Empty(t, r.Entries)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]report.Format{
		"text":   report.FormatText,
		"JSON":   report.FormatJSON,
		"yml":    report.FormatYAML,
		" html ": report.FormatHTML,
	} {
		got, err := report.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := report.ParseFormat("xml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
	assert.ErrorIs(t, report.Report{}.Write(&bytes.Buffer{}, "csv"), report.ErrUnknownFormat)
}

func TestWriteJSON(t *testing.T) {
	r := buildReport(t)
	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, report.FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, false, decoded["valid"])
	assert.EqualValues(t, 5, decoded["total"])
	entries := decoded["entries"].([]any)
	first := entries[0].(map[string]any)
	assert.Equal(t, []any{"typeMismatch"}, first["flags"])
	assert.Equal(t, true, first["state"].(map[string]any)["typeMismatch"])
}

func TestWriteYAML(t *testing.T) {
	r := buildReport(t)
	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, report.FormatYAML))

	var decoded report.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, r, decoded)
}

func TestWriteText(t *testing.T) {
	r := buildReport(t)
	r.Source = "signup.html"
	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, report.FormatText))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "signup.html", lines[0])
	assert.Equal(t, []string{"#", "TAG", "KIND", "NAME", "VALID", "FLAGS"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"0", "input", "text-input", "email", "no", "typeMismatch"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"4", "button", "button", "-", "yes", "-"}, strings.Fields(lines[6]))
	assert.Equal(t, "3 of 5 controls invalid", lines[7])
}

func TestHTML(t *testing.T) {
	r := buildReport(t)
	r.Source = `<script>alert(1)</script>`

	var buf bytes.Buffer
	require.NoError(t, report.Component(r).Render(context.Background(), &buf))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<section id="formkit-report"`))
	assert.Contains(t, out, `data-valid="false"`)
	assert.Contains(t, out, `<code>typeMismatch</code>`)
	assert.Contains(t, out, `<p class="summary">3 of 5 controls invalid</p>`)
	assert.Contains(t, out, `<tr data-valid="true"><td>4</td><td>button</td>`)
	assert.Contains(t, out, `&lt;script&gt;`)
	assert.NotContains(t, out, `<script>`)

	buf.Reset()
	require.NoError(t, r.Write(&buf, report.FormatHTML))
	assert.True(t, strings.HasPrefix(strings.ToLower(buf.String()), "<!doctype html>"))
	assert.True(t, strings.HasSuffix(buf.String(), "</body></html>"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, report.Component(r).Render(ctx, &bytes.Buffer{}))
}
