package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/gi8lino/jirareport/internal/summary"
)

// Format selects how the report is written.
type Format string

const (
	FormatJSON     Format = "json"
	FormatTemplate Format = "template"
)

// FuncMap returns sprig's text helpers plus report specific ones.
func FuncMap() template.FuncMap {
	fm := sprig.TxtFuncMap()
	fm["prettyJSON"] = summary.FormatEmbedded
	fm["points"] = formatPoints
	return fm
}

// Write renders the summaries to w.
func Write(w io.Writer, summaries []summary.Summary, format Format, tmpl string) error {
	if summaries == nil {
		summaries = []summary.Summary{}
	}

	switch format {
	case FormatJSON, "":
		return writeJSON(w, summaries)
	case FormatTemplate:
		return writeTemplate(w, summaries, tmpl)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// writeJSON writes a JSON array indented with four spaces.
func writeJSON(w io.Writer, summaries []summary.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(summaries); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// writeTemplate executes tmpl once with the summaries as data.
func writeTemplate(w io.Writer, summaries []summary.Summary, tmpl string) error {
	t, err := template.New("report").Funcs(FuncMap()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}
	if err := t.Execute(w, summaries); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	return nil
}

// formatPoints renders an estimate as sent, "-" when null.
func formatPoints(p any) string {
	switch v := p.(type) {
	case nil:
		return "-"
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprint(v)
	}
}
