package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MarkdownFormatter renders markdown tables
type MarkdownFormatter struct{}

// Format returns FormatMarkdown
func (f *MarkdownFormatter) Format() Format { return FormatMarkdown }

// Render writes one table row per result
func (f *MarkdownFormatter) Render(w io.Writer, results ...*Result) error {
	var b strings.Builder
	b.WriteString("| Expression | Magnitude | Units | Kind | Description |\n")
	b.WriteString("|---|---:|---|---|---|\n")
	for _, r := range results {
		fmt.Fprintf(&b, "| `%s` | %s | %s | %s | %s |\n",
			r.Expression, r.Magnitude, cell(r.Units), cell(r.Kind), cell(r.Description))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderUnits writes one section per quantity kind
func (f *MarkdownFormatter) RenderUnits(w io.Writer, table *UnitTable) error {
	title := cases.Title(language.English)

	var b strings.Builder
	for i, g := range table.Groups {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", title.String(g.Kind))
		b.WriteString("| Symbol | Description |\n|---|---|\n")
		for _, u := range g.Units {
			fmt.Fprintf(&b, "| `%s` | %s |\n", u.Symbol, cell(u.Description))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", `\|`)
}
