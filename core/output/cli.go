package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CLIFormatter renders plain terminal text
type CLIFormatter struct{}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format { return FormatCLI }

// Render prints a single result as its text; several results are listed
// one per line behind their aligned expressions.
func (f *CLIFormatter) Render(w io.Writer, results ...*Result) error {
	if len(results) == 1 {
		_, err := fmt.Fprintln(w, results[0].Text())
		return err
	}

	width := 0
	for _, r := range results {
		width = max(width, len(r.Expression))
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width, r.Expression, r.Text()); err != nil {
			return err
		}
	}
	return nil
}

// RenderUnits prints one titled block per quantity kind
func (f *CLIFormatter) RenderUnits(w io.Writer, table *UnitTable) error {
	title := cases.Title(language.English)

	for i, g := range table.Groups {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		heading := title.String(g.Kind)
		if _, err := fmt.Fprintf(w, "%s\n%s\n", heading, strings.Repeat("=", len(heading))); err != nil {
			return err
		}

		width := 0
		for _, u := range g.Units {
			width = max(width, len(u.Symbol))
		}
		for _, u := range g.Units {
			line := fmt.Sprintf("  %-*s  %s", width, u.Symbol, u.Description)
			if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
				return err
			}
		}
	}
	return nil
}
