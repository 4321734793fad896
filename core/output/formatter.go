// Package output provides output formatting interfaces.
// This package produces human and machine-readable renderings of
// evaluated quantities and unit tables.
package output

import (
	"io"
	"sort"
	"sync"

	uerrors "unties/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is human-readable terminal text
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown table
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for evaluated quantities
	Render(w io.Writer, results ...*Result) error

	// RenderUnits produces output for a unit table
	RenderUnits(w io.Writer, table *UnitTable) error
}

// FormatterRegistry manages formatter registration
type FormatterRegistry struct {
	mu         sync.RWMutex
	formatters map[Format]Formatter
}

// NewFormatterRegistry creates an empty formatter registry
func NewFormatterRegistry() *FormatterRegistry {
	return &FormatterRegistry{formatters: make(map[Format]Formatter)}
}

// DefaultRegistry returns a registry holding the cli, json and markdown
// formatters
func DefaultRegistry() *FormatterRegistry {
	r := NewFormatterRegistry()
	for _, f := range []Formatter{&CLIFormatter{}, &JSONFormatter{Indent: "  "}, &MarkdownFormatter{}} {
		_ = r.Register(f)
	}
	return r
}

// Register adds a formatter to the registry
func (r *FormatterRegistry) Register(f Formatter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formatters[f.Format()]; exists {
		return uerrors.Duplicate("formatter", string(f.Format()))
	}
	r.formatters[f.Format()] = f
	return nil
}

// GetFormatter returns a formatter for a format type
func (r *FormatterRegistry) GetFormatter(format Format) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formatters[format]
	return f, ok
}

// GetAll returns all registered formatters ordered by format
func (r *FormatterRegistry) GetAll() []Formatter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Formatter, 0, len(r.formatters))
	for _, f := range r.formatters {
		all = append(all, f)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Format() < all[j].Format() })
	return all
}

// NewFormatter returns the default formatter for format
func NewFormatter(format string) (Formatter, error) {
	f, ok := DefaultRegistry().GetFormatter(Format(format))
	if !ok {
		return nil, uerrors.Newf(uerrors.TypeInput, "unknown output format %q (want cli, json or markdown)", format)
	}
	return f, nil
}
