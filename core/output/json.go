package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter renders machine-readable JSON
type JSONFormatter struct {
	Indent string
}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render writes a single result as an object and several as an array
func (f *JSONFormatter) Render(w io.Writer, results ...*Result) error {
	if len(results) == 1 {
		return f.encode(w, results[0])
	}
	if results == nil {
		results = []*Result{}
	}
	return f.encode(w, results)
}

// RenderUnits writes the unit table
func (f *JSONFormatter) RenderUnits(w io.Writer, table *UnitTable) error {
	return f.encode(w, table)
}

func (f *JSONFormatter) encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", f.Indent)
	return enc.Encode(v)
}
