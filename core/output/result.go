package output

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"unties/core/exponent"
	"unties/core/quantity"
	"unties/core/registry"
)

// Result is an evaluated quantity prepared for rendering
type Result struct {
	// Expression is the source text, or the symbol of a named constant
	Expression string `json:"expression"`

	// Magnitude is the rendered magnitude in the display units
	Magnitude string `json:"magnitude"`

	// Units is the display unit expression, e.g. "km / h"
	Units string `json:"units,omitempty"`

	// Value is the magnitude in base units
	Value float64 `json:"base_value"`

	// Dimension is the base-unit exponent map
	Dimension exponent.Map `json:"dimension"`

	Description string `json:"description,omitempty"`
	Kind        string `json:"kind,omitempty"`

	suffix string
}

// NewResult prepares q for rendering. A negative precision keeps the
// shortest round-trip magnitude; otherwise the magnitude is rounded to
// that many significant digits.
func NewResult(expression string, q quantity.Quantity, precision int) *Result {
	return &Result{
		Expression:  expression,
		Magnitude:   FormatMagnitude(q.Magnitude(), precision),
		Units:       unitsOf(q),
		Value:       q.Value(),
		Dimension:   q.Dimension(),
		Description: q.Description(),
		Kind:        q.Kind(),
		suffix:      q.UnitSuffix(),
	}
}

// Text renders the result the way a quantity prints itself
func (r *Result) Text() string {
	var b strings.Builder
	b.WriteString(r.Magnitude)
	b.WriteString(r.suffix)
	if r.Description != "" || r.Kind != "" {
		b.WriteString("  #")
		if r.Description != "" {
			b.WriteString(" " + r.Description)
		}
		if r.Kind != "" {
			b.WriteString(" [" + r.Kind + "]")
		}
	}
	return b.String()
}

// FormatMagnitude renders f with the given number of significant digits,
// or the shortest round-trip form when precision is negative
func FormatMagnitude(f float64, precision int) string {
	if precision < 0 || math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		return quantity.FormatMagnitude(f)
	}
	if precision == 0 {
		precision = 1
	}

	abs := math.Abs(f)
	if abs < 1e-4 || abs >= 1e16 {
		return strconv.FormatFloat(f, 'e', precision-1, 64)
	}

	digitsBeforePoint := int32(math.Floor(math.Log10(abs))) + 1
	return decimal.NewFromFloat(f).Round(int32(precision) - digitsBeforePoint).String()
}

func unitsOf(q quantity.Quantity) string {
	num, den := q.DisplayName().Ratio()
	switch {
	case num != "" && den != "":
		return num + " / " + den
	case num != "":
		return num
	case den != "":
		return "1 / " + den
	default:
		return ""
	}
}

// UnitEntry is a single row of a unit table
type UnitEntry struct {
	Symbol      string `json:"symbol"`
	Description string `json:"description,omitempty"`
}

// UnitGroup lists the units of one quantity kind
type UnitGroup struct {
	Kind  string      `json:"kind"`
	Units []UnitEntry `json:"units"`
}

// UnitTable lists registered units by quantity kind
type UnitTable struct {
	Groups []UnitGroup `json:"groups"`
}

// NewUnitTable builds a unit table from reg. A non-empty kind keeps only
// that kind's group. Units without a kind are listed under "other".
func NewUnitTable(reg *registry.Registry, kind string) *UnitTable {
	table := &UnitTable{}
	for _, g := range reg.Groups() {
		label := g.Kind
		if label == "" {
			label = "other"
		}
		if kind != "" && !strings.EqualFold(kind, label) {
			continue
		}

		group := UnitGroup{Kind: label}
		for _, symbol := range g.Symbols {
			u, _ := reg.Unit(symbol)
			group.Units = append(group.Units, UnitEntry{Symbol: symbol, Description: u.Description()})
		}
		table.Groups = append(table.Groups, group)
	}
	return table
}
