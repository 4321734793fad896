// Package quantity implements dimensioned quantities: a magnitude paired with
// a dimension fingerprint of base-unit exponents, checked at runtime.
//
// A Quantity stores its magnitude in base units (Value) together with a
// normalization factor that converts it to the magnitude in its display
// units (Magnitude = Value * NormalFactor). The dimension map drives every
// compatibility check; the display map is cosmetic and records which named
// units were combined.
//
// Quantities are values. Every exported operation returns a new Quantity and
// leaves its operands untouched.
package quantity

import (
	"unties/core/exponent"
)

// Quantity is a magnitude with a dimension. The zero value is the
// dimensionless scalar 0.
type Quantity struct {
	value       float64
	normal      float64
	dims        exponent.Map
	display     exponent.Map
	description string
	kind        string
}

// Scalar returns a dimensionless quantity
func Scalar(v float64) Quantity {
	return Quantity{value: v, normal: 1}
}

// One returns the dimensionless identity
func One() Quantity {
	return Scalar(1)
}

// Unit returns a fundamental unit with dimension {symbol: 1}.
// Two units built from the same symbol are equal.
func Unit(symbol string) Quantity {
	return Quantity{
		value:   1,
		normal:  1,
		dims:    exponent.Of(symbol),
		display: exponent.Of(symbol),
	}
}

// Units returns the product of fundamental units, one per symbol
func Units(symbols ...string) Quantity {
	q := One()
	for _, s := range symbols {
		q.joinInPlace(Unit(s))
	}
	return q
}

// FromExponents returns a compound fundamental unit, e.g. {"m": 1, "s": -1}
func FromExponents(exps map[string]int64) Quantity {
	m := exponent.FromInts(exps)
	return Quantity{value: 1, normal: 1, dims: m, display: m.Clone()}
}

// Value returns the magnitude expressed in base units
func (q Quantity) Value() float64 {
	return q.value
}

// Magnitude returns the magnitude expressed in the display units
func (q Quantity) Magnitude() float64 {
	return q.value * q.factor()
}

// NormalFactor returns the factor converting Value into Magnitude
func (q Quantity) NormalFactor() float64 {
	return q.factor()
}

// Dimension returns a copy of the base-unit exponent map
func (q Quantity) Dimension() exponent.Map {
	return q.dims.Clone()
}

// DisplayName returns a copy of the display-unit exponent map
func (q Quantity) DisplayName() exponent.Map {
	return q.display.Clone()
}

// Description returns the human label, if any
func (q Quantity) Description() string {
	return q.description
}

// Kind returns the quantity kind label, if any
func (q Quantity) Kind() string {
	return q.kind
}

// IsScalar reports whether q has neither dimension nor display units
func (q Quantity) IsScalar() bool {
	return q.dims.IsEmpty() && q.display.IsEmpty()
}

// IsDimensionless reports whether q has no dimension
func (q Quantity) IsDimensionless() bool {
	return q.dims.IsEmpty()
}

// IsUnitless reports whether q is dimensionless but still carries a display
// unit, like a radian.
func (q Quantity) IsUnitless() bool {
	return q.dims.IsEmpty() && !q.display.IsEmpty()
}

// Clone returns a deep copy, labels included
func (q Quantity) Clone() Quantity {
	return Quantity{
		value:       q.value,
		normal:      q.factor(),
		dims:        q.dims.Clone(),
		display:     q.display.Clone(),
		description: q.description,
		kind:        q.kind,
	}
}

// Rename relabels q as a single display symbol while keeping its dimension.
// The normalization factor becomes 1/Value so one unit of the new symbol
// converts back to the current value.
func (q Quantity) Rename(symbol string) Quantity {
	c := q.bare()
	c.display = exponent.Of(symbol)
	c.normal = 1 / q.value
	return c
}

// WithDescription returns a copy carrying a human label
func (q Quantity) WithDescription(description string) Quantity {
	c := q.Clone()
	c.description = description
	return c
}

// WithKind returns a copy carrying a quantity kind label
func (q Quantity) WithKind(kind string) Quantity {
	c := q.Clone()
	c.kind = kind
	return c
}

func (q Quantity) factor() float64 {
	if q.normal == 0 {
		return 1
	}
	return q.normal
}

// bare copies q without its labels; arithmetic results are never named.
func (q Quantity) bare() Quantity {
	c := q.Clone()
	c.description = ""
	c.kind = ""
	return c
}
