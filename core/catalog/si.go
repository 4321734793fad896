// Package catalog - SI base units, prefixes and derived units
package catalog

import "unties/core/registry"

var prefixes = []registry.Prefix{
	{Symbol: "G", Name: "giga", Factor: 1e9},
	{Symbol: "M", Name: "mega", Factor: 1e6},
	{Symbol: "k", Name: "kilo", Factor: 1e3},
	{Symbol: "c", Name: "centi", Factor: 1e-2},
	{Symbol: "m", Name: "milli", Factor: 1e-3},
	{Symbol: "u", Name: "micro", Factor: 1e-6},
	{Symbol: "n", Name: "nano", Factor: 1e-9},
}

var baseUnits = []Definition{
	{Symbol: "m", Description: "Meter", Prefixed: true},
	{Symbol: "kg", Description: "Kilogram"},
	{Symbol: "s", Description: "Second", Prefixed: true},
	{Symbol: "A", Description: "Ampere", Prefixed: true},
	{Symbol: "K", Description: "Kelvin"},
	{Symbol: "cd", Description: "Candela"},
	{Symbol: "mol", Description: "Mole", Prefixed: true},
}

// Official SI derived units, plus molar concentration
var derivedUnits = []Definition{
	{Symbol: "N", Description: "Newton", Expr: "kg * m / pow(s, 2)", Prefixed: true},
	{Symbol: "J", Description: "Joule", Expr: "N * m", Prefixed: true},
	{Symbol: "Pa", Description: "Pascal", Expr: "N / pow(m, 2)", Prefixed: true},
	{Symbol: "Hz", Description: "Hertz", Expr: "1 / s", Prefixed: true},
	{Symbol: "rad", Description: "Radian", Expr: "m / m"},
	{Symbol: "W", Description: "Watt", Expr: "J / s", Prefixed: true},
	{Symbol: "C", Description: "Coulomb", Expr: "s * A", Prefixed: true},
	{Symbol: "V", Description: "Volt", Expr: "W / A", Prefixed: true},
	{Symbol: "F", Description: "Farad", Expr: "C / V", Prefixed: true},
	{Symbol: "ohm", Description: "Ohm", Expr: "V / A", Prefixed: true},
	{Symbol: "S", Description: "Siemens", Expr: "1 / ohm", Prefixed: true},
	{Symbol: "Wb", Description: "Weber", Expr: "J / A", Prefixed: true},
	{Symbol: "T", Description: "Tesla", Expr: "V * s / pow(m, 2)", Prefixed: true},
	{Symbol: "H", Description: "Henry", Expr: "V * s / A", Prefixed: true},
	{Symbol: "M", Description: "Molar", Expr: "1000 * mol / pow(m, 3)"},
}
