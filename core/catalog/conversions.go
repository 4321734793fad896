// Package catalog - Conversion tables by quantity kind
// Prefixed SI units (km, kPa, ms, ...) come from prefix expansion and are
// not listed here.
package catalog

const piDigits = "3.14159265358979323846264338327950288419716939937510"

var tables = []Table{
	{Kind: "length", Base: "m", Units: []Conversion{
		{Symbol: "Ang", Description: "Angstrom", Factor: "1e-10"},
		{Symbol: "au", Description: "Astronomical unit", Factor: "149597900000"},
		{Symbol: "fath", Description: "Fathom", Factor: "1.8288"},
		{Symbol: "fm", Description: "Femtometer", Factor: "1e-15"},
		{Symbol: "dm", Description: "Decimeter", Factor: "0.1"},
		{Symbol: "inch", Description: "Inch", Factor: "0.0254"},
		{Symbol: "ft", Description: "Foot", Factor: "0.3048"},
		{Symbol: "yd", Description: "Yard", Factor: "0.9144"},
		{Symbol: "mi", Description: "Mile", Factor: "1609.344"},
		{Symbol: "fur", Description: "Furlong", Factor: "201.168"},
		{Symbol: "ltyr", Description: "Lightyear", Factor: "9.46052840488e15"},
		{Symbol: "Nmi", Description: "Nautical mile", Factor: "1852"},
		{Symbol: "pc", Description: "Parsec", Factor: "3.085678e16"},
		{Symbol: "rod", Description: "Rod", Factor: "5.0292"},
	}},

	{Kind: "area", Base: "pow(m, 2)", Units: []Conversion{
		{Symbol: "acre", Description: "Acre", Factor: "4046.8564224"},
		{Symbol: "ha", Description: "Hectare", Factor: "1e4"},
	}},

	{Kind: "volume", Base: "pow(m, 3)", Units: []Conversion{
		{Symbol: "cup", Description: "Cup", Factor: "2.365882365e-4"},
		{Symbol: "floz", Description: "Fluid ounce", Factor: "2.95735295625e-5"},
		{Symbol: "flozUK", Description: "British fluid ounce", Factor: "2.84130625e-5"},
		{Symbol: "gal", Description: "Gallon", Factor: "0.003785411784"},
		{Symbol: "galUK", Description: "British gallon", Factor: "0.00454609"},
		{Symbol: "l", Description: "Liter", Factor: "0.001"},
		{Symbol: "ml", Description: "Milliliter", Factor: "1e-6"},
		{Symbol: "pt", Description: "Pint", Factor: "4.73176473e-4"},
		{Symbol: "qt", Description: "Quart", Factor: "9.46352946e-4"},
		{Symbol: "tbsp", Description: "Tablespoon", Factor: "1.47867647813e-5"},
		{Symbol: "tsp", Description: "Teaspoon", Factor: "4.92892159375e-6"},
	}},

	{Kind: "velocity", Base: "m / s", Units: []Conversion{
		{Symbol: "knot", Description: "Knot", Factor: "1852", Per: "3600"},
		{Symbol: "kph", Description: "Kilometers per hour", Factor: "1000", Per: "3600"},
		{Symbol: "mph", Description: "Miles per hour", Factor: "0.44704"},
	}},

	{Kind: "acceleration", Base: "m / pow(s, 2)"},

	{Kind: "amount of substance", Base: "mol", Units: []Conversion{
		{Symbol: "lbmol", Description: "Pound-mole", Factor: "453.59237"},
	}},

	{Kind: "concentration", Base: "M"},

	{Kind: "mass", Base: "kg", Units: []Conversion{
		{Symbol: "amu", Description: "Atomic mass unit", Factor: "1.6605402e-27"},
		{Symbol: "gm", Description: "Gram", Factor: "0.001"},
		{Symbol: "lb", Description: "Pound mass", Factor: "0.45359237"},
		{Symbol: "mg", Description: "Milligram", Factor: "1e-6"},
		{Symbol: "mton", Description: "Metric ton", Factor: "1000"},
		{Symbol: "oz", Description: "Ounce", Factor: "0.028349523125"},
		{Symbol: "slug", Description: "Slug", Factor: "14.5939029372"},
		{Symbol: "ton", Description: "Ton", Factor: "907.18474"},
		{Symbol: "tonUK", Description: "Long ton", Factor: "1016.047"},
	}},

	{Kind: "force", Base: "N", Units: []Conversion{
		{Symbol: "dyne", Description: "Dyne", Factor: "1e-5"},
		{Symbol: "kgf", Description: "Kilogram force", Factor: "9.80665"},
		{Symbol: "lbf", Description: "Pound force", Factor: "4.44822161526"},
		{Symbol: "tonf", Description: "Ton force", Factor: "8896.44323052"},
	}},

	{Kind: "energy", Base: "J", Units: []Conversion{
		{Symbol: "Btu", Description: "British thermal unit", Factor: "1055.05585262"},
		{Symbol: "cal", Description: "Calorie", Factor: "4.1868"},
		{Symbol: "erg", Description: "Erg", Factor: "1e-7"},
		{Symbol: "eV", Description: "Electron volt", Factor: "1.60217733e-19"},
		{Symbol: "ftlb", Description: "Foot-pound", Factor: "1.35581794833"},
		{Symbol: "kcal", Description: "Kilocalorie", Factor: "4186.8"},
		{Symbol: "kWh", Description: "Kilowatt-hour", Factor: "3600000"},
		{Symbol: "latm", Description: "Liter-atmosphere", Factor: "101.325"},
	}},

	{Kind: "power", Base: "W", Units: []Conversion{
		{Symbol: "hp", Description: "Horsepower", Factor: "745.699871582"},
	}},

	{Kind: "pressure", Base: "Pa", Units: []Conversion{
		{Symbol: "atm", Description: "Atmosphere", Factor: "101325"},
		{Symbol: "bar", Description: "Bar", Factor: "1e5"},
		{Symbol: "inH2O", Description: "Inches of water", Factor: "249.08891"},
		{Symbol: "inHg", Description: "Inches of mercury", Factor: "3386.38815789"},
		{Symbol: "mmH2O", Description: "Millimeters of water", Factor: "9.80665"},
		{Symbol: "mmHg", Description: "Millimeters of mercury", Factor: "133.322387415"},
		{Symbol: "psi", Description: "Pounds per square inch", Factor: "6894.75729317"},
		{Symbol: "torr", Description: "Torr", Factor: "101325", Per: "760"},
	}},

	{Kind: "time", Base: "s", Units: []Conversion{
		{Symbol: "minute", Description: "Minute", Factor: "60"},
		{Symbol: "hr", Description: "Hour", Factor: "3600"},
		{Symbol: "day", Description: "Day", Factor: "86400"},
		{Symbol: "week", Description: "Week", Factor: "604800"},
		{Symbol: "fortnight", Description: "Fortnight", Factor: "1209600"},
		{Symbol: "yr", Description: "Year", Factor: "31556925.9746784"},
	}},

	{Kind: "angle", Base: "rad", Units: []Conversion{
		{Symbol: "deg", Description: "Degree", Factor: piDigits, Per: "180"},
	}},

	// Celsius and Fahrenheit need offsets, see DegC and DegF
	{Kind: "temperature", Base: "K", Units: []Conversion{
		{Symbol: "R", Description: "Rankine", Factor: "5", Per: "9"},
	}},

	{Kind: "current", Base: "A"},
	{Kind: "luminous intensity", Base: "cd"},
	{Kind: "frequency", Base: "Hz"},
	{Kind: "electric charge", Base: "C"},
	{Kind: "voltage", Base: "V"},
	{Kind: "capacitance", Base: "F"},
	{Kind: "electrical resistance", Base: "ohm"},
	{Kind: "electrical conductance", Base: "S"},
	{Kind: "magnetic flux", Base: "Wb"},
	{Kind: "magnetic field strength", Base: "T"},
	{Kind: "inductance", Base: "H"},
}
