package quantity

import (
	"math"
	"strconv"
	"strings"
)

// String renders "<magnitude> * <display units>  # <description> [<kind>]".
// Units are omitted for scalars; the comment is omitted when unlabeled.
//
//	1.0 * m
//	1.0 / (kg * m * s)
//	9.80665 * m / s**2  # Acceleration of gravity [acceleration]
func (q Quantity) String() string {
	var b strings.Builder
	b.WriteString(FormatMagnitude(q.Magnitude()))
	b.WriteString(q.UnitSuffix())

	if q.description != "" || q.kind != "" {
		b.WriteString("  #")
		if q.description != "" {
			b.WriteString(" ")
			b.WriteString(q.description)
		}
		if q.kind != "" {
			b.WriteString(" [")
			b.WriteString(q.kind)
			b.WriteString("]")
		}
	}
	return b.String()
}

// UnitSuffix renders the display units the way they follow the magnitude:
// " * m", " / s", " * kg * m / s**2", or "" for scalars.
func (q Quantity) UnitSuffix() string {
	num, den := q.display.Ratio()
	switch {
	case num != "" && den != "":
		return " * " + num + " / " + den
	case num != "":
		return " * " + num
	case den != "":
		return " / " + den
	default:
		return ""
	}
}

// FormatMagnitude renders a float the shortest way that round-trips, always
// with a decimal point or exponent: 1.0, 0.5, 1e-05, 1.6e+16.
func FormatMagnitude(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.LastIndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
