package quantity

import "math"

// relTolerance absorbs rounding accumulated by chained conversions
const relTolerance = 1e-15

// Equal reports whether q and o have the same dimension and base-unit
// magnitudes equal within a relative tolerance of 1e-15. Display units are
// ignored: 1 inch equals 25.4 mm.
func (q Quantity) Equal(o Quantity) bool {
	// value is already the standardized magnitude
	if !q.dims.Equal(o.dims) {
		return false
	}
	return isClose(q.value, o.value)
}

// EqualScalar compares q with a number promoted to a dimensionless quantity
func (q Quantity) EqualScalar(f float64) bool {
	return q.Equal(Scalar(f))
}

// Cmp compares standardized magnitudes, returning -1, 0 or +1.
// No tolerance is applied.
func (q Quantity) Cmp(o Quantity) (int, error) {
	if err := q.RequireSameUnits(o); err != nil {
		return 0, err
	}
	switch {
	case q.value < o.value:
		return -1, nil
	case q.value > o.value:
		return 1, nil
	default:
		return 0, nil
	}
}

// CmpScalar compares q with a number promoted to a dimensionless quantity
func (q Quantity) CmpScalar(f float64) (int, error) {
	return q.Cmp(Scalar(f))
}

// Less reports q < o
func (q Quantity) Less(o Quantity) (bool, error) {
	return q.compare(o, func(a, b float64) bool { return a < b })
}

// LessEqual reports q <= o
func (q Quantity) LessEqual(o Quantity) (bool, error) {
	return q.compare(o, func(a, b float64) bool { return a <= b })
}

// Greater reports q > o
func (q Quantity) Greater(o Quantity) (bool, error) {
	return q.compare(o, func(a, b float64) bool { return a > b })
}

// GreaterEqual reports q >= o
func (q Quantity) GreaterEqual(o Quantity) (bool, error) {
	return q.compare(o, func(a, b float64) bool { return a >= b })
}

func (q Quantity) compare(o Quantity, cmp func(a, b float64) bool) (bool, error) {
	if err := q.RequireSameUnits(o); err != nil {
		return false, err
	}
	return cmp(q.value, o.value), nil
}

// isClose mirrors math.isclose with rel_tol=1e-15 and abs_tol=0
func isClose(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= relTolerance*math.Max(math.Abs(a), math.Abs(b))
}
