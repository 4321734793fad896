package quantity

import (
	"math"

	uerrors "unties/internal/errors"
)

// Standardized returns q expressed purely in base units: normalization
// factor 1 and display name equal to the dimension.
func (q Quantity) Standardized() Quantity {
	c := q.bare()
	c.normal = 1
	c.display = q.dims.Clone()
	return c
}

// Normalized returns exactly one display unit of q
func (q Quantity) Normalized() Quantity {
	c := q.bare()
	c.value = 1 / c.factor()
	return c
}

// UnitsOf converts q into the units of target. The magnitude changes, the
// base-unit value does not. Targets of a different dimension are allowed;
// the leftover dimension stays in base units, so (m/s).UnitsOf(inch)
// reads inch / s.
func (q Quantity) UnitsOf(target Quantity) Quantity {
	result := q.Standardized()
	pivot := target.Normalized()

	base := pivot.Standardized()
	base.powInPlace(ratMinusOne, -1)
	result.joinInPlace(base)

	return result.Mul(pivot)
}

// Float64 returns the base-unit magnitude of a dimensionless quantity.
// Unitless quantities such as radians qualify; anything carrying a
// dimension fails with ErrNotDimensionless.
func (q Quantity) Float64() (float64, error) {
	if !q.dims.IsEmpty() {
		return 0, uerrors.NotDimensionless(q.Standardized())
	}
	return q.value, nil
}

// Exp returns e**q for a dimensionless q
func (q Quantity) Exp() (float64, error) {
	return q.apply(math.Exp)
}

// Log returns the natural logarithm of a dimensionless q
func (q Quantity) Log() (float64, error) {
	return q.apply(math.Log)
}

// Log10 returns the decimal logarithm of a dimensionless q
func (q Quantity) Log10() (float64, error) {
	return q.apply(math.Log10)
}

// Cos returns the cosine of an angle
func (q Quantity) Cos() (float64, error) {
	return q.apply(math.Cos)
}

// Sin returns the sine of an angle
func (q Quantity) Sin() (float64, error) {
	return q.apply(math.Sin)
}

// Tan returns the tangent of an angle
func (q Quantity) Tan() (float64, error) {
	return q.apply(math.Tan)
}

func (q Quantity) apply(fn func(float64) float64) (float64, error) {
	f, err := q.Float64()
	if err != nil {
		return 0, err
	}
	return fn(f), nil
}
