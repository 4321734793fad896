package quantity

import (
	"math"
	"math/big"

	"unties/core/exponent"
	uerrors "unties/internal/errors"
)

var (
	ratOne      = big.NewRat(1, 1)
	ratMinusOne = big.NewRat(-1, 1)

	// Scanned in order; the first match picks the display unit.
	smartExponents = []*big.Rat{
		big.NewRat(1, 3),
		big.NewRat(1, 2),
		big.NewRat(1, 1),
		big.NewRat(2, 1),
		big.NewRat(3, 1),
		big.NewRat(-3, 1),
		big.NewRat(-2, 1),
		big.NewRat(-1, 1),
	}
	reciprocalExponents = []*big.Rat{
		big.NewRat(-1, 2),
		big.NewRat(-1, 3),
	}
)

// Scale multiplies the magnitude by f. Dimension and display are unchanged.
func (q Quantity) Scale(f float64) Quantity {
	c := q.bare()
	c.value *= f
	return c
}

// Join multiplies two quantities without any display-unit heuristics:
// values and normalization factors multiply, exponents add.
func (q Quantity) Join(o Quantity) Quantity {
	c := q.bare()
	c.joinInPlace(o)
	return c
}

// Mul multiplies two quantities.
//
// When q's dimension is o's dimension raised to one of 1/3, 1/2, 1, 2, 3,
// -3, -2, -1 (first match wins) the product is expressed in units of
// o**(1+e), so ft*yd reads yd**2 and ft*gal reads gal**(4/3). Failing that,
// exponents -1/2 and -1/3 express the product in units of 1/q. Negative
// candidates are skipped when o is zero.
func (q Quantity) Mul(o Quantity) Quantity {
	if q.dims.IsEmpty() && o.dims.IsEmpty() {
		return q.Join(o)
	}

	for _, e := range smartExponents {
		if o.value == 0 && e.Sign() < 0 {
			continue
		}
		if q.dims.Equal(o.dims.Scaled(e)) {
			target := o.PowRat(new(big.Rat).Add(ratOne, e))
			return q.Join(o).UnitsOf(target)
		}
	}

	for _, e := range reciprocalExponents {
		if o.value == 0 && e.Sign() < 0 {
			continue
		}
		if q.dims.Equal(o.dims.Scaled(e)) {
			return q.Join(o).UnitsOf(q.PowRat(ratMinusOne))
		}
	}

	return q.Join(o)
}

// Div divides q by o, defined as q * o**-1
func (q Quantity) Div(o Quantity) Quantity {
	return q.Mul(o.PowRat(ratMinusOne))
}

// DivScalar divides the magnitude by f
func (q Quantity) DivScalar(f float64) Quantity {
	return q.Scale(1 / f)
}

// ScalarDiv computes num / q, defined as num * q**-1
func ScalarDiv(num float64, q Quantity) Quantity {
	return q.PowRat(ratMinusOne).Scale(num)
}

// Pow raises q to the power n. Every exponent of the dimension and display
// maps is multiplied by n; value and normalization factor are raised to n.
func (q Quantity) Pow(n float64) Quantity {
	c := q.bare()
	c.powInPlace(exponent.FromFloat(n), n)
	return c
}

// PowRat raises q to an exact rational power
func (q Quantity) PowRat(n *big.Rat) Quantity {
	f, _ := n.Float64()
	c := q.bare()
	c.powInPlace(n, f)
	return c
}

// PowQuantity raises q to a dimensionless quantity
func (q Quantity) PowQuantity(n Quantity) (Quantity, error) {
	f, err := n.Float64()
	if err != nil {
		return Quantity{}, err
	}
	return q.Pow(f), nil
}

// RaiseScalar computes base ** n for a dimensionless n
func RaiseScalar(base float64, n Quantity) (float64, error) {
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	return math.Pow(base, f), nil
}

// Add sums two quantities of identical dimension. The result keeps q's
// display units.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if err := q.RequireSameUnits(o); err != nil {
		return Quantity{}, err
	}
	c := q.bare()
	c.value += o.value
	return c, nil
}

// AddScalar adds a number, promoted to a dimensionless quantity
func (q Quantity) AddScalar(f float64) (Quantity, error) {
	return q.Add(Scalar(f))
}

// Sub subtracts o from q, defined as q + (-o)
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	return q.Add(o.Neg())
}

// SubScalar subtracts a number, promoted to a dimensionless quantity
func (q Quantity) SubScalar(f float64) (Quantity, error) {
	return q.Sub(Scalar(f))
}

// ScalarSub computes num - q
func ScalarSub(num float64, q Quantity) (Quantity, error) {
	return Scalar(num).Sub(q)
}

// Neg negates the magnitude
func (q Quantity) Neg() Quantity {
	return q.Scale(-1)
}

// Abs returns q with a non-negative magnitude
func (q Quantity) Abs() Quantity {
	c := q.bare()
	c.value = math.Abs(c.value)
	return c
}

// RequireSameUnits fails with ErrIncompatibleUnits unless both dimensions match
func (q Quantity) RequireSameUnits(o Quantity) error {
	if !q.dims.Equal(o.dims) {
		return uerrors.IncompatibleUnits(q.dims.Clone(), o.dims.Clone())
	}
	return nil
}

func (q *Quantity) joinInPlace(o Quantity) {
	q.value *= o.value
	q.normal = q.factor() * o.factor()
	q.dims = q.dims.Merged(o.dims)
	q.display = q.display.Merged(o.display)
}

func (q *Quantity) powInPlace(n *big.Rat, f float64) {
	q.dims = q.dims.Scaled(n)
	q.display = q.display.Scaled(n)
	q.value = math.Pow(q.value, f)
	q.normal = math.Pow(q.factor(), f)
}
