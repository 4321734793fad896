// Package unitfunc adapts functions between plain numbers and quantities.
package unitfunc

import (
	"unties/core/quantity"
	uerrors "unties/internal/errors"
)

// Func is a function over quantities
type Func func(args ...quantity.Quantity) (quantity.Quantity, error)

// NumericFunc is a function over plain numbers
type NumericFunc func(args ...float64) float64

// CheckedNumericFunc is a function over plain numbers that can fail
type CheckedNumericFunc func(args ...float64) (float64, error)

// Unitless turns fn into a plain numeric function. Argument i is read as a
// magnitude in argUnits[i]; the result is the magnitude of fn's result in
// ret.
//
//	force := Unitless(lbf, []quantity.Quantity{mm, N.Div(m)}, springForce)
//	force(3, 2) // 0.0013488536585984146
func Unitless(ret quantity.Quantity, argUnits []quantity.Quantity, fn Func) CheckedNumericFunc {
	return func(args ...float64) (float64, error) {
		if err := checkArity(len(argUnits), len(args)); err != nil {
			return 0, err
		}

		in := make([]quantity.Quantity, len(args))
		for i, a := range args {
			in[i] = argUnits[i].Scale(a)
		}

		out, err := fn(in...)
		if err != nil {
			return 0, err
		}
		if err := out.RequireSameUnits(ret); err != nil {
			return 0, err
		}
		return out.UnitsOf(ret).Magnitude(), nil
	}
}

// Unitified turns a plain numeric function into a function over
// quantities. Each argument must share the dimension of its unit in
// argUnits and is passed to fn as its magnitude in that unit; fn's result
// scales ret.
func Unitified(ret quantity.Quantity, argUnits []quantity.Quantity, fn NumericFunc) Func {
	return func(args ...quantity.Quantity) (quantity.Quantity, error) {
		if err := checkArity(len(argUnits), len(args)); err != nil {
			return quantity.Quantity{}, err
		}

		in := make([]float64, len(args))
		for i, a := range args {
			if err := a.RequireSameUnits(argUnits[i]); err != nil {
				return quantity.Quantity{}, err
			}
			in[i] = a.UnitsOf(argUnits[i]).Magnitude()
		}
		return ret.Scale(fn(in...)), nil
	}
}

func checkArity(want, got int) error {
	if want != got {
		return uerrors.Newf(uerrors.TypeInput, "expected %d argument(s), got %d", want, got)
	}
	return nil
}
