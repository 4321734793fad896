package expression

import (
	"math/big"
	"sort"

	"unties/core/quantity"
)

type function struct {
	arity int
	call  func(args []quantity.Quantity) (quantity.Quantity, error)
}

var functions = map[string]function{
	// pow(x, n) raises x to a dimensionless power
	"pow": {arity: 2, call: func(args []quantity.Quantity) (quantity.Quantity, error) {
		return args[0].PowQuantity(args[1])
	}},
	"sqrt": {arity: 1, call: func(args []quantity.Quantity) (quantity.Quantity, error) {
		return args[0].PowRat(big.NewRat(1, 2)), nil
	}},
	"cbrt": {arity: 1, call: func(args []quantity.Quantity) (quantity.Quantity, error) {
		return args[0].PowRat(big.NewRat(1, 3)), nil
	}},
	"abs": {arity: 1, call: func(args []quantity.Quantity) (quantity.Quantity, error) {
		return args[0].Abs(), nil
	}},
	// to(x, unit) re-expresses x in the display units of unit
	"to": {arity: 2, call: func(args []quantity.Quantity) (quantity.Quantity, error) {
		return Convert(args[0], args[1])
	}},
}

// Functions returns the names of the supported functions
func Functions() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Convert re-expresses q in the units of target. Both must share a dimension.
func Convert(q, target quantity.Quantity) (quantity.Quantity, error) {
	if err := q.RequireSameUnits(target); err != nil {
		return quantity.Quantity{}, err
	}
	return q.UnitsOf(target), nil
}
