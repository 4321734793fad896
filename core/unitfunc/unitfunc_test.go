package unitfunc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unties/core/catalog"
	"unties/core/expression"
	"unties/core/quantity"
	"unties/core/registry"
)

func setup(t *testing.T) (*registry.Registry, func(string) quantity.Quantity) {
	t.Helper()
	reg, err := catalog.NewStandard()
	require.NoError(t, err)

	return reg, func(src string) quantity.Quantity {
		q, err := expression.Eval(src, reg)
		require.NoError(t, err, src)
		return q
	}
}

func springForce(args ...quantity.Quantity) (quantity.Quantity, error) {
	return args[0].Mul(args[1]), nil
}

func TestUnitless(t *testing.T) {
	_, q := setup(t)

	force := Unitless(q("lbf"), []quantity.Quantity{q("mm"), q("N / m")}, springForce)

	got, err := force(3, 2)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.0013488536585984146, got, 1e-12)

	_, err = force(3)
	assert.Error(t, err)
}

func TestUnitlessWrongReturnUnits(t *testing.T) {
	_, q := setup(t)

	force := Unitless(q("s"), []quantity.Quantity{q("mm"), q("N / m")}, springForce)
	_, err := force(3, 2)
	assert.True(t, errors.Is(err, quantity.ErrIncompatibleUnits))
}

func TestUnitified(t *testing.T) {
	_, q := setup(t)

	kinetic := Unitified(q("J"), []quantity.Quantity{q("kg"), q("m / s")}, func(args ...float64) float64 {
		return 0.5 * args[0] * args[1] * args[1]
	})

	got, err := kinetic(q("2000 * gm"), q("36 * kph"))
	require.NoError(t, err)
	assert.Equal(t, " * J", got.UnitSuffix())
	assert.InDelta(t, 100.0, got.Magnitude(), 1e-9)

	_, err = kinetic(q("2 * s"), q("36 * kph"))
	assert.True(t, errors.Is(err, quantity.ErrIncompatibleUnits))

	_, err = kinetic(q("2 * kg"))
	assert.Error(t, err)
}

func TestSolveLinear(t *testing.T) {
	_, q := setup(t)
	k := q("3 * N / m")
	target := q("2 * N")

	spring := func(x quantity.Quantity) (quantity.Quantity, error) {
		return x.Mul(k).Sub(target)
	}

	root, err := Solve(spring, q("4 * m"))
	require.NoError(t, err)
	assert.Equal(t, " * m", root.UnitSuffix())
	assert.InDelta(t, 2.0/3.0, root.Magnitude(), 1e-9)

	inFeet, err := Solve(spring, q("4 * ft"))
	require.NoError(t, err)
	assert.Equal(t, " * ft", inFeet.UnitSuffix())
	assert.InDelta(t, 2.0/3.0, inFeet.Value(), 1e-9)
}

func TestSolveNonlinear(t *testing.T) {
	_, q := setup(t)
	area := q("2 * pow(m, 2)")

	square := func(x quantity.Quantity) (quantity.Quantity, error) {
		return x.Mul(x).Sub(area)
	}

	root, err := Solve(square, q("1 * m"), WithTolerance(1e-14))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root.Value(), 1e-9)
}

func TestSolveErrors(t *testing.T) {
	_, q := setup(t)
	second := q("s")

	_, err := Solve(func(x quantity.Quantity) (quantity.Quantity, error) {
		return x.Sub(second)
	}, q("1 * m"))
	assert.True(t, errors.Is(err, quantity.ErrIncompatibleUnits))

	area := q("pow(m, 2)")
	_, err = Solve(func(x quantity.Quantity) (quantity.Quantity, error) {
		return x.Mul(x).Add(area)
	}, q("1 * m"), WithMaxIterations(20))
	assert.Error(t, err)
}
