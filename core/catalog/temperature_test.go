package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unties/core/quantity"
	uerrors "unties/internal/errors"
)

func TestDegC(t *testing.T) {
	boiling, err := DegC(100)
	require.NoError(t, err)
	assert.Equal(t, "373.15 * K", boiling.String())

	c, err := ToDegC(boiling)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, c, 1e-9)

	_, err = DegC(-300)
	assert.True(t, errors.Is(err, uerrors.ErrOutOfRange))
}

func TestDegF(t *testing.T) {
	boiling, err := DegF(212)
	require.NoError(t, err)
	assert.Equal(t, " * R", boiling.UnitSuffix())
	assert.InDelta(t, 671.67, boiling.Magnitude(), 1e-9)

	c, err := ToDegC(boiling)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, c, 1e-9)

	f, err := ToDegF(boiling)
	require.NoError(t, err)
	assert.InDelta(t, 212.0, f, 1e-9)

	_, err = DegF(-460)
	assert.True(t, errors.Is(err, uerrors.ErrOutOfRange))
}

func TestAbsoluteZero(t *testing.T) {
	zeroC, err := DegC(-273.15)
	require.NoError(t, err)
	zeroF, err := DegF(-459.67)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, zeroC.Value(), 1e-12)
	assert.InDelta(t, 0.0, zeroF.Value(), 1e-12)
}

func TestTemperatureRequiresKelvin(t *testing.T) {
	_, err := ToDegC(quantity.Unit("m"))
	assert.True(t, errors.Is(err, quantity.ErrIncompatibleUnits))

	_, err = ToDegF(quantity.Scalar(300))
	assert.True(t, errors.Is(err, quantity.ErrIncompatibleUnits))
}
