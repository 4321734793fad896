// Package catalog - Offset temperature scales
package catalog

import (
	"math"

	"unties/core/quantity"
	uerrors "unties/internal/errors"
)

const (
	celsiusOffset    = 273.15
	fahrenheitOffset = 459.67
)

var (
	kelvin  = quantity.Unit("K")
	rankine = kelvin.Scale(5.0 / 9.0).Rename("R")
)

// DegC returns a Celsius reading as an absolute temperature in K
func DegC(celsius float64) (quantity.Quantity, error) {
	if err := uerrors.CheckRange(celsius, -celsiusOffset, math.Inf(1)); err != nil {
		return quantity.Quantity{}, err
	}
	return kelvin.Scale(celsius + celsiusOffset), nil
}

// DegF returns a Fahrenheit reading as an absolute temperature in R
func DegF(fahrenheit float64) (quantity.Quantity, error) {
	if err := uerrors.CheckRange(fahrenheit, -fahrenheitOffset, math.Inf(1)); err != nil {
		return quantity.Quantity{}, err
	}
	return rankine.Scale(fahrenheit + fahrenheitOffset), nil
}

// ToDegC returns the Celsius reading of an absolute temperature
func ToDegC(t quantity.Quantity) (float64, error) {
	if err := t.RequireSameUnits(kelvin); err != nil {
		return 0, err
	}
	return t.Value() - celsiusOffset, nil
}

// ToDegF returns the Fahrenheit reading of an absolute temperature
func ToDegF(t quantity.Quantity) (float64, error) {
	if err := t.RequireSameUnits(kelvin); err != nil {
		return 0, err
	}
	return t.Value()*9/5 - fahrenheitOffset, nil
}
