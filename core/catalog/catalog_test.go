package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unties/core/expression"
	"unties/core/quantity"
	"unties/core/registry"
)

func standard(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := NewStandard()
	require.NoError(t, err)
	return reg
}

func eval(t *testing.T, reg *registry.Registry, src string) quantity.Quantity {
	t.Helper()
	q, err := expression.Eval(src, reg)
	require.NoError(t, err, src)
	return q
}

func TestCatalogValidates(t *testing.T) {
	errs := Validate(DefaultValidationRules())
	assert.Empty(t, errs)
}

func TestNewStandardIsFrozen(t *testing.T) {
	reg := standard(t)
	assert.True(t, reg.Frozen())

	_, err := reg.Base("xx", "Extra")
	assert.True(t, errors.Is(err, registry.ErrRegistryFrozen))
}

func TestLoadTwiceFails(t *testing.T) {
	reg := registry.New()
	require.NoError(t, Load(reg))
	assert.True(t, errors.Is(Load(reg), registry.ErrDuplicate))
}

func TestExactConversions(t *testing.T) {
	reg := standard(t)

	tests := []struct {
		name string
		a, b string
	}{
		{name: "inch in mm", a: "inch", b: "25.4 * mm"},
		{name: "foot in inches", a: "ft", b: "12 * inch"},
		{name: "yard in feet", a: "yd", b: "3 * ft"},
		{name: "mile in feet", a: "mi", b: "5280 * ft"},
		{name: "liter", a: "l", b: "1000 * ml"},
		{name: "kilowatt-hour", a: "kWh", b: "kW * hr"},
		{name: "newton", a: "N", b: "kg * m / pow(s, 2)"},
		{name: "hertz", a: "kHz", b: "1000 / s"},
		{name: "gravity", a: "kgf", b: "kg * g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := eval(t, reg, tt.a)
			b := eval(t, reg, tt.b)
			assert.True(t, a.Equal(b), "%s != %s", a, b)
		})
	}
}

func TestSpeedConversion(t *testing.T) {
	reg := standard(t)

	got := eval(t, reg, "to(100 * kph, mph)")
	assert.Equal(t, " * mph", got.UnitSuffix())
	assert.InDelta(t, 62.1371192237334, got.Magnitude(), 1e-9)
}

func TestRoundTrip(t *testing.T) {
	reg := standard(t)

	q := eval(t, reg, "3 * ft")
	m := reg.MustUnit("m")
	ft := reg.MustUnit("ft")

	back := q.UnitsOf(m).UnitsOf(ft)
	assert.True(t, back.Equal(q))
	assert.Equal(t, " * ft", back.UnitSuffix())
	assert.InDelta(t, 3.0, back.Magnitude(), 1e-12)
}

func TestEveryUnitConvertsToItself(t *testing.T) {
	reg := standard(t)

	for _, symbol := range reg.Units() {
		u := reg.MustUnit(symbol)
		got := u.UnitsOf(u)
		assert.True(t, got.Equal(u), "%s: %s", symbol, got)
		assert.InDelta(t, 1.0, got.Magnitude(), 1e-12, symbol)
	}
}

func TestPrefixExpansion(t *testing.T) {
	reg := standard(t)

	tests := []struct {
		symbol      string
		description string
		value       float64
	}{
		{symbol: "km", description: "Kilometer", value: 1e3},
		{symbol: "mm", description: "Millimeter", value: 1e-3},
		{symbol: "kPa", description: "Kilopascal", value: 1e3},
		{symbol: "ms", description: "Millisecond", value: 1e-3},
		{symbol: "kmol", description: "Kilomole", value: 1e3},
		{symbol: "GW", description: "Gigawatt", value: 1e9},
		{symbol: "uF", description: "Microfarad", value: 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			u, ok := reg.Unit(tt.symbol)
			require.True(t, ok)
			assert.Equal(t, tt.description, u.Description())
			assert.InEpsilon(t, tt.value, u.Value(), 1e-15)
		})
	}

	_, ok := reg.Unit("kkg")
	assert.False(t, ok)
}

func TestConstants(t *testing.T) {
	reg := standard(t)

	tests := []struct {
		symbol string
		value  float64
		suffix string
	}{
		{symbol: "hbar", value: 1.0545718001391127e-34, suffix: " * J * s"},
		{symbol: "kb", value: 1.380648509796223e-23, suffix: " * J / K"},
		{symbol: "e0", value: 8.854187817620389e-12, suffix: " * F / m"},
		{symbol: "Cc", value: 8987551787.368176, suffix: " * m / F"},
		{symbol: "Rb", value: 5.2917721056384094e-11, suffix: " * m"},
		{symbol: "Rdb", value: 10973731.570550857, suffix: " / m"},
		{symbol: "mfq", value: 2.067833831170082e-15, suffix: " * Wb"},
		{symbol: "ub", value: 9.274009992054043e-24, suffix: " * J / T"},
		{symbol: "sbc", value: 5.670366648454344e-08, suffix: ""},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			c, ok := reg.ConstantValue(tt.symbol)
			require.True(t, ok)
			assert.InEpsilon(t, tt.value, c.Magnitude(), 1e-9)
			if tt.suffix != "" {
				assert.Equal(t, tt.suffix, c.UnitSuffix())
			}
		})
	}
}

func TestConstantKinds(t *testing.T) {
	reg := standard(t)

	g, ok := reg.Lookup("g")
	require.True(t, ok)
	assert.Equal(t, "9.80665 * m / s**2  # Acceleration of gravity [acceleration]", g.String())

	c, ok := reg.Lookup("c")
	require.True(t, ok)
	assert.Equal(t, "velocity", c.Kind())
}

func TestKinds(t *testing.T) {
	reg := standard(t)

	assert.Equal(t, "energy", reg.KindOf(eval(t, reg, "kWh")))
	assert.Equal(t, "pressure", reg.KindOf(eval(t, reg, "psi")))
	assert.Equal(t, "angle", reg.KindOf(eval(t, reg, "deg")))
	assert.Equal(t, "frequency", reg.KindOf(eval(t, reg, "1 / s")))
	assert.Equal(t, "", reg.KindOf(eval(t, reg, "m / m")))

	kinds := make(map[string]bool)
	for _, k := range reg.Kinds() {
		kinds[k.Label] = true
	}
	for _, table := range Tables() {
		assert.True(t, kinds[table.Kind], table.Kind)
	}
}

func TestGroups(t *testing.T) {
	reg := standard(t)

	var length []string
	for _, g := range reg.Groups() {
		if g.Kind == "length" {
			length = g.Symbols
		}
	}
	assert.Contains(t, length, "m")
	assert.Contains(t, length, "km")
	assert.Contains(t, length, "inch")
	assert.NotContains(t, length, "s")
}

func TestConversionValue(t *testing.T) {
	v, err := Conversion{Factor: "5", Per: "9"}.Value()
	require.NoError(t, err)
	assert.Equal(t, 5.0/9.0, v)

	_, err = Conversion{Factor: "abc"}.Value()
	assert.Error(t, err)

	_, err = Conversion{Factor: "1", Per: "0"}.Value()
	assert.Error(t, err)
}

func TestValidationRules(t *testing.T) {
	table := Table{Kind: "test"}

	assert.Error(t, validateSymbol(table, Conversion{Symbol: "2x", Description: "bad"}))
	assert.Error(t, validateSymbol(table, Conversion{Symbol: "x"}))
	assert.NoError(t, validateSymbol(table, Conversion{Symbol: "x", Description: "ok"}))

	assert.Error(t, validateFactor(table, Conversion{Factor: "-1"}))
	assert.Error(t, validateFactor(table, Conversion{Factor: "0"}))
	assert.NoError(t, validateFactor(table, Conversion{Factor: "1e-3"}))
}
