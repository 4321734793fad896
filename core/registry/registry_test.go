package registry

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"unties/core/quantity"
	uerrors "unties/internal/errors"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	r := New()
	require.NoError(t, r.AddPrefix(Prefix{Symbol: "k", Name: "kilo", Factor: 1e3}))
	require.NoError(t, r.AddPrefix(Prefix{Symbol: "m", Name: "milli", Factor: 1e-3}))

	_, err := r.Base("m", "Meter", Prefixed())
	require.NoError(t, err)
	_, err = r.Base("s", "Second")
	require.NoError(t, err)
	return r
}

func TestBase(t *testing.T) {
	r := newTestRegistry(t)

	m, ok := r.Unit("m")
	require.True(t, ok)
	assert.True(t, m.Equal(quantity.Unit("m")))
	assert.Equal(t, "Meter", m.Description())
	assert.Equal(t, 1.0, m.Value())
}

func TestDerivedAndConversion(t *testing.T) {
	r := newTestRegistry(t)
	m := r.MustUnit("m")
	s := r.MustUnit("s")

	hz, err := r.Derived(quantity.ScalarDiv(1, s), "Hz", "Hertz")
	require.NoError(t, err)
	assert.Equal(t, "1.0 * Hz  # Hertz", hz.String())
	assert.True(t, hz.Equal(quantity.ScalarDiv(1, s)))

	inch, err := r.Conversion(m, "inch", "Inch", 0.0254)
	require.NoError(t, err)
	assert.Equal(t, 0.0254, inch.Value())
	assert.Equal(t, 1.0, inch.Magnitude())

	ft, err := r.Conversion(inch, "ft", "Foot", 12)
	require.NoError(t, err)
	assert.True(t, ft.Equal(m.Scale(0.3048)))
}

func TestDegenerateUnitsRejected(t *testing.T) {
	r := newTestRegistry(t)
	m := r.MustUnit("m")

	tests := []struct {
		name string
		q    quantity.Quantity
	}{
		{name: "zero", q: m.Scale(0)},
		{name: "infinite", q: m.Scale(math.Inf(1))},
		{name: "nan", q: m.Scale(math.NaN())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Derived(tt.q, "zz", "")
			assert.ErrorIs(t, err, uerrors.ErrInput)
			_, ok := r.Unit("zz")
			assert.False(t, ok)
		})
	}

	_, err := r.Conversion(m, "nothing", "", 0)
	assert.ErrorIs(t, err, uerrors.ErrInput)

	neg, err := r.Conversion(m, "back", "", -1)
	require.NoError(t, err)
	assert.Equal(t, "1.0 * back", neg.String())
}

func TestPrefixedUnits(t *testing.T) {
	r := newTestRegistry(t)

	km, ok := r.Unit("km")
	require.True(t, ok)
	assert.Equal(t, 1000.0, km.Value())
	assert.Equal(t, 1.0, km.Magnitude())
	assert.Equal(t, "Kilometer", km.Description())

	mm, ok := r.Unit("mm")
	require.True(t, ok)
	assert.Equal(t, "Millimeter", mm.Description())
	assert.True(t, mm.Scale(1000).Equal(r.MustUnit("m")))

	_, ok = r.Unit("ks")
	assert.False(t, ok, "seconds were registered without prefixes")
}

func TestPrefixedSkipsExistingSymbols(t *testing.T) {
	r := New()
	require.NoError(t, r.AddPrefix(Prefix{Symbol: "k", Name: "kilo", Factor: 1e3}))

	kg, err := r.Base("kg", "Kilogram")
	require.NoError(t, err)
	_, err = r.Conversion(kg, "g", "Gram", 1e-3, Prefixed())
	require.NoError(t, err)

	got := r.MustUnit("kg")
	assert.Equal(t, "Kilogram", got.Description())
	assert.Equal(t, "1.0 * kg  # Kilogram", got.String())
}

func TestConstants(t *testing.T) {
	r := newTestRegistry(t)
	m := r.MustUnit("m")
	s := r.MustUnit("s")

	c, err := r.Constant(m.Div(s).Scale(299792458), "c", "Speed of light")
	require.NoError(t, err)
	assert.Equal(t, "299792458.0 * m / s  # Speed of light", c.String())

	got, ok := r.ConstantValue("c")
	require.True(t, ok)
	assert.True(t, got.Equal(c))

	_, ok = r.Unit("c")
	assert.False(t, ok)

	looked, ok := r.Lookup("c")
	require.True(t, ok)
	assert.True(t, looked.Equal(c))

	assert.Equal(t, []string{"c"}, r.Constants())
}

func TestDuplicateSymbols(t *testing.T) {
	r := newTestRegistry(t)

	_, err := r.Base("m", "Meter again")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicate))

	_, err = r.Constant(quantity.Scalar(1), "s", "not a second")
	assert.True(t, errors.Is(err, ErrDuplicate))

	err = r.AddPrefix(Prefix{Symbol: "k", Name: "kilo", Factor: 1e3})
	assert.True(t, errors.Is(err, ErrDuplicate))
}

func TestInvalidInput(t *testing.T) {
	r := New()

	_, err := r.Base("  ", "blank")
	assert.Error(t, err)

	assert.Error(t, r.AddPrefix(Prefix{Symbol: "z", Name: "zero", Factor: 0}))
	assert.Error(t, r.AddPrefix(Prefix{Name: "nameless", Factor: 10}))
	assert.Error(t, r.AddQuantityKind(quantity.Unit("m"), ""))
}

func TestQuantityKinds(t *testing.T) {
	r := newTestRegistry(t)
	m := r.MustUnit("m")
	s := r.MustUnit("s")

	require.NoError(t, r.AddQuantityKind(m, "length"))
	require.NoError(t, r.AddQuantityKind(m.Div(s), "velocity"))

	err := r.AddQuantityKind(r.MustUnit("km"), "distance")
	assert.True(t, errors.Is(err, ErrDuplicate))

	assert.Equal(t, "length", r.KindOf(r.MustUnit("mm")))
	assert.Equal(t, "velocity", r.KindOf(r.MustUnit("km").Div(s)))
	assert.Equal(t, "", r.KindOf(s))
	assert.Equal(t, "", r.KindOf(quantity.Scalar(3)))

	assert.Equal(t, "length", r.MustUnit("km").Kind())
	assert.Equal(t, "2.0 * m / s  # [velocity]", r.Describe(m.Div(s).Scale(2)).String())

	assert.Equal(t, []Kind{
		{Label: "length", Dimension: "m"},
		{Label: "velocity", Dimension: "m * s**-1"},
	}, r.Kinds())
}

func TestGroups(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.AddQuantityKind(r.MustUnit("m"), "length"))

	groups := r.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, Group{Kind: "length", Symbols: []string{"km", "m", "mm"}}, groups[0])
	assert.Equal(t, Group{Kind: "", Symbols: []string{"s"}}, groups[1])
}

func TestFreeze(t *testing.T) {
	r := newTestRegistry(t)
	assert.False(t, r.Frozen())

	r.Freeze()
	assert.True(t, r.Frozen())

	_, err := r.Base("A", "Ampere")
	assert.True(t, errors.Is(err, ErrRegistryFrozen))

	_, err = r.Constant(quantity.Scalar(2), "two", "Two")
	assert.True(t, errors.Is(err, ErrRegistryFrozen))

	assert.True(t, errors.Is(r.AddQuantityKind(r.MustUnit("s"), "time"), ErrRegistryFrozen))
	assert.True(t, errors.Is(r.AddPrefix(Prefix{Symbol: "M", Name: "mega", Factor: 1e6}), ErrRegistryFrozen))

	_, ok := r.Unit("m")
	assert.True(t, ok, "reads still work after freeze")
}

func TestMustUnitPanics(t *testing.T) {
	r := New()
	assert.Panics(t, func() { r.MustUnit("nope") })
}

func TestUnitsSorted(t *testing.T) {
	r := newTestRegistry(t)
	assert.Equal(t, []string{"km", "m", "mm", "s"}, r.Units())
	assert.Equal(t, []Prefix{
		{Symbol: "k", Name: "kilo", Factor: 1e3},
		{Symbol: "m", Name: "milli", Factor: 1e-3},
	}, r.Prefixes())
}

func TestConcurrentReadsAfterFreeze(t *testing.T) {
	r := newTestRegistry(t)
	r.Freeze()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km := r.MustUnit("km")
			m, _ := r.Lookup("m")
			assert.True(t, km.Equal(m.Scale(1000)))
		}()
	}
	wg.Wait()
}

func TestLogsRegistrations(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := New(WithLogger(zap.New(core)))

	_, err := r.Base("m", "Meter")
	require.NoError(t, err)
	r.Freeze()

	entries := logs.FilterMessage("registered unit").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "m", entries[0].ContextMap()["symbol"])
	assert.Equal(t, 1, logs.FilterMessage("registry frozen").Len())
}

func TestSnapshotRollback(t *testing.T) {
	r := newTestRegistry(t)
	snapshot := r.Snapshot()
	units := r.Units()

	require.NoError(t, r.AddPrefix(Prefix{Symbol: "M", Name: "mega", Factor: 1e6}))
	_, err := r.Base("g", "Gram", Prefixed())
	require.NoError(t, err)
	_, err = r.Constant(r.MustUnit("m").Scale(2), "two", "Two meters")
	require.NoError(t, err)
	require.NoError(t, r.AddQuantityKind(r.MustUnit("g"), "mass"))

	require.NoError(t, r.Rollback(snapshot))
	assert.Equal(t, units, r.Units())
	assert.Empty(t, r.Constants())
	assert.Empty(t, r.Kinds())
	assert.Len(t, r.Prefixes(), 2)

	// the snapshot stays reusable after the registry changes again
	_, err = r.Base("g", "Gram")
	require.NoError(t, err)
	require.NoError(t, r.Rollback(snapshot))
	_, ok := r.Unit("g")
	assert.False(t, ok)

	r.Freeze()
	assert.ErrorIs(t, r.Rollback(snapshot), ErrRegistryFrozen)
}
