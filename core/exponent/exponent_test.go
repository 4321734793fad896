package exponent

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetZeroRemovesKey(t *testing.T) {
	m := New()
	m.SetInt("m", 2)
	require.True(t, m.Has("m"))

	m.SetInt("m", 0)
	assert.False(t, m.Has("m"))
	assert.True(t, m.IsEmpty())
}

func TestGetMissingIsZero(t *testing.T) {
	var m Map
	assert.Equal(t, 0, m.Get("kg").Sign())
}

func TestGetReturnsCopy(t *testing.T) {
	m := Of("m")
	r := m.Get("m")
	r.SetInt64(5)
	assert.Equal(t, "1", m.Get("m").RatString())
}

func TestAddCancelsToZero(t *testing.T) {
	m := FromInts(map[string]int64{"m": 1, "s": -1})
	m.Add("s", big.NewRat(1, 1))
	assert.Equal(t, []string{"m"}, m.Keys())
}

func TestEqual(t *testing.T) {
	a := FromInts(map[string]int64{"m": 1, "s": -2})
	b := FromInts(map[string]int64{"s": -2, "m": 1})
	c := FromInts(map[string]int64{"m": 1, "s": -1})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Of("m")))
	assert.True(t, New().Equal(Map{}))
}

func TestCloneDoesNotAlias(t *testing.T) {
	a := Of("m")
	b := a.Clone()
	b.SetInt("m", 3)

	assert.Equal(t, "m", a.String())
	assert.Equal(t, "m**3", b.String())
}

func TestScaledAndMerged(t *testing.T) {
	gal := FromInts(map[string]int64{"m": 3})
	root := gal.Scaled(big.NewRat(1, 3))
	assert.True(t, root.Equal(Of("m")))

	assert.True(t, gal.Scaled(new(big.Rat)).IsEmpty())

	merged := Of("m").Merged(FromInts(map[string]int64{"m": -1, "s": 1}))
	assert.True(t, merged.Equal(Of("s")))
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		m    Map
		want string
	}{
		{"empty", New(), ""},
		{"single", Of("m"), "m"},
		{"sorted", FromInts(map[string]int64{"s": -2, "m": 1, "kg": 1}), "kg * m * s**-2"},
		{"fraction", Of("gal").Scaled(big.NewRat(4, 3)), "gal**(4/3)"},
		{"negative fraction", Of("s").Scaled(big.NewRat(-1, 2)), "s**(-1/2)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m.String())
		})
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		m    Map
		num  string
		den  string
	}{
		{"positive only", FromInts(map[string]int64{"m": 2}), "m**2", ""},
		{"single negative", FromInts(map[string]int64{"m": -1}), "", "m"},
		{"grouped negatives", FromInts(map[string]int64{"s": -1, "kg": -1, "m": -1}), "", "(kg * m * s)"},
		{"mixed", FromInts(map[string]int64{"kg": 1, "m": 1, "s": -2}), "kg * m", "s**2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			num, den := tt.m.Ratio()
			assert.Equal(t, tt.num, num)
			assert.Equal(t, tt.den, den)
		})
	}
}

func TestKeysSorted(t *testing.T) {
	m := FromInts(map[string]int64{"s": 1, "A": 1, "kg": 1, "m": 1})
	if diff := cmp.Diff([]string{"A", "kg", "m", "s"}, m.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalJSON(t *testing.T) {
	m := FromInts(map[string]int64{"m": 1, "s": -2})
	m.Set("gal", big.NewRat(4, 3))

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"gal":"4/3","m":"1","s":"-2"}`, string(data))
}

func TestFromFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2, "2"},
		{-1, "-1"},
		{0.5, "1/2"},
		{-0.5, "-1/2"},
		{1.0 / 3, "1/3"},
		{-2.0 / 3, "-2/3"},
		{0.25, "1/4"},
		{1.5, "3/2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromFloat(tt.in).RatString(), "FromFloat(%v)", tt.in)
	}
}

func TestFromFloatPanicsOnNaN(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for NaN exponent")
		}
	}()
	FromFloat(nan())
}

func nan() float64 {
	zero := 0.0
	return zero / zero
}
