// Package exponent provides the sparse symbol-to-exponent map that serves as
// the dimension fingerprint and display name of a quantity.
//
// A Map never stores a zero exponent: setting an entry to zero removes it.
// Exponents are exact rationals so that cube roots and square roots of
// dimensions compare and print exactly.
package exponent

import (
	"encoding/json"
	"math/big"
	"sort"
	"strings"
)

// Map maps unit symbols to non-zero rational exponents.
// The zero value is an empty map ready to use.
type Map struct {
	entries map[string]*big.Rat
}

// New returns an empty map
func New() Map {
	return Map{}
}

// Of returns a map holding symbol with exponent 1
func Of(symbol string) Map {
	m := Map{}
	m.SetInt(symbol, 1)
	return m
}

// FromInts builds a map from integer exponents
func FromInts(exps map[string]int64) Map {
	m := Map{}
	for k, v := range exps {
		m.SetInt(k, v)
	}
	return m
}

// Set stores exp for key. A zero (or nil) exponent removes the key.
func (m *Map) Set(key string, exp *big.Rat) {
	if exp == nil || exp.Sign() == 0 {
		delete(m.entries, key)
		return
	}
	if m.entries == nil {
		m.entries = make(map[string]*big.Rat)
	}
	m.entries[key] = new(big.Rat).Set(exp)
}

// SetInt stores an integer exponent for key
func (m *Map) SetInt(key string, exp int64) {
	m.Set(key, big.NewRat(exp, 1))
}

// Add adds delta to the exponent of key
func (m *Map) Add(key string, delta *big.Rat) {
	sum := m.Get(key)
	sum.Add(sum, delta)
	m.Set(key, sum)
}

// Get returns a copy of the exponent for key, or 0 if absent
func (m Map) Get(key string) *big.Rat {
	if r, ok := m.entries[key]; ok {
		return new(big.Rat).Set(r)
	}
	return new(big.Rat)
}

// Has reports whether key has a non-zero exponent
func (m Map) Has(key string) bool {
	_, ok := m.entries[key]
	return ok
}

// Len returns the number of entries
func (m Map) Len() int {
	return len(m.entries)
}

// IsEmpty reports whether the map has no entries
func (m Map) IsEmpty() bool {
	return len(m.entries) == 0
}

// Keys returns all keys in lexicographic order
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Each calls fn for every entry in key order. The exponent passed to fn is a copy.
func (m Map) Each(fn func(key string, exp *big.Rat)) {
	for _, k := range m.Keys() {
		fn(k, new(big.Rat).Set(m.entries[k]))
	}
}

// Equal reports whether both maps hold the same keys with the same exponents
func (m Map) Equal(other Map) bool {
	if len(m.entries) != len(other.entries) {
		return false
	}
	for k, v := range m.entries {
		o, ok := other.entries[k]
		if !ok || v.Cmp(o) != 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy
func (m Map) Clone() Map {
	c := Map{}
	if len(m.entries) == 0 {
		return c
	}
	c.entries = make(map[string]*big.Rat, len(m.entries))
	for k, v := range m.entries {
		c.entries[k] = new(big.Rat).Set(v)
	}
	return c
}

// Scaled returns a new map with every exponent multiplied by r
func (m Map) Scaled(r *big.Rat) Map {
	c := Map{}
	for k, v := range m.entries {
		c.Set(k, new(big.Rat).Mul(v, r))
	}
	return c
}

// Merged returns a new map with the exponents of both maps summed
func (m Map) Merged(other Map) Map {
	c := m.Clone()
	for k, v := range other.entries {
		c.Add(k, v)
	}
	return c
}

// String renders the map canonically: keys sorted, joined by " * ",
// each as symbol or symbol**exponent.
func (m Map) String() string {
	parts := make([]string, 0, len(m.entries))
	for _, k := range m.Keys() {
		parts = append(parts, k+suffix(m.entries[k]))
	}
	return strings.Join(parts, " * ")
}

// Ratio splits the map into a numerator of positive exponents and a
// denominator of negative ones, rendered by magnitude. A denominator with
// more than one symbol is parenthesised.
func (m Map) Ratio() (numerator, denominator string) {
	var pos, neg []string
	for _, k := range m.Keys() {
		v := m.entries[k]
		if v.Sign() > 0 {
			pos = append(pos, k+suffix(v))
		} else {
			neg = append(neg, k+suffix(new(big.Rat).Neg(v)))
		}
	}
	numerator = strings.Join(pos, " * ")
	denominator = strings.Join(neg, " * ")
	if len(neg) > 1 {
		denominator = "(" + denominator + ")"
	}
	return numerator, denominator
}

// MarshalJSON renders the map as an object of exponent strings ("2", "-1/2").
func (m Map) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(m.entries))
	for k, v := range m.entries {
		out[k] = v.RatString()
	}
	return json.Marshal(out)
}

// Format renders an exponent the way it appears after "**":
// integers bare, fractions parenthesised.
func Format(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	return "(" + r.RatString() + ")"
}

func suffix(r *big.Rat) string {
	if r.IsInt() && r.Num().IsInt64() && r.Num().Int64() == 1 {
		return ""
	}
	return "**" + Format(r)
}
