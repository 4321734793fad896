package registry

import (
	"sort"

	"unties/core/quantity"
	uerrors "unties/internal/errors"
)

// Unit returns a registered unit with its quantity kind attached
func (r *Registry) Unit(symbol string) (quantity.Quantity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.units[symbol]
	if !ok {
		return quantity.Quantity{}, false
	}
	return r.describe(q), true
}

// MustUnit returns a registered unit or panics
func (r *Registry) MustUnit(symbol string) quantity.Quantity {
	q, ok := r.Unit(symbol)
	if !ok {
		panic(uerrors.NotFound("unit", symbol))
	}
	return q
}

// ConstantValue returns a registered constant
func (r *Registry) ConstantValue(symbol string) (quantity.Quantity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.constants[symbol]
	if !ok {
		return quantity.Quantity{}, false
	}
	return r.describe(q), true
}

// Lookup resolves a symbol as a unit first, then as a constant
func (r *Registry) Lookup(symbol string) (quantity.Quantity, bool) {
	if q, ok := r.Unit(symbol); ok {
		return q, true
	}
	return r.ConstantValue(symbol)
}

// KindOf returns the quantity kind registered for q's dimension.
// Pure scalars have no kind.
func (r *Registry) KindOf(q quantity.Quantity) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.kindOf(q)
}

// Describe returns q with its quantity kind attached
func (r *Registry) Describe(q quantity.Quantity) quantity.Quantity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.describe(q)
}

// Units returns all unit symbols in order
func (r *Registry) Units() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.units)
}

// Constants returns all constant symbols in order
func (r *Registry) Constants() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.constants)
}

// Kinds returns all quantity kinds ordered by label
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]Kind, 0, len(r.kinds))
	for dim, label := range r.kinds {
		kinds = append(kinds, Kind{Label: label, Dimension: dim})
	}
	sort.Slice(kinds, func(i, j int) bool {
		return kinds[i].Label < kinds[j].Label
	})
	return kinds
}

// Prefixes returns the registered prefixes in registration order
func (r *Registry) Prefixes() []Prefix {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Prefix, len(r.prefixes))
	copy(out, r.prefixes)
	return out
}

// Groups lists unit symbols by quantity kind, ordered by kind label.
// Units without a kind are grouped under the empty label, listed last.
func (r *Registry) Groups() []Group {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byKind := make(map[string][]string)
	for _, symbol := range sortedKeys(r.units) {
		kind := r.kindOf(r.units[symbol])
		byKind[kind] = append(byKind[kind], symbol)
	}

	groups := make([]Group, 0, len(byKind))
	for kind, symbols := range byKind {
		groups = append(groups, Group{Kind: kind, Symbols: symbols})
	}
	sort.Slice(groups, func(i, j int) bool {
		if (groups[i].Kind == "") != (groups[j].Kind == "") {
			return groups[j].Kind == ""
		}
		return groups[i].Kind < groups[j].Kind
	})
	return groups
}

func (r *Registry) kindOf(q quantity.Quantity) string {
	if q.IsScalar() {
		return ""
	}
	return r.kinds[q.Dimension().String()]
}

func (r *Registry) describe(q quantity.Quantity) quantity.Quantity {
	if kind := r.kindOf(q); kind != "" {
		return q.WithKind(kind)
	}
	return q
}
