// Package registry holds named units, constants, quantity kinds and
// magnitude prefixes.
//
// A Registry is populated during a single initialization pass and then
// frozen. After Freeze every write fails with ErrRegistryFrozen and the
// registry is safe for concurrent readers.
package registry

import (
	"math"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"unties/core/quantity"
	uerrors "unties/internal/errors"
)

// Errors returned by registration, for use with errors.Is.
var (
	ErrRegistryFrozen = uerrors.ErrRegistryFrozen
	ErrDuplicate      = uerrors.ErrDuplicate
	ErrNotFound       = uerrors.ErrNotFound
)

// Prefix is a magnitude prefix such as kilo (k, 1000)
type Prefix struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Factor float64 `json:"factor"`
}

// Kind associates a quantity kind label with a dimension fingerprint
type Kind struct {
	Label     string `json:"label"`
	Dimension string `json:"dimension"`
}

// Group lists the unit symbols sharing a quantity kind
type Group struct {
	Kind    string   `json:"kind"`
	Symbols []string `json:"symbols"`
}

// Option configures a Registry
type Option func(*Registry)

// WithLogger sets the logger used for registration events
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// UnitOption configures a single unit registration
type UnitOption func(*unitOptions)

type unitOptions struct {
	prefixed bool
}

// Prefixed expands the unit with every registered prefix
func Prefixed() UnitOption {
	return func(o *unitOptions) {
		o.prefixed = true
	}
}

// Registry is the unit factory
type Registry struct {
	mu        sync.RWMutex
	frozen    bool
	units     map[string]quantity.Quantity
	constants map[string]quantity.Quantity
	kinds     map[string]string // dimension fingerprint -> label
	prefixes  []Prefix
	logger    *zap.Logger
}

// New creates an empty registry
func New(opts ...Option) *Registry {
	r := &Registry{
		units:     make(map[string]quantity.Quantity),
		constants: make(map[string]quantity.Quantity),
		kinds:     make(map[string]string),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Base registers a new fundamental unit with dimension {symbol: 1}
func (r *Registry) Base(symbol, description string, opts ...UnitOption) (quantity.Quantity, error) {
	q := quantity.Unit(symbol).WithDescription(description)
	return r.register(symbol, q, opts)
}

// Derived registers an already-combined quantity under a single display
// symbol. One unit of the new symbol equals q, which must be finite and
// non-zero.
func (r *Registry) Derived(q quantity.Quantity, symbol, description string, opts ...UnitOption) (quantity.Quantity, error) {
	if v := q.Value(); v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return quantity.Quantity{}, uerrors.Input("unit value must be finite and non-zero").
			WithContext("symbol", symbol).
			WithContext("value", v)
	}
	return r.register(symbol, q.Rename(symbol).WithDescription(description), opts)
}

// Conversion registers q*factor under a new display symbol
func (r *Registry) Conversion(q quantity.Quantity, symbol, description string, factor float64, opts ...UnitOption) (quantity.Quantity, error) {
	return r.Derived(q.Scale(factor), symbol, description, opts...)
}

// Constant labels q as a named constant without altering its value
func (r *Registry) Constant(q quantity.Quantity, symbol, description string) (quantity.Quantity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkWritable(symbol); err != nil {
		return quantity.Quantity{}, err
	}
	c := q.WithDescription(description)
	r.constants[symbol] = c

	r.logger.Debug("registered constant",
		zap.String("symbol", symbol),
		zap.String("value", c.String()))
	return c, nil
}

// AddQuantityKind labels the dimension of q, e.g. "length" for m
func (r *Registry) AddQuantityKind(q quantity.Quantity, label string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return uerrors.Frozen(label)
	}
	if label == "" {
		return uerrors.Input("quantity kind label must not be empty")
	}
	fingerprint := q.Dimension().String()
	if existing, ok := r.kinds[fingerprint]; ok {
		return uerrors.Duplicate("quantity kind", fingerprint+" ("+existing+")")
	}
	r.kinds[fingerprint] = label

	r.logger.Debug("registered quantity kind",
		zap.String("kind", label),
		zap.String("dimension", fingerprint))
	return nil
}

// AddPrefix registers a magnitude prefix. Prefixes apply to units
// registered with Prefixed after this call.
func (r *Registry) AddPrefix(p Prefix) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return uerrors.Frozen(p.Symbol)
	}
	if p.Symbol == "" || !(p.Factor > 0) {
		return uerrors.Input("prefix needs a symbol and a positive factor").
			WithContext("prefix", p)
	}
	for _, existing := range r.prefixes {
		if existing.Symbol == p.Symbol {
			return uerrors.Duplicate("prefix", p.Symbol)
		}
	}
	r.prefixes = append(r.prefixes, p)
	return nil
}

// Freeze makes the registry read-only
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
	r.logger.Debug("registry frozen",
		zap.Int("units", len(r.units)),
		zap.Int("constants", len(r.constants)),
		zap.Int("kinds", len(r.kinds)))
}

// Snapshot captures the registry contents so a failed batch of
// registrations can be undone with Rollback
type Snapshot struct {
	units     map[string]quantity.Quantity
	constants map[string]quantity.Quantity
	kinds     map[string]string
	prefixes  []Prefix
}

// Snapshot returns the current contents
func (r *Registry) Snapshot() *Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := &Snapshot{
		units:     cloneQuantities(r.units),
		constants: cloneQuantities(r.constants),
		kinds:     make(map[string]string, len(r.kinds)),
		prefixes:  append([]Prefix(nil), r.prefixes...),
	}
	for k, v := range r.kinds {
		s.kinds[k] = v
	}
	return s
}

// Rollback restores the contents captured by s. A frozen registry cannot
// be rolled back.
func (r *Registry) Rollback(s *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return uerrors.Frozen("rollback")
	}
	r.units = cloneQuantities(s.units)
	r.constants = cloneQuantities(s.constants)
	r.kinds = make(map[string]string, len(s.kinds))
	for k, v := range s.kinds {
		r.kinds[k] = v
	}
	r.prefixes = append([]Prefix(nil), s.prefixes...)

	r.logger.Debug("registry rolled back",
		zap.Int("units", len(r.units)),
		zap.Int("constants", len(r.constants)))
	return nil
}

// Frozen reports whether Freeze has been called
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

func (r *Registry) register(symbol string, q quantity.Quantity, opts []UnitOption) (quantity.Quantity, error) {
	var o unitOptions
	for _, opt := range opts {
		opt(&o)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkWritable(symbol); err != nil {
		return quantity.Quantity{}, err
	}
	r.units[symbol] = q

	r.logger.Debug("registered unit",
		zap.String("symbol", symbol),
		zap.String("dimension", q.Dimension().String()),
		zap.Float64("value", q.Value()))

	if o.prefixed {
		r.expandPrefixes(symbol, q)
	}
	return q, nil
}

// expandPrefixes registers prefix+symbol for every prefix. Caller holds mu.
func (r *Registry) expandPrefixes(symbol string, q quantity.Quantity) {
	for _, p := range r.prefixes {
		ps := p.Symbol + symbol
		if r.exists(ps) {
			r.logger.Debug("prefixed unit already registered",
				zap.String("symbol", ps))
			continue
		}
		r.units[ps] = q.Scale(p.Factor).Rename(ps).
			WithDescription(prefixDescription(p.Name, q.Description()))
	}
}

func (r *Registry) checkWritable(symbol string) error {
	if r.frozen {
		return uerrors.Frozen(symbol)
	}
	if strings.TrimSpace(symbol) == "" {
		return uerrors.Input("symbol must not be empty")
	}
	if r.exists(symbol) {
		return uerrors.Duplicate("symbol", symbol)
	}
	return nil
}

func (r *Registry) exists(symbol string) bool {
	if _, ok := r.units[symbol]; ok {
		return true
	}
	_, ok := r.constants[symbol]
	return ok
}

func prefixDescription(prefix, description string) string {
	if description == "" {
		return ""
	}
	return cases.Title(language.English).String(prefix + strings.ToLower(description))
}

func cloneQuantities(m map[string]quantity.Quantity) map[string]quantity.Quantity {
	c := make(map[string]quantity.Quantity, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// sortedKeys returns the keys of m in order
func sortedKeys(m map[string]quantity.Quantity) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
