// Package catalog - Standard SI unit catalog
// Defines the base units, SI prefixes, derived units, physical constants
// and per-kind conversion tables loaded into a registry.
package catalog

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"unties/core/expression"
	"unties/core/registry"
	uerrors "unties/internal/errors"
)

// Definition names a unit or constant built from an expression over
// previously registered symbols. Base units have no expression.
type Definition struct {
	Symbol      string
	Description string
	Expr        string
	Prefixed    bool
}

// Conversion is a unit defined as Factor/Per times its table's base.
// Factors are exact decimal strings; Per is optional.
type Conversion struct {
	Symbol      string
	Description string
	Factor      string
	Per         string
}

// Value returns the conversion factor as the nearest float64
func (c Conversion) Value() (float64, error) {
	d, err := decimal.NewFromString(c.Factor)
	if err != nil {
		return 0, fmt.Errorf("factor %q: %w", c.Factor, err)
	}
	if c.Per != "" {
		per, err := decimal.NewFromString(c.Per)
		if err != nil {
			return 0, fmt.Errorf("divisor %q: %w", c.Per, err)
		}
		if per.IsZero() {
			return 0, uerrors.Input("conversion divisor must not be zero")
		}
		d = d.DivRound(per, 30)
	}
	return d.InexactFloat64(), nil
}

// Table groups the conversions of one quantity kind. Base is an
// expression for the kind's reference unit.
type Table struct {
	Kind  string
	Base  string
	Units []Conversion
}

// Option configures Load
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used while loading
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Tables returns the conversion tables in load order
func Tables() []Table {
	out := make([]Table, len(tables))
	copy(out, tables)
	return out
}

// Constants returns the constant definitions in load order
func Constants() []Definition {
	out := make([]Definition, len(constants))
	copy(out, constants)
	return out
}

// Load registers the standard catalog into reg: prefixes, base units,
// derived units, constants, then the conversion tables and their kinds.
func Load(reg *registry.Registry, opts ...Option) error {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	if errs := Validate(DefaultValidationRules()); len(errs) > 0 {
		return uerrors.Wrap(uerrors.TypeInternal, "catalog failed validation", errors.Join(errs...))
	}

	for _, p := range prefixes {
		if err := reg.AddPrefix(p); err != nil {
			return fmt.Errorf("prefix %s: %w", p.Symbol, err)
		}
	}

	for _, b := range baseUnits {
		if _, err := reg.Base(b.Symbol, b.Description, unitOptions(b)...); err != nil {
			return fmt.Errorf("base unit %s: %w", b.Symbol, err)
		}
	}

	for _, d := range derivedUnits {
		q, err := expression.Eval(d.Expr, reg)
		if err != nil {
			return fmt.Errorf("derived unit %s: %w", d.Symbol, err)
		}
		if _, err := reg.Derived(q, d.Symbol, d.Description, unitOptions(d)...); err != nil {
			return fmt.Errorf("derived unit %s: %w", d.Symbol, err)
		}
	}

	for _, c := range constants {
		q, err := expression.Eval(c.Expr, reg)
		if err != nil {
			return fmt.Errorf("constant %s: %w", c.Symbol, err)
		}
		if _, err := reg.Constant(q, c.Symbol, c.Description); err != nil {
			return fmt.Errorf("constant %s: %w", c.Symbol, err)
		}
	}

	for _, t := range tables {
		if err := loadTable(reg, t); err != nil {
			return err
		}
	}

	o.logger.Info("catalog loaded",
		zap.Int("units", len(reg.Units())),
		zap.Int("constants", len(reg.Constants())),
		zap.Int("kinds", len(reg.Kinds())))
	return nil
}

// NewStandard builds a frozen registry holding the standard catalog
func NewStandard(opts ...Option) (*registry.Registry, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	reg := registry.New(registry.WithLogger(o.logger))
	if err := Load(reg, opts...); err != nil {
		return nil, err
	}
	reg.Freeze()
	return reg, nil
}

func loadTable(reg *registry.Registry, t Table) error {
	base, err := expression.Eval(t.Base, reg)
	if err != nil {
		return fmt.Errorf("%s base %q: %w", t.Kind, t.Base, err)
	}
	if err := reg.AddQuantityKind(base, t.Kind); err != nil {
		return fmt.Errorf("%s: %w", t.Kind, err)
	}

	for _, c := range t.Units {
		factor, err := c.Value()
		if err != nil {
			return fmt.Errorf("%s:%s: %w", t.Kind, c.Symbol, err)
		}
		if _, err := reg.Conversion(base, c.Symbol, c.Description, factor); err != nil {
			return fmt.Errorf("%s:%s: %w", t.Kind, c.Symbol, err)
		}
	}
	return nil
}

func unitOptions(d Definition) []registry.UnitOption {
	if d.Prefixed {
		return []registry.UnitOption{registry.Prefixed()}
	}
	return nil
}
