// Package catalog - Catalog validation
// Ensures catalog integrity before anything is registered.
package catalog

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsyntax"

	uerrors "unties/internal/errors"
)

// ValidationRule is a conversion table validation rule
type ValidationRule func(Table, Conversion) error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateSymbol,
		validateFactor,
	}
}

// Validate checks the catalog tables against rules and reports symbols
// defined more than once
func Validate(rules []ValidationRule) []error {
	var errs []error

	seen := make(map[string]string)
	define := func(symbol, where string) {
		if prev, ok := seen[symbol]; ok {
			errs = append(errs, fmt.Errorf("%s: %w", where,
				uerrors.Duplicate("symbol", symbol+" (also "+prev+")")))
			return
		}
		seen[symbol] = where
	}

	for _, d := range baseUnits {
		define(d.Symbol, "base")
	}
	for _, d := range derivedUnits {
		define(d.Symbol, "derived")
	}
	for _, d := range constants {
		define(d.Symbol, "constant")
	}

	for _, t := range tables {
		for _, c := range t.Units {
			define(c.Symbol, t.Kind)
			for _, rule := range rules {
				if err := rule(t, c); err != nil {
					errs = append(errs, fmt.Errorf("%s:%s: %w", t.Kind, c.Symbol, err))
				}
			}
		}
	}

	return errs
}

// validateSymbol ensures every unit can be referenced from an expression
func validateSymbol(_ Table, c Conversion) error {
	if !hclsyntax.ValidIdentifier(c.Symbol) {
		return uerrors.Input("symbol is not a valid identifier")
	}
	if c.Description == "" {
		return uerrors.Input("missing description")
	}
	return nil
}

// validateFactor ensures the factor parses and is positive
func validateFactor(_ Table, c Conversion) error {
	v, err := c.Value()
	if err != nil {
		return err
	}
	if !(v > 0) {
		return uerrors.Input("conversion factor must be positive")
	}
	return nil
}
