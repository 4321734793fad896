package unitfunc

import (
	"math"

	"unties/core/quantity"
	uerrors "unties/internal/errors"
)

const (
	defaultTolerance     = 1e-12
	defaultMaxIterations = 100
)

// SolveOption configures Solve
type SolveOption func(*solver)

// WithTolerance sets the relative step size at which iteration stops
func WithTolerance(tol float64) SolveOption {
	return func(s *solver) {
		if tol > 0 {
			s.tolerance = tol
		}
	}
}

// WithMaxIterations bounds the number of secant steps
func WithMaxIterations(n int) SolveOption {
	return func(s *solver) {
		if n > 0 {
			s.maxIterations = n
		}
	}
}

type solver struct {
	tolerance     float64
	maxIterations int
}

// Solve finds x near guess with fn(x) == 0 using the secant method. The
// root is returned in the display units of guess.
func Solve(fn func(quantity.Quantity) (quantity.Quantity, error), guess quantity.Quantity, opts ...SolveOption) (quantity.Quantity, error) {
	s := solver{tolerance: defaultTolerance, maxIterations: defaultMaxIterations}
	for _, opt := range opts {
		opt(&s)
	}

	first, err := fn(guess)
	if err != nil {
		return quantity.Quantity{}, err
	}
	argUnits := guess.Normalized()
	retUnits := first.Normalized()

	f := Unitless(retUnits, []quantity.Quantity{argUnits}, func(args ...quantity.Quantity) (quantity.Quantity, error) {
		return fn(args[0])
	})

	root, err := s.secant(func(x float64) (float64, error) { return f(x) }, guess.Magnitude())
	if err != nil {
		return quantity.Quantity{}, err
	}
	return argUnits.Scale(root), nil
}

func (s solver) secant(f func(float64) (float64, error), x0 float64) (float64, error) {
	x1 := x0*(1+1e-4) + 1e-4
	if x0 < 0 {
		x1 = x0*(1+1e-4) - 1e-4
	}

	f0, err := f(x0)
	if err != nil {
		return 0, err
	}
	if f0 == 0 {
		return x0, nil
	}
	f1, err := f(x1)
	if err != nil {
		return 0, err
	}

	for i := 0; i < s.maxIterations; i++ {
		if f1 == 0 {
			return x1, nil
		}
		if f1 == f0 {
			return 0, uerrors.Newf(uerrors.TypeInput, "solver stalled at %g", x1)
		}

		x2 := x1 - f1*(x1-x0)/(f1-f0)
		if math.IsNaN(x2) || math.IsInf(x2, 0) {
			return 0, uerrors.Newf(uerrors.TypeInput, "solver diverged from %g", x1)
		}
		if math.Abs(x2-x1) <= s.tolerance*math.Max(1, math.Abs(x2)) {
			return x2, nil
		}

		x0, f0 = x1, f1
		x1 = x2
		if f1, err = f(x1); err != nil {
			return 0, err
		}
	}
	return 0, uerrors.Newf(uerrors.TypeInput, "no root found after %d iterations", s.maxIterations)
}
