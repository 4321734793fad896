package quantity

import uerrors "unties/internal/errors"

// Errors returned by quantity operations, for use with errors.Is.
var (
	// ErrIncompatibleUnits is returned when two dimensions differ
	ErrIncompatibleUnits = uerrors.ErrIncompatibleUnits

	// ErrNotDimensionless is returned when a bare number is required
	ErrNotDimensionless = uerrors.ErrNotDimensionless
)
