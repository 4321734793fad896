package errors

// CheckRange returns an OutOfRange error when value lies outside [min, max].
// NaN is always out of range.
func CheckRange(value, min, max float64) error {
	if !(value >= min && value <= max) {
		return OutOfRange(value, min, max)
	}
	return nil
}
