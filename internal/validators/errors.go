package validators

import "errors"

var (
	// ErrUnsupportedInput is returned when Validate receives a value of a
	// type the validator does not know how to check.
	ErrUnsupportedInput = errors.New("unsupported input type for validation")

	// ErrFieldTooLong is returned (wrapped, with field name and limit) when a
	// listing field exceeds the platform's length limit.
	ErrFieldTooLong = errors.New("listing field exceeds platform limit")
)
