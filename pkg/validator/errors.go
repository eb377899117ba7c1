package validator

import "errors"

var (
	// ErrValidationFailed matches any Violations returned as an error.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidConfig is returned when Config holds values the validator cannot use.
	ErrInvalidConfig = errors.New("invalid validator config")
)
