package money

import "errors"

// Common money package errors
var (
	// ErrInvalidAmount is returned when a textual amount cannot be parsed
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidDecimalPlaces is returned when an amount carries more decimal
	// places than the currency allows
	ErrInvalidDecimalPlaces = errors.New("amount has more decimal places than allowed by the currency")
)
