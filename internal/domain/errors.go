package domain

import "errors"

var (
	// ErrDegenerateExtrema means no usable flow rate was found, so no scaling
	// factor can be derived.
	ErrDegenerateExtrema = errors.New("degenerate flow extrema")
	// ErrInvalidValue marks a non-numeric or non-positive operator value.
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidPolicy marks a normalization policy other than min or max.
	ErrInvalidPolicy = errors.New("invalid normalization policy")
)
