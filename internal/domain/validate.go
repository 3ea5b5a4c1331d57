package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	m "github.com/mouse-blink/flownorm/internal/model"
)

// ValidatePositive parses raw as a finite number greater than zero.
func ValidatePositive(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, raw)
	}

	return v, CheckPositive(v)
}

// CheckPositive rejects zero, negative and non-finite values.
func CheckPositive(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %v must be a positive number", ErrInvalidValue, v)
	}

	return nil
}

// ParsePolicy accepts "min" or "max" in any case.
func ParsePolicy(raw string) (m.Policy, error) {
	switch p := m.Policy(strings.ToLower(strings.TrimSpace(raw))); p {
	case m.PolicyMin, m.PolicyMax:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q, expected %s or %s", ErrInvalidPolicy, raw, m.PolicyMax, m.PolicyMin)
	}
}
