package domain

import (
	"fmt"
	"math"

	m "github.com/mouse-blink/flownorm/internal/model"
)

// ResolveFactor returns the global scaling factor that moves the extremum
// selected by policy onto target.
func ResolveFactor(policy m.Policy, target float64, extrema m.FlowExtrema) (float64, error) {
	var reference float64

	switch policy {
	case m.PolicyMax:
		reference = extrema.Max
	case m.PolicyMin:
		reference = extrema.Min
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, policy)
	}

	if extrema.Empty() {
		return 0, fmt.Errorf("%w: no motion command carries a feed rate", ErrDegenerateExtrema)
	}

	if !usable(reference) {
		return 0, fmt.Errorf("%w: %s flow rate is %v", ErrDegenerateExtrema, policy, reference)
	}

	factor := target / reference
	if !usable(factor) {
		return 0, fmt.Errorf("%w: scaling factor is %v", ErrDegenerateExtrema, factor)
	}

	return factor, nil
}

// LocalFactor returns the factor that brings flow down to limit, and whether
// flow exceeds limit at all.
func LocalFactor(limit, flow float64) (float64, bool) {
	if flow <= limit {
		return 1, false
	}

	return limit / flow, true
}

func usable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
