// Package controller renders normalization results for the operator.
package controller

import (
	"fmt"

	m "github.com/mouse-blink/flownorm/internal/model"
)

// UI defines how analysis and normalization results are shown.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayAnalysis(analysis m.Analysis) error
	DisplayScaling(policy m.Policy, target, factor float64)
	DisplayResult(result m.Result) error
}

const notAvailable = "n/a"

func formatFlow(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

func formatExtremum(e m.FlowExtrema, v float64) string {
	if e.Empty() {
		return notAvailable
	}

	return formatFlow(v)
}
