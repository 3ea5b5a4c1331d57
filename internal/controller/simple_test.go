package controller

import (
	"bytes"
	"testing"

	m "github.com/mouse-blink/flownorm/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_DisplayAnalysis_PrintsTable(t *testing.T) {
	ui, buf := newTestSimpleUI()

	err := ui.DisplayAnalysis(m.Analysis{
		Model:   m.ModelExtrusion,
		Input:   "part.gcode",
		Lines:   42,
		Area:    0.1257,
		Extrema: m.FlowExtrema{Min: 1.5, Max: 12.25, Count: 7},
		Cap:     10,
		OverCap: 3,
	})
	require.NoError(t, err)

	output := buf.String()
	for _, want := range []string{
		"Calculated file part.gcode",
		"METRIC",
		"extrusion",
		"42",
		"12.2500",
		"1.5000",
		"Moves over cap",
		"3",
	} {
		assert.Contains(t, output, want)
	}
}

func TestSimpleUI_DisplayAnalysis_EmptyExtrema(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplayAnalysis(m.Analysis{Model: m.ModelCrossSection, Extrema: m.NewFlowExtrema()}))

	assert.Contains(t, buf.String(), notAvailable)
	assert.NotContains(t, buf.String(), "Inf")
	assert.NotContains(t, buf.String(), "Cap")
}

func TestSimpleUI_DisplayScaling(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayScaling(m.PolicyMax, 8, 0.5)

	assert.Contains(t, buf.String(), "Will normalize to MAX flow rate 8.0000 mm³/s")
	assert.Contains(t, buf.String(), "Scaling factor: 0.5")
}

func TestSimpleUI_DisplayResult(t *testing.T) {
	t.Run("written", func(t *testing.T) {
		ui, buf := newTestSimpleUI()

		err := ui.DisplayResult(m.Result{
			Output:   "part_flow_8_normalized.gcode",
			Before:   m.FlowExtrema{Min: 2, Max: 16, Count: 2},
			After:    m.FlowExtrema{Min: 1, Max: 8, Count: 2},
			Rewrites: []m.Rewrite{{Line: 1}, {Line: 2}},
			Written:  true,
		})
		require.NoError(t, err)

		output := buf.String()
		assert.Contains(t, output, "16.0000")
		assert.Contains(t, output, "8.0000")
		assert.Contains(t, output, "REWRITTEN LINES")
		assert.Contains(t, output, "Normalized G-code has been saved to part_flow_8_normalized.gcode.")
	})

	t.Run("dry run", func(t *testing.T) {
		ui, buf := newTestSimpleUI()

		require.NoError(t, ui.DisplayResult(m.Result{Output: "out.gcode", Before: m.NewFlowExtrema(), After: m.NewFlowExtrema()}))
		assert.Contains(t, buf.String(), "Dry run, out.gcode was not written.")
	})

	t.Run("no action needed", func(t *testing.T) {
		ui, buf := newTestSimpleUI()

		require.NoError(t, ui.DisplayResult(m.Result{NoActionNeeded: true, Params: m.Params{Target: 15}}))
		assert.Equal(t, "No flow rate exceeds 15.0000 mm³/s, no action needed.\n", buf.String())
	})
}
