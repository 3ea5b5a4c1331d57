package controller

import (
	"bytes"
	"fmt"
	"strings"

	m "github.com/mouse-blink/flownorm/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output and plain tables.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayAnalysis prints the flow extrema found in a file.
func (s *SimpleUI) DisplayAnalysis(analysis m.Analysis) error {
	rows := [][]string{
		{"Model", string(analysis.Model)},
		{"Lines", fmt.Sprintf("%d", analysis.Lines)},
		{"Analyzed moves", fmt.Sprintf("%d", analysis.Extrema.Count)},
		{"Area (mm²)", formatFlow(analysis.Area)},
		{"Max flow rate (mm³/s)", formatExtremum(analysis.Extrema, analysis.Extrema.Max)},
		{"Min flow rate (mm³/s)", formatExtremum(analysis.Extrema, analysis.Extrema.Min)},
	}

	if analysis.Cap > 0 {
		rows = append(rows,
			[]string{"Cap (mm³/s)", formatFlow(analysis.Cap)},
			[]string{"Moves over cap", fmt.Sprintf("%d", analysis.OverCap)},
		)
	}

	s.printf("Calculated file %s\n%s", analysis.Input, renderTable([]string{"Metric", "Value"}, rows, nil))

	return nil
}

// DisplayScaling prints the selected policy and the resolved factor.
func (s *SimpleUI) DisplayScaling(policy m.Policy, target, factor float64) {
	s.printf("Will normalize to %s flow rate %s mm³/s\n", strings.ToUpper(string(policy)), formatFlow(target))
	s.printf("Scaling factor: %v\n", factor)
}

// DisplayResult prints the before/after extrema and where the output went.
func (s *SimpleUI) DisplayResult(result m.Result) error {
	if result.NoActionNeeded {
		s.printf("No flow rate exceeds %s mm³/s, no action needed.\n", formatFlow(result.Params.Target))
		return nil
	}

	rows := [][]string{
		{"Max flow rate (mm³/s)", formatExtremum(result.Before, result.Before.Max), formatExtremum(result.After, result.After.Max)},
		{"Min flow rate (mm³/s)", formatExtremum(result.Before, result.Before.Min), formatExtremum(result.After, result.After.Min)},
	}
	footer := []string{"Rewritten lines", "", fmt.Sprintf("%d", len(result.Rewrites))}

	s.printf("%s", renderTable([]string{"Metric", "Before", "After"}, rows, footer))

	if result.Written {
		s.printf("Normalized G-code has been saved to %s.\n", result.Output)
	} else {
		s.printf("Dry run, %s was not written.\n", result.Output)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderTable(header []string, rows [][]string, footer []string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)

	if footer != nil {
		table.SetFooter(footer)
	}

	table.Render()

	return "\n" + tableBuffer.String()
}
