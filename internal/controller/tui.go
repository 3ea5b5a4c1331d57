package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/flownorm/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(24)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Margin(0, 1).
			Padding(0, 1)
)

// TUI implements UI with lipgloss styled panels.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayAnalysis renders the flow extrema of a file.
func (t *TUI) DisplayAnalysis(analysis m.Analysis) error {
	rows := [][2]string{
		{"Model", string(analysis.Model)},
		{"Lines", fmt.Sprintf("%d", analysis.Lines)},
		{"Analyzed moves", fmt.Sprintf("%d", analysis.Extrema.Count)},
		{"Area", formatFlow(analysis.Area) + " mm²"},
		{"Max flow rate", formatExtremum(analysis.Extrema, analysis.Extrema.Max) + " mm³/s"},
		{"Min flow rate", formatExtremum(analysis.Extrema, analysis.Extrema.Min) + " mm³/s"},
	}

	if analysis.Cap > 0 {
		rows = append(rows,
			[2]string{"Cap", formatFlow(analysis.Cap) + " mm³/s"},
			[2]string{"Moves over cap", fmt.Sprintf("%d", analysis.OverCap)},
		)
	}

	_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Flow analysis"),
		mutedStyle.Render("  "+string(analysis.Input)),
		boxStyle.Render(renderRows(rows)),
	))

	return err
}

// DisplayScaling renders the selected policy and factor.
func (t *TUI) DisplayScaling(policy m.Policy, target, factor float64) {
	_, _ = fmt.Fprintf(t.output, "  Normalizing %s flow rate to %s, scaling factor %s\n",
		accentStyle.Render(strings.ToUpper(string(policy))),
		accentStyle.Render(formatFlow(target)+" mm³/s"),
		accentStyle.Render(fmt.Sprintf("%v", factor)),
	)
}

// DisplayResult renders the before/after extrema and the output location.
func (t *TUI) DisplayResult(result m.Result) error {
	if result.NoActionNeeded {
		_, err := fmt.Fprintf(t.output, "  %s every flow rate is within %s mm³/s, no file written\n",
			okStyle.Render("✓"), formatFlow(result.Params.Target))

		return err
	}

	rows := [][2]string{
		{"Max flow rate", fmt.Sprintf("%s → %s mm³/s",
			formatExtremum(result.Before, result.Before.Max), formatExtremum(result.After, result.After.Max))},
		{"Min flow rate", fmt.Sprintf("%s → %s mm³/s",
			formatExtremum(result.Before, result.Before.Min), formatExtremum(result.After, result.After.Min))},
		{"Rewritten lines", fmt.Sprintf("%d", len(result.Rewrites))},
	}

	status := okStyle.Render("✓") + " saved to " + accentStyle.Render(string(result.Output))
	if !result.Written {
		status = mutedStyle.Render("dry run, not written: ") + accentStyle.Render(string(result.Output))
	}

	_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Normalized"),
		boxStyle.Render(renderRows(rows)),
		"  "+status,
	))

	return err
}

func renderRows(rows [][2]string) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, keyStyle.Render(row[0])+accentStyle.Render(row[1]))
	}

	return strings.Join(lines, "\n")
}
