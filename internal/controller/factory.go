package controller

import "github.com/spf13/cobra"

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (lipgloss styled).
// When useTTY is false, it returns a SimpleUI (plain tables).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}
