package adapter

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewPrompter creates a Prompter based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUIPrompter (Bubble Tea).
// When useTTY is false, it returns a SimplePrompter (line based).
func NewPrompter(cmd *cobra.Command, useTTY bool) Prompter {
	if useTTY {
		return NewTUIPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	return NewSimplePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns true if the output is an interactive terminal.
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
