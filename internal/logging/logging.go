// Package logging builds the diagnostic logger shared by the commands.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at the named level. An unknown level
// falls back to info and is reported through the returned error.
func New(w io.Writer, level string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "flownorm",
		ReportTimestamp: false,
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.SetLevel(log.InfoLevel)
		return logger, err
	}

	logger.SetLevel(lvl)

	return logger, nil
}

// Default returns an info-level logger on stderr.
func Default() *log.Logger {
	logger, _ := New(os.Stderr, "info")

	return logger
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	logger, _ := New(io.Discard, "fatal")

	return logger
}
