package adapter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrAborted is returned when the operator abandons a prompt (Ctrl+C or end of input).
var ErrAborted = errors.New("aborted by operator")

// Prompter asks the operator for values. It performs no validation; callers
// validate the raw answer and re-ask after reporting the problem via Warn.
type Prompter interface {
	// Ask shows label and returns the operator's raw answer.
	Ask(label string) (string, error)
	// Choose lets the operator pick one of options and returns it.
	Choose(label string, options []string) (string, error)
	// Warn reports why the previous answer was rejected.
	Warn(message string)
}

// SimplePrompter reads answers line by line.
type SimplePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewSimplePrompter creates a SimplePrompter reading from in and writing prompts to out.
func NewSimplePrompter(in io.Reader, out io.Writer) *SimplePrompter {
	return &SimplePrompter{in: bufio.NewReader(in), out: out}
}

// Ask prints label and reads one line.
func (p *SimplePrompter) Ask(label string) (string, error) {
	_, _ = fmt.Fprintf(p.out, "%s: ", label)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if strings.TrimSpace(line) != "" {
				return strings.TrimSpace(line), nil
			}

			return "", ErrAborted
		}

		return "", fmt.Errorf("read answer: %w", err)
	}

	return strings.TrimSpace(line), nil
}

// Choose asks with the options listed after the label; the answer is not checked.
func (p *SimplePrompter) Choose(label string, options []string) (string, error) {
	return p.Ask(fmt.Sprintf("%s (%s)", label, strings.Join(options, "/")))
}

// Warn prints message followed by a retry hint.
func (p *SimplePrompter) Warn(message string) {
	_, _ = fmt.Fprintf(p.out, "%s. Please try again.\n", message)
}
