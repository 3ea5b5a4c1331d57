package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mouse-blink/flownorm/internal/adapter"
	m "github.com/mouse-blink/flownorm/internal/model"
)

// acquireInput returns preset once it passes the input check. Without a
// preset the operator is asked until an existing G-code file is named.
func (n *normalizer) acquireInput(preset m.Path) (m.Path, error) {
	if preset != "" {
		return preset, n.fsAdapter.CheckInput(preset)
	}

	for {
		raw, err := n.prompter.Ask("Enter the path to your input G-code file")
		if err != nil {
			return "", err
		}

		path := m.Path(strings.TrimSpace(raw))

		err = n.fsAdapter.CheckInput(path)
		if err == nil {
			return path, nil
		}

		n.prompter.Warn(err.Error())
	}
}

// acquire returns preset when it is usable, otherwise it keeps asking the
// operator until a positive number is entered or the prompt is aborted.
func (n *normalizer) acquire(preset float64, label, name string) (float64, error) {
	if preset != 0 {
		if err := CheckPositive(preset); err != nil {
			return 0, fmt.Errorf("%s: %w", name, err)
		}

		return preset, nil
	}

	for {
		raw, err := n.prompter.Ask(label)
		if err != nil {
			return 0, err
		}

		value, err := ValidatePositive(raw)
		if err == nil {
			return value, nil
		}

		n.logger.Debug("Rejected input", "field", name, "raw", raw, "err", err)
		n.prompter.Warn(fmt.Sprintf("Invalid %s %q", name, strings.TrimSpace(raw)))
	}
}

// acquirePolicy returns preset when set, otherwise asks the operator to
// choose between MAX and MIN.
func (n *normalizer) acquirePolicy(preset m.Policy) (m.Policy, error) {
	if preset != "" {
		return ParsePolicy(string(preset))
	}

	options := make([]string, 0, len(m.Policies()))
	for _, p := range m.Policies() {
		options = append(options, policyLabel(p))
	}

	for {
		raw, err := n.prompter.Choose("Normalize to MAX or MIN flow rate?", options)
		if errors.Is(err, adapter.ErrAborted) {
			return "", err
		}

		if err != nil {
			return "", fmt.Errorf("policy prompt: %w", err)
		}

		policy, err := ParsePolicy(raw)
		if err == nil {
			return policy, nil
		}

		n.prompter.Warn(fmt.Sprintf("Invalid choice %q", raw))
	}
}
