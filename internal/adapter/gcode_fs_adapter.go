// Package adapter contains terminal and file-system collaborators for the flownorm CLI.
package adapter

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	m "github.com/mouse-blink/flownorm/internal/model"
)

const gcodeExt = ".gcode"

var (
	// ErrNotAFile is returned when the input path is missing or is a directory.
	ErrNotAFile = errors.New("input path is not a file")
	// ErrNotGCode is returned when the input path lacks the .gcode extension.
	ErrNotGCode = errors.New("input file must be a G-code file")
)

// GCodeFSAdapter abstracts the file-system operations the normalizer relies
// on, so the workflow can be tested without touching the disk.
type GCodeFSAdapter interface {
	// CheckInput verifies that path names an existing .gcode file.
	CheckInput(path m.Path) error

	// ReadCommands loads every line of the file at path. Line terminators are
	// kept so that writing the commands back reproduces the file exactly.
	ReadCommands(path m.Path) ([]m.Command, error)

	// OutputPath derives the output file name from the input path and the
	// target flow rate, adding a numeric suffix until no existing file is hit.
	OutputPath(input m.Path, target float64) (m.Path, error)

	// WriteCommands writes commands to path through a temporary file that is
	// renamed into place, so an interrupted run leaves no partial output.
	WriteCommands(path m.Path, commands []m.Command) error
}

// LocalGCodeFSAdapter implements GCodeFSAdapter on the local file system.
type LocalGCodeFSAdapter struct{}

// NewLocalGCodeFSAdapter constructs a LocalGCodeFSAdapter.
func NewLocalGCodeFSAdapter() *LocalGCodeFSAdapter {
	return &LocalGCodeFSAdapter{}
}

// CheckInput rejects missing paths, directories and non-.gcode files.
func (a *LocalGCodeFSAdapter) CheckInput(path m.Path) error {
	info, err := os.Stat(string(path))
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotAFile, path)
	}

	if !strings.EqualFold(filepath.Ext(string(path)), gcodeExt) {
		return fmt.Errorf("%w: %s", ErrNotGCode, path)
	}

	return nil
}

// ReadCommands splits the file after every newline.
func (a *LocalGCodeFSAdapter) ReadCommands(path m.Path) ([]m.Command, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, err
	}

	lines := bytes.SplitAfter(data, []byte("\n"))
	if len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}

	commands := make([]m.Command, 0, len(lines))
	for i, line := range lines {
		commands = append(commands, m.Command{Number: i + 1, Text: string(line)})
	}

	return commands, nil
}

// OutputPath returns <input>_flow_<target>_normalized.gcode, or the first
// free <input>_flow_<target>_normalized_<n>.gcode.
func (a *LocalGCodeFSAdapter) OutputPath(input m.Path, target float64) (m.Path, error) {
	in := string(input)
	base := strings.TrimSuffix(in, filepath.Ext(in)) + "_flow_" + strconv.FormatFloat(target, 'f', -1, 64) + "_normalized"

	candidate := base + gcodeExt

	for n := 1; ; n++ {
		exists, err := fileExists(candidate)
		if err != nil {
			return "", err
		}

		if !exists {
			return m.Path(candidate), nil
		}

		candidate = fmt.Sprintf("%s_%d%s", base, n, gcodeExt)
	}
}

// WriteCommands writes atomically via a temporary file in the target directory.
func (a *LocalGCodeFSAdapter) WriteCommands(path m.Path, commands []m.Command) error {
	dest := string(path)

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".flownorm-*")
	if err != nil {
		return err
	}

	tmpPath := tmp.Name()

	defer func() {
		_ = os.Remove(tmpPath)
	}()

	w := bufio.NewWriter(tmp)
	for _, cmd := range commands {
		if _, err := w.WriteString(cmd.Text); err != nil {
			_ = tmp.Close()
			return err
		}
	}

	if err := w.Flush(); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil { //nolint:gosec // G-code output is not secret
		return err
	}

	return os.Rename(tmpPath, dest)
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}
