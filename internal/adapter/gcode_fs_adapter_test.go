package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/flownorm/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLocalGCodeFSAdapter_CheckInput(t *testing.T) {
	dir := t.TempDir()
	a := NewLocalGCodeFSAdapter()

	gcodePath := filepath.Join(dir, "part.gcode")
	writeFile(t, gcodePath, "G1 F1200\n")

	upperPath := filepath.Join(dir, "PART.GCODE")
	writeFile(t, upperPath, "G1 F1200\n")

	textPath := filepath.Join(dir, "notes.txt")
	writeFile(t, textPath, "hello\n")

	t.Run("accepts gcode file", func(t *testing.T) {
		assert.NoError(t, a.CheckInput(m.Path(gcodePath)))
		assert.NoError(t, a.CheckInput(m.Path(upperPath)))
	})

	t.Run("rejects missing file", func(t *testing.T) {
		err := a.CheckInput(m.Path(filepath.Join(dir, "missing.gcode")))
		assert.ErrorIs(t, err, ErrNotAFile)
	})

	t.Run("rejects directory", func(t *testing.T) {
		assert.ErrorIs(t, a.CheckInput(m.Path(dir)), ErrNotAFile)
	})

	t.Run("rejects other extensions", func(t *testing.T) {
		assert.ErrorIs(t, a.CheckInput(m.Path(textPath)), ErrNotGCode)
	})
}

func TestLocalGCodeFSAdapter_ReadCommands_PreservesBytes(t *testing.T) {
	dir := t.TempDir()
	a := NewLocalGCodeFSAdapter()

	content := "; header\r\nG90\nG1 X1 F1200\n\nM104 S0"
	path := filepath.Join(dir, "part.gcode")
	writeFile(t, path, content)

	cmds, err := a.ReadCommands(m.Path(path))
	require.NoError(t, err)
	require.Len(t, cmds, 5)

	assert.Equal(t, m.Command{Number: 1, Text: "; header\r\n"}, cmds[0])
	assert.Equal(t, m.Command{Number: 4, Text: "\n"}, cmds[3])
	assert.Equal(t, m.Command{Number: 5, Text: "M104 S0"}, cmds[4])

	out := filepath.Join(dir, "copy.gcode")
	require.NoError(t, a.WriteCommands(m.Path(out), cmds))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestLocalGCodeFSAdapter_ReadCommands_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.gcode")
	writeFile(t, path, "")

	cmds, err := NewLocalGCodeFSAdapter().ReadCommands(m.Path(path))
	require.NoError(t, err)
	assert.Empty(t, cmds)
}

func TestLocalGCodeFSAdapter_OutputPath(t *testing.T) {
	dir := t.TempDir()
	a := NewLocalGCodeFSAdapter()
	input := m.Path(filepath.Join(dir, "part.gcode"))

	got, err := a.OutputPath(input, 12.5)
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(dir, "part_flow_12.5_normalized.gcode")), got)

	writeFile(t, string(got), "taken")

	got, err = a.OutputPath(input, 12.5)
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(dir, "part_flow_12.5_normalized_1.gcode")), got)

	writeFile(t, string(got), "taken")

	got, err = a.OutputPath(input, 12.5)
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(dir, "part_flow_12.5_normalized_2.gcode")), got)
}

func TestLocalGCodeFSAdapter_WriteCommands_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	a := NewLocalGCodeFSAdapter()

	path := filepath.Join(dir, "out.gcode")
	require.NoError(t, a.WriteCommands(m.Path(path), []m.Command{{Number: 1, Text: "G1 F600\n"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.gcode", entries[0].Name())
}

func TestLocalGCodeFSAdapter_WriteCommands_MissingDirectory(t *testing.T) {
	a := NewLocalGCodeFSAdapter()

	err := a.WriteCommands(m.Path(filepath.Join(t.TempDir(), "nope", "out.gcode")), nil)
	assert.Error(t, err)
}
