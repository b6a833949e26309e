package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBuiltin(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"example-2x2"})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "example-2x2", data["puzzle"])
	assert.Equal(t, float64(2), data["rows"])
	assert.Equal(t, float64(2), data["cols"])
	assert.Equal(t, true, data["count_match"])

	// The pool is canonical and sorted, duplicates kept.
	pool, ok := data["pool"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"AACC", "ABDC", "ABDC", "BBDD"}, pool)
}

func TestValidateCountMismatch(t *testing.T) {
	def := `name: short
rows: 2
cols: 2
tiles:
  - AACC
  - BBDD
  - ABDC
`
	path := filepath.Join(t.TempDir(), "short.yaml")
	require.NoError(t, os.WriteFile(path, []byte(def), 0644))

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{path})

	// A count mismatch is reported, not rejected.
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "warning")
	assert.Contains(t, buf.String(), "3 tiles for 4 cells")
}

func TestValidateSchemaViolation(t *testing.T) {
	def := `name: bad
rows: 0
cols: 2
tiles:
  - AACC
`
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(def), 0644))

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation")
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestValidateUnknownSymbol(t *testing.T) {
	// Z passes the schema's letter pattern but has no complement in
	// the default alphabet.
	def := `name: oddball
rows: 1
cols: 1
tiles:
  - AAAZ
`
	path := filepath.Join(t.TempDir(), "oddball.yaml")
	require.NoError(t, os.WriteFile(path, []byte(def), 0644))

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tiles")
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestValidateUnknownSymbolJSON(t *testing.T) {
	def := `name: oddball
rows: 1
cols: 1
tiles:
  - AAAZ
`
	path := filepath.Join(t.TempDir(), "oddball.yaml")
	require.NoError(t, os.WriteFile(path, []byte(def), 0644))

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	// JSON mode still emits a machine-readable envelope on failure.
	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "invalid_tiles", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "AAAZ")
}

func TestValidateMissingFile(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"/nonexistent/puzzle.yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
