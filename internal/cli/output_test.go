package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatterSuccessJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, formatter.Success(map[string]int{"count": 3}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Nil(t, resp.Error)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(3), data["count"])
}

func TestOutputFormatterSuccessText(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}

	require.NoError(t, formatter.Success("done"))
	assert.Equal(t, "done\n", buf.String())
}

func TestOutputFormatterErrorJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, formatter.Error("invalid_tile", "tile has a bad symbol", "edge 2: 'Z'"))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Nil(t, resp.Data)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "invalid_tile", resp.Error.Code)
	assert.Equal(t, "tile has a bad symbol", resp.Error.Message)
	assert.Equal(t, "edge 2: 'Z'", resp.Error.Details)
}

func TestOutputFormatterErrorJSONOmitsEmptyDetails(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, formatter.Error("archive_error", "failed to open archive", nil))
	assert.NotContains(t, buf.String(), "details")
}

func TestOutputFormatterErrorText(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}

	require.NoError(t, formatter.Error("invalid_tile", "tile has a bad symbol", nil))
	assert.Equal(t, "error: tile has a bad symbol\n", buf.String())
}

func TestReportErrorJSONEnvelope(t *testing.T) {
	buf := &bytes.Buffer{}
	opts := &RootOptions{Format: "json"}

	err := reportError(opts, buf, ExitCommandError,
		"archive_error", "failed to open archive", errors.New("disk full"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "disk full")

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "archive_error", resp.Error.Code)
	assert.Equal(t, "disk full", resp.Error.Details)
}

func TestReportErrorTextLeavesOutputAlone(t *testing.T) {
	buf := &bytes.Buffer{}
	opts := &RootOptions{Format: "text"}

	err := reportError(opts, buf, ExitFailure, "invalid_tile", "invalid tile", nil)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Empty(t, buf.String())
}

func TestExitErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := WrapExitError(ExitCommandError, "wrapper", inner)
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "wrapper: boom", err.Error())

	plain := NewExitError(ExitFailure, "bare")
	assert.Equal(t, "bare", plain.Error())
	assert.Equal(t, ExitFailure, GetExitCode(plain))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("untyped")))
}
