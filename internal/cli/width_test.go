package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidth_Text(t *testing.T) {
	stdout, _, err := executeCommand(t, "width", "uint128")
	require.NoError(t, err)
	assert.Equal(t, "uint128: 128 bits\n", stdout)
}

func TestWidth_JSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "--format", "json", "width", "bytes4")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var report WidthReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "bytes4", report.Type)
	assert.Equal(t, 32, report.Bits)
}

func TestWidth_UnrecognizedType(t *testing.T) {
	stdout, _, err := executeCommand(t, "width", "mapping")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stdout, "Error [UNRECOGNIZED_TYPE]")
}

func TestWidth_RequiresExactlyOneArg(t *testing.T) {
	_, _, err := executeCommand(t, "width")
	require.Error(t, err)

	_, _, err = executeCommand(t, "width", "bool", "byte")
	require.Error(t, err)
}
