package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewListCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "add(nat, nat) -> nat")
	assert.Contains(t, out, "isPrime(nat) -> bool")
	assert.Contains(t, out, "not(bool) -> bool")
	assert.Contains(t, out, "ackermann(nat, nat) -> nat")
}

func TestListCommandJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewListCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	var resp Response
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	infos, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Len(t, infos, 20)
}
