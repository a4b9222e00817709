package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError(t *testing.T) {
	err := NewExitError(ExitFailure, "scenarios failed")
	assert.Equal(t, "scenarios failed", err.Error())
	assert.Equal(t, ExitFailure, GetExitCode(err))

	wrapped := WrapExitError(ExitCommandError, "failed to load", errors.New("boom"))
	assert.Equal(t, "failed to load: boom", wrapped.Error())
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
	assert.Equal(t, "boom", errors.Unwrap(wrapped).Error())
}

func TestGetExitCodeThroughWrapping(t *testing.T) {
	inner := NewExitError(ExitFailure, "inner")
	outer := fmt.Errorf("outer: %w", inner)

	assert.Equal(t, ExitFailure, GetExitCode(outer))
}

func TestGetExitCodePlainError(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
}

func TestOutputFormatterText(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: buf}

	err := f.Print("ignored", func(w io.Writer) {
		fmt.Fprintln(w, "hello")
	})

	require.NoError(t, err)
	assert.Equal(t, "hello\n", buf.String())
}

func TestOutputFormatterJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}

	err := f.Print(map[string]any{"result": "7"}, func(w io.Writer) {
		t.Fatal("text function must not run in json mode")
	})
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, map[string]any{"result": "7"}, resp.Data)
}
