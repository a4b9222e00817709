package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenario(t *testing.T) {
	data := []byte(`
name: smoke
description: "basic smoke"
run_token: smoke-001
cases:
  - invoke: add
    args: [1, 2]
    expect: 3
  - invoke: isZero
    args: [0]
    expect: true
`)

	s, err := ParseScenario(data)
	require.NoError(t, err)

	assert.Equal(t, "smoke", s.Name)
	assert.Equal(t, "smoke-001", s.RunToken)
	require.Len(t, s.Cases, 2)
	assert.Equal(t, "add", s.Cases[0].Invoke)
	assert.Equal(t, []any{1, 2}, s.Cases[0].Args)
	assert.Equal(t, 3, s.Cases[0].Expect)
	assert.Equal(t, true, s.Cases[1].Expect)
}

func TestParseScenarioInvalidYAML(t *testing.T) {
	_, err := ParseScenario([]byte("cases: [}"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		scenario Scenario
		wantErr  string
	}{
		{
			name:     "missing name",
			scenario: Scenario{Cases: []Case{{Invoke: "add"}}},
			wantErr:  "no name",
		},
		{
			name:     "no cases",
			scenario: Scenario{Name: "empty"},
			wantErr:  "no cases",
		},
		{
			name:     "case without invoke",
			scenario: Scenario{Name: "bad", Cases: []Case{{Args: []any{1}}}},
			wantErr:  "no invoke",
		},
		{
			name:     "valid",
			scenario: Scenario{Name: "ok", Cases: []Case{{Invoke: "pred", Args: []any{1}}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "arithmetic_basics.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "arithmetic_basics", s.Name)
	assert.Len(t, s.Cases, 4)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadScenarioInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: x\ncases: []\n"), 0o644))

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no cases")
}
