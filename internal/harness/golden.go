package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/primrec/systemt/internal/term"
)

// TraceSnapshot captures a scenario execution for golden comparison. It is
// serialized with the canonical marshaler so identical runs always produce
// identical bytes.
type TraceSnapshot struct {
	ScenarioName string
	RunToken     string
	Trace        []TraceEvent
}

// NewTraceSnapshot builds the snapshot for a finished run.
func NewTraceSnapshot(scenario *Scenario, result *Result) *TraceSnapshot {
	return &TraceSnapshot{
		ScenarioName: scenario.Name,
		RunToken:     result.RunToken,
		Trace:        result.Trace,
	}
}

// MarshalCanonical serializes the snapshot as canonical JSON.
func (s *TraceSnapshot) MarshalCanonical() ([]byte, error) {
	trace := make([]any, len(s.Trace))
	for i, event := range s.Trace {
		eventMap := map[string]any{
			"type": event.Type,
			"seq":  event.Seq,
		}
		if event.Function != "" {
			eventMap["function"] = event.Function
		}
		if event.Args != nil {
			args := make([]any, len(event.Args))
			for j, a := range event.Args {
				args[j] = a
			}
			eventMap["args"] = args
		}
		if event.Result != nil {
			eventMap["result"] = event.Result
		}
		trace[i] = eventMap
	}

	return term.MarshalCanonical(map[string]any{
		"scenario_name": s.ScenarioName,
		"run_token":     s.RunToken,
		"trace":         trace,
	})
}

// RunWithGolden executes a scenario and compares its trace snapshot against
// testdata/golden/<scenario name>.golden. Regenerate golden files with
//
//	go test ./internal/harness -update
//
// Scenario execution errors are returned; snapshot divergence fails t via
// goldie.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	data, err := NewTraceSnapshot(scenario, result).MarshalCanonical()
	if err != nil {
		return nil, err
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
	g.Assert(t, scenario.Name, data)
	return result, nil
}
