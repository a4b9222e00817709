package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is one conformance test: a named list of invocations with
// literal expected results.
type Scenario struct {
	// Name uniquely identifies this scenario; it is also the golden file
	// name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// RunToken is an optional fixed run token for deterministic golden
	// comparison. Empty means the stable default token.
	RunToken string `yaml:"run_token,omitempty"`

	// Cases are executed in order.
	Cases []Case `yaml:"cases"`
}

// Case is a single invocation with an optional expected result.
type Case struct {
	// Invoke is the function name (registry spelling, e.g. "isPrime").
	Invoke string `yaml:"invoke"`

	// Args are positional literal arguments: integers or booleans.
	Args []any `yaml:"args"`

	// Expect is the literal expected result, compared strictly.
	// Nil means the case only contributes trace events.
	Expect any `yaml:"expect,omitempty"`
}

// ParseScenario decodes and validates a scenario from YAML bytes.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	s, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks structural requirements: a name, at least one case, and a
// function name per case. Argument and expect values are validated at
// execution time, where kind information is available.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario has no name")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("scenario %q has no cases", s.Name)
	}
	for i, c := range s.Cases {
		if c.Invoke == "" {
			return fmt.Errorf("scenario %q: case %d has no invoke", s.Name, i)
		}
	}
	return nil
}
