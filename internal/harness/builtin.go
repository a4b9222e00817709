package harness

import (
	_ "embed"
	"fmt"
)

//go:embed builtin/selftest.yaml
var selftestYAML []byte

// SelfTest returns the built-in conformance scenario: the literal
// call/expected-result pairs covering every exposed function. It ships
// embedded in the binary so `systemt selftest` needs no external files.
func SelfTest() (*Scenario, error) {
	s, err := ParseScenario(selftestYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded selftest scenario is invalid: %w", err)
	}
	return s, nil
}
