// Package harness provides conformance testing for the System T evaluator.
//
// The harness loads scenarios, invokes exposed functions through the
// registry with literal arguments, and compares results against literal
// expected values. It is the evaluator's only external surface: the core
// just returns values, and the harness is where divergence is signalled.
//
// # Scenario Format
//
// Scenarios are defined in YAML files:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	run_token: optional-fixed-token
//	cases:
//	  - invoke: add
//	    args: [3, 4]
//	    expect: 7
//	  - invoke: isPrime
//	    args: [127]
//	    expect: true
//
// Arguments are positional; values are integers or booleans, nothing else.
// A case with no expect clause is invoked for its trace entry only.
//
// # Deterministic Testing
//
// Every run stamps trace events from a fresh logical clock and uses a fixed
// run token (from the scenario, or a stable default), so identical scenarios
// serialize to identical bytes. RunWithGolden compares the canonical-JSON
// trace snapshot against testdata/golden/<name>.golden; regenerate with
//
//	go test ./internal/harness -update
//
// # Built-in self-test
//
// SelfTest returns the embedded scenario holding the literal
// call/expected-result pairs for every exposed function. It is the
// conformance oracle shipped with the binary (systemt selftest).
package harness
