// Package registry exposes the evaluator's functions by name for the
// conformance harness and the CLI. Each entry carries the function's arity
// and argument/result kinds, and an Invoke call validates name, arity,
// kinds, and the non-negative numeral precondition before the core ever
// sees the arguments. The core itself does not guard (see package godel);
// this boundary is where malformed input is rejected.
package registry
