// Package term defines the value model used at the evaluator's boundary:
// the results and literal arguments that the registry, harness, and CLI
// exchange. A Value is either a Num (natural number on an int64 carrier) or
// a Bool; the sealed interface keeps floats and nulls out by construction.
//
// The package also provides canonical JSON serialization for golden
// snapshot comparison: object keys sorted, strings NFC-normalized, no HTML
// escaping, and no floats. Identical traces always serialize to identical
// bytes.
package term
