package harness

import "github.com/primrec/systemt/internal/term"

// TraceEvent is one entry in a scenario's execution trace: either the
// invocation of a function or the completion carrying its result.
type TraceEvent struct {
	Type     string       `json:"type"` // "invocation" or "completion"
	Function string       `json:"function,omitempty"`
	Args     []term.Value `json:"args,omitempty"`
	Result   term.Value   `json:"result,omitempty"`
	Seq      int64        `json:"seq"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every expect clause matched.
	Pass bool `json:"pass"`

	// RunToken identifies this execution.
	RunToken string `json:"run_token"`

	// Trace contains invocations and completions in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains expectation mismatches. Empty when Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result for the given run token.
func NewResult(runToken string) *Result {
	return &Result{
		Pass:     true,
		RunToken: runToken,
		Trace:    []TraceEvent{},
		Errors:   []string{},
	}
}

// AddError records an expectation mismatch and marks the result failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}

// AddInvocation appends an invocation event.
func (r *Result) AddInvocation(function string, args []term.Value, seq int64) {
	r.Trace = append(r.Trace, TraceEvent{
		Type:     "invocation",
		Function: function,
		Args:     args,
		Seq:      seq,
	})
}

// AddCompletion appends a completion event.
func (r *Result) AddCompletion(result term.Value, seq int64) {
	r.Trace = append(r.Trace, TraceEvent{
		Type:   "completion",
		Result: result,
		Seq:    seq,
	})
}
