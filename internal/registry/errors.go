package registry

import "fmt"

// EvalError represents a rejected invocation. The core language is total, so
// every EvalError is a boundary problem: a bad name, a bad shape, or a
// precondition violation. Nothing fails once evaluation actually starts.
type EvalError struct {
	// Code identifies the error category.
	Code EvalErrorCode

	// Function is the requested function name.
	Function string

	// Message is a human-readable description.
	Message string
}

// EvalErrorCode categorizes invocation errors.
type EvalErrorCode string

const (
	// ErrCodeUnknownFunction indicates the name is not in the registry.
	ErrCodeUnknownFunction EvalErrorCode = "UNKNOWN_FUNCTION"

	// ErrCodeArityMismatch indicates the wrong number of arguments.
	ErrCodeArityMismatch EvalErrorCode = "ARITY_MISMATCH"

	// ErrCodeKindMismatch indicates an argument of the wrong kind
	// (boolean where a numeral is required, or vice versa).
	ErrCodeKindMismatch EvalErrorCode = "KIND_MISMATCH"

	// ErrCodeNegativeNumeral indicates a negative value where a natural
	// number is required. The core's behavior on negatives is undefined,
	// so the boundary rejects them outright.
	ErrCodeNegativeNumeral EvalErrorCode = "NEGATIVE_NUMERAL"
)

// Error implements the error interface.
func (e *EvalError) Error() string {
	if e.Function != "" {
		return fmt.Sprintf("%s: %s (function=%s)", e.Code, e.Message, e.Function)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newEvalError(code EvalErrorCode, function, format string, args ...any) *EvalError {
	return &EvalError{
		Code:     code,
		Function: function,
		Message:  fmt.Sprintf(format, args...),
	}
}
