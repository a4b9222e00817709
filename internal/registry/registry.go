package registry

import (
	"sort"

	"github.com/primrec/systemt/internal/term"
)

// Kind classifies an argument or result slot.
type Kind int

const (
	// KindNat is a natural-number slot.
	KindNat Kind = iota

	// KindBool is a boolean slot.
	KindBool
)

// String returns the scenario-file spelling of the kind.
func (k Kind) String() string {
	if k == KindBool {
		return "bool"
	}
	return "nat"
}

// Func is one named, invocable function: its signature plus an apply
// closure over the core. Arguments reaching apply have already been
// validated against Params.
type Func struct {
	Name   string
	Params []Kind
	Result Kind

	apply func(args []term.Value) term.Value
}

// Lookup returns the named function, or an UNKNOWN_FUNCTION error.
func Lookup(name string) (Func, error) {
	f, ok := builtins[name]
	if !ok {
		return Func{}, newEvalError(ErrCodeUnknownFunction, name, "no such function")
	}
	return f, nil
}

// Names returns all registered function names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke validates and evaluates a call by name with positional arguments.
//
// Validation order: name, arity, per-argument kind, then the non-negative
// precondition on numerals. Once validation passes, evaluation is total and
// cannot fail.
func Invoke(name string, args []term.Value) (term.Value, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	if len(args) != len(f.Params) {
		return nil, newEvalError(ErrCodeArityMismatch, name,
			"want %d argument(s), got %d", len(f.Params), len(args))
	}

	for i, arg := range args {
		switch f.Params[i] {
		case KindNat:
			n, ok := arg.(term.Num)
			if !ok {
				return nil, newEvalError(ErrCodeKindMismatch, name,
					"argument %d: want nat, got %s", i, term.String(arg))
			}
			if n < 0 {
				return nil, newEvalError(ErrCodeNegativeNumeral, name,
					"argument %d: %d is not a natural number", i, int64(n))
			}
		case KindBool:
			if _, ok := arg.(term.Bool); !ok {
				return nil, newEvalError(ErrCodeKindMismatch, name,
					"argument %d: want bool, got %s", i, term.String(arg))
			}
		}
	}

	return f.apply(args), nil
}
