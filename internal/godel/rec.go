package godel

// Rec is the recursor: the single structural-recursion primitive that every
// other function in this package is built from.
//
// Contract:
//   - Rec(0, base, step) == base
//   - Rec(n, base, step) == step(n-1, Rec(n-1, base, step)) for n > 0
//
// The recursive call is always on a strictly smaller numeral, so Rec
// terminates for every non-negative n. There is no memoization; equal calls
// recompute from scratch. Stack depth grows linearly with n.
//
// Precondition: n >= 0.
func Rec[T any](n Nat, base T, step func(pred Nat, acc T) T) T {
	if n == Zero {
		return base
	}
	return step(n-1, Rec(n-1, base, step))
}

// RecIter is an opt-in iterative rewrite of Rec behind the same contract,
// for callers that would otherwise exhaust the host stack. Rec remains the
// definition of record; RecIter computes the identical unwind with a loop.
//
// Precondition: n >= 0.
func RecIter[T any](n Nat, base T, step func(pred Nat, acc T) T) T {
	acc := base
	for i := Zero; i < n; i++ {
		acc = step(i, acc)
	}
	return acc
}

// Cases is the strict two-branch selector used for case analysis. Both
// branches are fully evaluated before selection: Go evaluates arguments
// eagerly, and callers must not reintroduce laziness by wrapping branches in
// thunks. Several arithmetic definitions pass already-computed recursor
// results as branch arguments and rely on this contract.
func Cases[T any](cond bool, thenVal, elseVal T) T {
	if cond {
		return thenVal
	}
	return elseVal
}
