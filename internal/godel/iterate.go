package godel

// Fn is a unary numeric function as a first-class value: something to be
// composed and applied some number of times. Composition builds new values
// and never mutates the originals.
type Fn func(Nat) Nat

// Identity returns its argument unchanged. It is the base of Iterate.
func Identity(x Nat) Nat {
	return x
}

// Compose returns the function x -> f(g(x)).
func Compose(f, g Fn) Fn {
	return func(x Nat) Nat {
		return f(g(x))
	}
}

// Iterate returns the n-fold self-composition of f, built by recursing over
// Fn values: base Identity, step Compose(f, acc). The newly applied f sits
// outermost, so Iterate(f, 2)(x) == f(f(x)).
//
// Precondition: n >= 0.
func Iterate(f Fn, n Nat) Fn {
	return Rec(n, Fn(Identity), func(_ Nat, acc Fn) Fn {
		return Compose(f, acc)
	})
}
