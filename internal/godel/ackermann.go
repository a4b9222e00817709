package godel

// Ackermann returns the m-th function of the fast-growing hierarchy built by
// recursing over m to produce a sequence of unary functions:
//
//	Ackermann(0)   == Succ
//	Ackermann(m+1) == Iterate(Ackermann(m), Ackermann(m)(1))
//
// i.e. each level iterates the previous one, applied A(m)(1) times. This
// satisfies A(0)(n) == n+1 and the spine of the Ackermann-Péter recurrence;
// functions stay first-class values throughout, and each call is a fresh
// recursive unwind with no shared state.
//
// Precondition: m >= 0.
func Ackermann(m Nat) Fn {
	return Rec(m, Fn(Succ), func(_ Nat, acc Fn) Fn {
		return Iterate(acc, acc(One))
	})
}
