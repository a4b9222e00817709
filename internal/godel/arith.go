package godel

// Add returns x + y. Recursion on y: base x, step applies Succ.
func Add(x, y Nat) Nat {
	return Rec(y, x, func(_ Nat, acc Nat) Nat {
		return Succ(acc)
	})
}

// Mul returns x * y. Recursion on y: base 0, step adds x.
func Mul(x, y Nat) Nat {
	return Rec(y, Zero, func(_ Nat, acc Nat) Nat {
		return Add(x, acc)
	})
}

// Exp returns x ** y. Recursion on y: base 1, step multiplies by x.
func Exp(x, y Nat) Nat {
	return Rec(y, One, func(_ Nat, acc Nat) Nat {
		return Mul(x, acc)
	})
}

// Double returns 2 * x without going through Mul: the step applies Succ
// twice per unit of x.
func Double(x Nat) Nat {
	return Rec(x, Zero, func(_ Nat, acc Nat) Nat {
		return Succ(Succ(acc))
	})
}

// Pred returns the predecessor of x, saturating at 0. The step discards the
// accumulated result and returns the predecessor argument itself, so the
// whole unwind collapses to x-1 (or 0 when x is 0).
func Pred(x Nat) Nat {
	return Rec(x, Zero, func(z Nat, _ Nat) Nat {
		return z
	})
}

// Sub returns x - y, truncated at 0. Recursion on y: base x, step takes the
// predecessor, so y predecessors are peeled off x and the result never goes
// negative.
func Sub(x, y Nat) Nat {
	return Rec(y, x, func(_ Nat, acc Nat) Nat {
		return Pred(acc)
	})
}

// Rem returns x mod y for y > 0.
//
// The recursion counts upward through x steps, cycling the accumulator
// through 0..y-1: when the accumulator reaches Pred(y) it wraps to 0,
// otherwise it increments. After x steps the accumulator is x mod y. The
// guard branch yields x itself, which for x < y equals the recursion's
// answer; both branches are evaluated either way (Cases is strict).
//
// Rem(x, 0) is not special-cased. The wrap test compares against
// Pred(0) == 0, so the accumulator wraps on every step and the emergent
// answer is Rem(x, 0) == 0.
func Rem(x, y Nat) Nat {
	return Cases(Lt(x, y), x, Rec(x, Zero, func(_ Nat, acc Nat) Nat {
		return Cases(Eq(Pred(y), acc), Zero, Succ(acc))
	}))
}

// Div returns x / y (integer division) for y > 0.
//
// The recursion walks z through 0..x-1 and counts the positions where
// Rem(z, y) == Pred(y), i.e. the positions just before a multiple of y.
// There are exactly floor(x/y) of those below x, so the count is the
// quotient. Rem is recomputed at every step; no caching.
//
// Div(x, 0) is not special-cased: Rem(z, 0) == 0 == Pred(0) holds at every
// step, so the emergent answer is Div(x, 0) == x.
func Div(x, y Nat) Nat {
	return Cases(Lt(x, y), Zero, Rec(x, Zero, func(z Nat, acc Nat) Nat {
		return Cases(Eq(Pred(y), Rem(z, y)), Succ(acc), acc)
	}))
}

// IsPrime reports whether x is prime under this system's literal definition:
// x == 1, or the count of z in [0, x) with Rem(x, z) == 0 is exactly 2.
//
// Both z == 0 (Rem(x, 0) == 0 emergently) and z == 1 divide every x > 1, so
// the count is 2 exactly when no proper divisor exists. Note the quirk this
// preserves: IsPrime(1) == true, which deviates from the mathematical
// convention. Cost is O(x²) because Rem is recomputed for every candidate.
func IsPrime(x Nat) bool {
	divisors := Rec(x, Zero, func(z Nat, acc Nat) Nat {
		return Cases(IsZero(Rem(x, z)), Succ(acc), acc)
	})
	return Cases(Eq(x, One), true, Eq(divisors, Succ(One)))
}
