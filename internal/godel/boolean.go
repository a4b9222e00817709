package godel

// Not negates b via Cases.
func Not(b bool) bool {
	return Cases(b, false, true)
}

// And is the two-valued conjunction, as nested Cases on the first operand.
func And(a, b bool) bool {
	return Cases(a, b, false)
}

// Or is the two-valued disjunction.
func Or(a, b bool) bool {
	return Cases(a, true, b)
}

// Xor is the exclusive disjunction.
func Xor(a, b bool) bool {
	return Cases(a, Not(b), b)
}

// IsZero reports whether x is 0. Any positive numeral collapses to false:
// the step ignores everything and returns false, so a single unit of
// recursion is enough.
func IsZero(x Nat) bool {
	return Rec(x, true, func(_ Nat, _ bool) bool {
		return false
	})
}

// Eq reports x == y via the antisymmetric truncated-subtraction check:
// both differences must vanish. With saturating Sub this is the only valid
// equality definition, since either difference alone is 0 whenever one
// operand merely dominates the other.
func Eq(x, y Nat) bool {
	return And(IsZero(Sub(x, y)), IsZero(Sub(y, x)))
}

// Gt reports x > y.
func Gt(x, y Nat) bool {
	return Not(IsZero(Sub(x, y)))
}

// Lt reports x < y.
func Lt(x, y Nat) bool {
	return Not(IsZero(Sub(y, x)))
}

// Gte reports x >= y.
func Gte(x, y Nat) bool {
	return Or(Eq(x, y), Gt(x, y))
}

// Lte reports x <= y.
func Lte(x, y Nat) bool {
	return Or(Eq(x, y), Lt(x, y))
}
