package godel

// Nat is a natural number: int64 reused as the carrier of a unary numeral.
// Only Zero and Succ construct numerals conceptually; the integer value is
// the count of Succ applications.
//
// Invariant: never negative. Negative values violate a precondition and are
// not guarded against (see package documentation).
type Nat int64

// Zero is the empty numeral.
const Zero Nat = 0

// One is Succ(Zero), exported for readability at call sites.
const One Nat = 1

// Succ returns the successor of n.
func Succ(n Nat) Nat {
	return n + 1
}
