package godel

// Memoize wraps a unary function with a call-scoped result cache. It exists
// as an optional, separately-tested wrapper for callers that want to pay for
// sharing; nothing inside this package uses it. The core definitions
// recompute on every call, and that recomputation cost is part of the
// contract they reproduce.
//
// The returned Fn is not safe for concurrent use.
func Memoize(f Fn) Fn {
	cache := make(map[Nat]Nat)
	return func(x Nat) Nat {
		if v, ok := cache[x]; ok {
			return v
		}
		v := f(x)
		cache[x] = v
		return v
	}
}
