// Package godel implements a small evaluator for Gödel's System T: a total
// language of primitive-recursive functions over natural numbers, built from
// a single structural-recursion primitive.
//
// Everything in this package reduces to Rec. The arithmetic library, the
// boolean library, function iteration, and the Ackermann construction are all
// defined by composing Rec and Cases; no other looping construct appears in
// any definition. There is no memoization: calling a function twice with the
// same numeral recomputes from scratch, which is part of the cost model this
// package reproduces (IsPrime is O(x²) on purpose).
//
// # Numerals
//
// Nat reuses int64 as the carrier of a unary numeral. Zero and Succ are the
// only conceptual constructors. All functions require non-negative inputs;
// passing a negative Nat violates a precondition and has undefined behavior.
// The package does not guard against it.
//
// # Stack depth
//
// Rec is defined by direct self-recursion, so host stack depth grows linearly
// with the numeral being recursed over. Large inputs risk stack exhaustion.
// This shape is deliberate: it mirrors System T's recursor rather than an
// iterative rewrite. RecIter provides an opt-in loop-based equivalent behind
// the same contract for callers that need depth safety.
package godel
