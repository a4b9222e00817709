package godel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	assert.Equal(t, Nat(7), Add(3, 4))
	assert.Equal(t, Nat(5), Add(0, 5))
	assert.Equal(t, Nat(5), Add(5, 0))
}

func TestAddCommutativeAssociative(t *testing.T) {
	for a := Zero; a <= 6; a++ {
		for b := Zero; b <= 6; b++ {
			assert.Equal(t, Add(a, b), Add(b, a), "a=%d b=%d", a, b)
			for c := Zero; c <= 6; c++ {
				assert.Equal(t, Add(Add(a, b), c), Add(a, Add(b, c)))
			}
		}
	}
}

func TestMul(t *testing.T) {
	assert.Equal(t, Nat(12), Mul(3, 4))
	assert.Equal(t, Zero, Mul(0, 9))
	assert.Equal(t, Zero, Mul(9, 0))
	assert.Equal(t, Nat(9), Mul(9, 1))
}

func TestMulCommutativeAssociative(t *testing.T) {
	for a := Zero; a <= 5; a++ {
		for b := Zero; b <= 5; b++ {
			assert.Equal(t, Mul(a, b), Mul(b, a), "a=%d b=%d", a, b)
			for c := Zero; c <= 5; c++ {
				assert.Equal(t, Mul(Mul(a, b), c), Mul(a, Mul(b, c)))
			}
		}
	}
}

func TestExp(t *testing.T) {
	assert.Equal(t, Nat(32), Exp(2, 5))
	assert.Equal(t, Nat(27), Exp(3, 3))
	assert.Equal(t, One, Exp(7, 0))
	assert.Equal(t, Nat(7), Exp(7, 1))
	assert.Equal(t, Zero, Exp(0, 3))
}

func TestDouble(t *testing.T) {
	for x := Zero; x <= 10; x++ {
		assert.Equal(t, Mul(2, x), Double(x), "x=%d", x)
	}
}

func TestPred(t *testing.T) {
	assert.Equal(t, Zero, Pred(0), "pred saturates at zero")
	assert.Equal(t, Zero, Pred(1))
	assert.Equal(t, Nat(8), Pred(9))
}

func TestSubTruncated(t *testing.T) {
	assert.Equal(t, Nat(6), Sub(10, 4))
	assert.Equal(t, Zero, Sub(4, 10), "truncated, never negative")
	assert.Equal(t, Nat(7), Sub(7, 0))

	for a := Zero; a <= 6; a++ {
		for b := a; b <= 8; b++ {
			assert.Equal(t, Zero, Sub(a, b), "a=%d b=%d", a, b)
		}
	}
}

func TestRem(t *testing.T) {
	assert.Equal(t, Nat(2), Rem(17, 5))
	assert.Equal(t, Zero, Rem(15, 5))
	assert.Equal(t, Nat(3), Rem(3, 5), "x < y leaves x untouched")
	assert.Equal(t, Zero, Rem(0, 3))
}

func TestDiv(t *testing.T) {
	assert.Equal(t, Nat(3), Div(17, 5))
	assert.Equal(t, Nat(5), Div(10, 2))
	assert.Equal(t, Zero, Div(3, 5))
	assert.Equal(t, One, Div(5, 5))
}

func TestDivRemRelation(t *testing.T) {
	// a == div(a,b)*b + rem(a,b) and rem(a,b) < b, for all b > 0.
	for a := Zero; a <= 12; a++ {
		for b := One; b <= 5; b++ {
			q, r := Div(a, b), Rem(a, b)
			assert.Equal(t, a, Add(Mul(q, b), r), "a=%d b=%d", a, b)
			assert.True(t, Lt(r, b), "a=%d b=%d r=%d", a, b, r)
		}
	}
}

func TestDivRemByZero(t *testing.T) {
	// Not special-cased: these are the emergent answers of the recursive
	// definitions when y == 0.
	for x := Zero; x <= 6; x++ {
		assert.Equal(t, Zero, Rem(x, 0), "x=%d", x)
		assert.Equal(t, x, Div(x, 0), "x=%d", x)
	}
}

func TestIsPrime(t *testing.T) {
	tests := []struct {
		x    Nat
		want bool
	}{
		{0, false},
		{1, true}, // quirk of the literal definition, preserved as-is
		{2, true},
		{3, true},
		{4, false},
		{5, true},
		{6, false},
		{7, true},
		{9, false},
		{11, true},
		{12, false},
		{13, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPrime(tt.x), "x=%d", tt.x)
	}
}

func TestIsPrimeLarger(t *testing.T) {
	assert.True(t, IsPrime(127))
	assert.False(t, IsPrime(121), "11*11")
}
