package registry

import (
	"github.com/primrec/systemt/internal/godel"
	"github.com/primrec/systemt/internal/term"
)

// builtins is the full exposed surface of the evaluator. Names match the
// scenario-file spelling; arguments are positional.
var builtins = map[string]Func{
	"add":       natNat("add", godel.Add),
	"multiply":  natNat("multiply", godel.Mul),
	"exp":       natNat("exp", godel.Exp),
	"double":    nat("double", godel.Double),
	"pred":      nat("pred", godel.Pred),
	"subtract":  natNat("subtract", godel.Sub),
	"remainder": natNat("remainder", godel.Rem),
	"divide":    natNat("divide", godel.Div),
	"isPrime":   natPred("isPrime", godel.IsPrime),
	"isZero":    natPred("isZero", godel.IsZero),

	"not": {
		Name:   "not",
		Params: []Kind{KindBool},
		Result: KindBool,
		apply: func(args []term.Value) term.Value {
			return term.Bool(godel.Not(bool(args[0].(term.Bool))))
		},
	},
	"and": boolBool("and", godel.And),
	"or":  boolBool("or", godel.Or),
	"xor": boolBool("xor", godel.Xor),

	"eq":  cmp("eq", godel.Eq),
	"gt":  cmp("gt", godel.Gt),
	"lt":  cmp("lt", godel.Lt),
	"gte": cmp("gte", godel.Gte),
	"lte": cmp("lte", godel.Lte),

	// The core Ackermann construction is curried (a numeral yields a
	// function); the registry exposes the applied two-argument form.
	"ackermann": {
		Name:   "ackermann",
		Params: []Kind{KindNat, KindNat},
		Result: KindNat,
		apply: func(args []term.Value) term.Value {
			m := godel.Nat(args[0].(term.Num))
			n := godel.Nat(args[1].(term.Num))
			return term.Num(godel.Ackermann(m)(n))
		},
	},
}

func nat(name string, f func(godel.Nat) godel.Nat) Func {
	return Func{
		Name:   name,
		Params: []Kind{KindNat},
		Result: KindNat,
		apply: func(args []term.Value) term.Value {
			return term.Num(f(godel.Nat(args[0].(term.Num))))
		},
	}
}

func natNat(name string, f func(x, y godel.Nat) godel.Nat) Func {
	return Func{
		Name:   name,
		Params: []Kind{KindNat, KindNat},
		Result: KindNat,
		apply: func(args []term.Value) term.Value {
			x := godel.Nat(args[0].(term.Num))
			y := godel.Nat(args[1].(term.Num))
			return term.Num(f(x, y))
		},
	}
}

func natPred(name string, f func(godel.Nat) bool) Func {
	return Func{
		Name:   name,
		Params: []Kind{KindNat},
		Result: KindBool,
		apply: func(args []term.Value) term.Value {
			return term.Bool(f(godel.Nat(args[0].(term.Num))))
		},
	}
}

func cmp(name string, f func(x, y godel.Nat) bool) Func {
	return Func{
		Name:   name,
		Params: []Kind{KindNat, KindNat},
		Result: KindBool,
		apply: func(args []term.Value) term.Value {
			x := godel.Nat(args[0].(term.Num))
			y := godel.Nat(args[1].(term.Num))
			return term.Bool(f(x, y))
		},
	}
}

func boolBool(name string, f func(a, b bool) bool) Func {
	return Func{
		Name:   name,
		Params: []Kind{KindBool, KindBool},
		Result: KindBool,
		apply: func(args []term.Value) term.Value {
			a := bool(args[0].(term.Bool))
			b := bool(args[1].(term.Bool))
			return term.Bool(f(a, b))
		},
	}
}
