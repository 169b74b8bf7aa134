// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr // import "robpike.io/cas/expr"

import (
	"github.com/spf13/cast"

	"robpike.io/cas/value"
)

// The construction surface. Everything built here is handed to Simplify
// before it is returned, so callers only ever hold canonical trees.

// Number returns the numeric leaf for any machine integer.
func Number(v interface{}) Expr {
	i, err := cast.ToInt64E(v)
	if err != nil {
		value.Errorf("cannot make a number from %v", v)
	}
	return Num{Val: value.RatInt64(i)}
}

// NumberRat returns the numeric leaf for an exact rational.
func NumberRat(r value.Rat) Expr {
	return Num{Val: r}
}

// Frac returns the numeric leaf num/den.
func Frac(num, den int64) Expr {
	return Num{Val: value.NewRat(value.Int64(num), value.Int64(den))}
}

// Add returns the canonical sum of its operands.
func Add(xs ...Expr) Expr {
	return Simplify(Sum(xs))
}

// Sub returns the canonical difference l - r, built as l + (-1)*r.
func Sub(l, r Expr) Expr {
	return Simplify(Sum{l, Product{numMinus1, r}})
}

// Mul returns the canonical product of its operands.
func Mul(xs ...Expr) Expr {
	return Simplify(Product(xs))
}

// Div returns the canonical quotient l / r, built as l * r^-1.
func Div(l, r Expr) Expr {
	return Simplify(Product{l, Power{Base: r, Exp: numMinus1}})
}

// Pow returns the canonical power l^r.
func Pow(l, r Expr) Expr {
	return Simplify(Power{Base: l, Exp: r})
}

// Neg returns the canonical negation (-1)*x.
func Neg(x Expr) Expr {
	return Simplify(Product{numMinus1, x})
}

// Func returns the canonical application of the named function.
func Func(name string, args ...Expr) Expr {
	if name == "" {
		value.Errorf("empty function name")
	}
	return Simplify(Call{Name: name, Args: args})
}

// Binary dispatches an infix operator to the builder above; it is the
// surface the parser drives.
func Binary(l Expr, op string, r Expr) Expr {
	switch op {
	case "+":
		return Add(l, r)
	case "-":
		return Sub(l, r)
	case "*":
		return Mul(l, r)
	case "/":
		return Div(l, r)
	case "^":
		return Pow(l, r)
	}
	value.Errorf("unknown binary operator %q", op)
	panic("not reached")
}

// Unary dispatches a prefix operator.
func Unary(op string, x Expr) Expr {
	switch op {
	case "+":
		return Simplify(x)
	case "-":
		return Neg(x)
	}
	value.Errorf("unknown unary operator %q", op)
	panic("not reached")
}
