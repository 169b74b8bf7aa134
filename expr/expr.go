// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr implements symbolic expression trees over exact rationals
// and their reduction to a canonical form. Every tree handed out by the
// constructors in this package has been through Simplify: sums and
// products are flattened, sorted and merged, integer powers of numbers
// are evaluated, and the result is the unique representative of the
// expression's equivalence class.
package expr // import "robpike.io/cas/expr"

import (
	"robpike.io/cas/config"
	"robpike.io/cas/value"
)

// Kind discriminates the expression variants. The numeric values are the
// ordering tags Compare dispatches on: a Num sorts before anything else,
// but a mixed pair of other kinds is ordered by comparing children (see
// Compare), so, for example, a Product does not always sort before a
// Power.
type Kind int

const (
	NumKind Kind = iota
	ProductKind
	PowerKind
	SumKind
	CallKind
	SymbolKind
	UndefinedKind
)

// Expr is a node in an owning expression tree. The implementations are
// exactly the seven variants above; the unexported method keeps the set
// closed so type switches over Expr are exhaustive.
type Expr interface {
	Kind() Kind

	// Copy returns a deep copy sharing no tree structure with the
	// receiver. The digits inside a Num are copied too.
	Copy() Expr

	// String renders the canonical infix form, parenthesizing any child
	// whose precedence is below the parent's.
	String() string

	prec() int
}

// Num is a numeric leaf holding an exact rational in lowest terms.
type Num struct {
	Val value.Rat
}

// Symbol is a named leaf such as x or y.
type Symbol string

// Sum is an n-ary sum of its children.
type Sum []Expr

// Product is an n-ary product of its children.
type Product []Expr

// Power is Base raised to Exp.
type Power struct {
	Base, Exp Expr
}

// Call is the application of a named function to its arguments. Only
// diff is recognized by the simplifier; any other application simplifies
// its arguments and stands.
type Call struct {
	Name string
	Args []Expr
}

// Undefined is the result of an algebraically undefined operation, such
// as zero to a negative power. It propagates through printing and sorts
// after every expression that does not itself contain an Undefined.
type Undefined struct{}

func (Num) Kind() Kind       { return NumKind }
func (Product) Kind() Kind   { return ProductKind }
func (Power) Kind() Kind     { return PowerKind }
func (Sum) Kind() Kind       { return SumKind }
func (Call) Kind() Kind      { return CallKind }
func (Symbol) Kind() Kind    { return SymbolKind }
func (Undefined) Kind() Kind { return UndefinedKind }

func (n Num) Copy() Expr {
	return Num{Val: n.Val.Copy()}
}

func (s Symbol) Copy() Expr {
	return s
}

func (s Sum) Copy() Expr {
	return Sum(copyAll(s))
}

func (p Product) Copy() Expr {
	return Product(copyAll(p))
}

func (p Power) Copy() Expr {
	return Power{Base: p.Base.Copy(), Exp: p.Exp.Copy()}
}

func (c Call) Copy() Expr {
	return Call{Name: c.Name, Args: copyAll(c.Args)}
}

func (u Undefined) Copy() Expr {
	return u
}

func copyAll(kids []Expr) []Expr {
	out := make([]Expr, len(kids))
	for i, k := range kids {
		out[i] = k.Copy()
	}
	return out
}

// Shared leaves. Immutable by convention, so sharing is safe.
var (
	num0      = Num{Val: value.RatInt64(0)}
	num1      = Num{Val: value.RatInt64(1)}
	numMinus1 = Num{Val: value.RatInt64(-1)}
)

// Base returns x's base: the first child of a Power, otherwise x itself.
func Base(x Expr) Expr {
	if p, ok := x.(Power); ok {
		return p.Base
	}
	return x
}

// Exponent returns the second child of a Power, otherwise Num(1).
func Exponent(x Expr) Expr {
	if p, ok := x.(Power); ok {
		return p.Exp
	}
	return num1
}

// Constant returns the leading Num of a Product, otherwise Num(1).
func Constant(x Expr) Num {
	if p, ok := x.(Product); ok && len(p) > 0 {
		if n, ok := p[0].(Num); ok {
			return n
		}
	}
	return num1
}

// Term returns x stripped of its leading numeric factor: a Product whose
// first child is a Num loses that child (the remainder may be a unary
// Product, deliberately not re-simplified), and anything else is
// returned whole. Two children of a canonical Sum are like terms exactly
// when their Terms compare equal.
func Term(x Expr) Expr {
	if p, ok := x.(Product); ok && len(p) > 0 {
		if _, ok := p[0].(Num); ok {
			return Product(p[1:])
		}
	}
	return x
}

// splitTerm breaks x into a numeric coefficient and the remaining term,
// c·t ≡ x. It consumes x: the returned term may share x's storage.
func splitTerm(x Expr) (Num, Expr) {
	if p, ok := x.(Product); ok && len(p) > 0 {
		if n, ok := p[0].(Num); ok {
			return n, Product(p[1:])
		}
	}
	return num1, x
}

// splitPower breaks x into base and exponent, b^e ≡ x, consuming x.
func splitPower(x Expr) (Expr, Expr) {
	if p, ok := x.(Power); ok {
		return p.Base, p.Exp
	}
	return x, num1
}

var conf *config.Config

// SetConfig tells the package which configuration to use for debug
// switches and logging. The zero configuration is assumed when it is
// never called.
func SetConfig(c *config.Config) {
	conf = c
}
