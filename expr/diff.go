// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr // import "robpike.io/cas/expr"

// simplifyDiff evaluates the recognized application diff(e, v). The
// argument list must be exactly an expression and a Symbol; anything
// else is algebraically meaningless and yields Undefined rather than an
// error, so partial expressions stay printable.
func simplifyDiff(args []Expr) Expr {
	if len(args) != 2 {
		return Undefined{}
	}
	v, ok := args[1].(Symbol)
	if !ok {
		return Undefined{}
	}
	return diff(args[0], v)
}

// diff computes the derivative of canonical e with respect to v,
// structurally. Patterns outside the rules below — a power whose
// exponent mentions v, or an application of an unrecognized function —
// are left as an unevaluated diff call.
func diff(e Expr, v Symbol) Expr {
	switch e := e.(type) {
	case Num:
		return num0
	case Symbol:
		if e == v {
			return num1
		}
		return num0
	case Sum:
		kids := make([]Expr, len(e))
		for i, k := range e {
			kids[i] = diff(k, v)
		}
		return simplifySum(kids)
	case Product:
		// Leibniz: sum over i of the product with factor i replaced by
		// its derivative. The untouched factors appear in several terms,
		// so each one is deep-copied.
		terms := make([]Expr, len(e))
		for i := range e {
			factors := make([]Expr, len(e))
			for j, f := range e {
				if i == j {
					factors[j] = diff(f, v)
				} else {
					factors[j] = f.Copy()
				}
			}
			terms[i] = simplifyProduct(factors)
		}
		return simplifySum(terms)
	case Power:
		if !constantIn(e.Exp, v) {
			// The general case needs the logarithmic derivative, which
			// the core does not implement.
			return Call{Name: "diff", Args: []Expr{e, v}}
		}
		p := e.Exp
		return simplifyProduct([]Expr{
			p.Copy(),
			simplifyPower(e.Base.Copy(), simplifySum([]Expr{p.Copy(), numMinus1})),
			diff(e.Base, v),
		})
	case Call:
		return Call{Name: "diff", Args: []Expr{e, v}}
	case Undefined:
		return e
	}
	return Undefined{}
}

// constantIn reports whether e is constant with respect to v: a Num is,
// a Symbol is unless it is v, and a compound is iff all its children
// are.
func constantIn(e Expr, v Symbol) bool {
	switch e := e.(type) {
	case Num, Undefined:
		return true
	case Symbol:
		return e != v
	case Sum:
		return allConstantIn(e, v)
	case Product:
		return allConstantIn(e, v)
	case Power:
		return constantIn(e.Base, v) && constantIn(e.Exp, v)
	case Call:
		return allConstantIn(e.Args, v)
	}
	return false
}

func allConstantIn(kids []Expr, v Symbol) bool {
	for _, k := range kids {
		if !constantIn(k, v) {
			return false
		}
	}
	return true
}
