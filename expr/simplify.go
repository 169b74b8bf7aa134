// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr // import "robpike.io/cas/expr"

import (
	"github.com/sirupsen/logrus"

	"robpike.io/cas/value"
)

// Simplify reduces x to canonical form. It rewrites bottom-up: every
// child is simplified first, then the node itself is put through the
// routine for its kind. Leaves return unchanged; Undefined stands.
//
// The canonical form satisfies the invariants the rest of the package
// assumes: sums and products are flat, sorted ascending by Compare,
// at least two children long, hold at most one numeric child, and no
// two children share a term (sums) or a base (products).
func Simplify(x Expr) Expr {
	out := simplify(x)
	if conf.Debug("simplify") {
		conf.Logger().WithFields(logrus.Fields{
			"in":  x.String(),
			"out": out.String(),
		}).Debug("simplify")
	}
	return out
}

func simplify(x Expr) Expr {
	switch x := x.(type) {
	case Sum:
		kids := make([]Expr, len(x))
		for i, k := range x {
			kids[i] = simplify(k)
		}
		return simplifySum(kids)
	case Product:
		kids := make([]Expr, len(x))
		for i, k := range x {
			kids[i] = simplify(k)
		}
		return simplifyProduct(kids)
	case Power:
		return simplifyPower(simplify(x.Base), simplify(x.Exp))
	case Call:
		args := make([]Expr, len(x.Args))
		for i, a := range x.Args {
			args[i] = simplify(a)
		}
		return simplifyCall(x.Name, args)
	}
	// Num, Symbol, Undefined are already canonical.
	return x
}

// simplifySum canonicalizes a sum whose children are already canonical:
// flatten nested sums, sort, merge in one pass, collapse.
func simplifySum(kids []Expr) Expr {
	flat := make([]Expr, 0, len(kids))
	for _, k := range kids {
		if s, ok := k.(Sum); ok {
			flat = append(flat, s...)
		} else {
			flat = append(flat, k)
		}
	}
	sortExprs(flat)

	out := flat[:0]
	for _, next := range flat {
		if len(out) == 0 {
			out = append(out, next)
			continue
		}
		merged, ok := mergeTerms(out[len(out)-1], next)
		switch {
		case !ok:
			out = append(out, next)
		case merged == nil:
			out = out[:len(out)-1]
		default:
			out[len(out)-1] = merged
		}
	}

	switch len(out) {
	case 0:
		return num0
	case 1:
		return out[0]
	}
	return Sum(out)
}

// mergeTerms combines two adjacent sum children. It reports whether the
// pair combined at all; a nil combined result means the pair cancelled
// and both children vanish.
func mergeTerms(l, r Expr) (Expr, bool) {
	ln, lok := l.(Num)
	rn, rok := r.(Num)
	switch {
	case lok && rok:
		sum := ln.Val.Add(rn.Val)
		if sum.IsZero() {
			return nil, true
		}
		return Num{Val: sum}, true
	case lok && ln.Val.IsZero():
		return r, true
	case rok && rn.Val.IsZero():
		return l, true
	}
	lc, lt := splitTerm(l)
	rc, rt := splitTerm(r)
	if !Equal(lt, rt) {
		return nil, false
	}
	c := simplifySum([]Expr{lc, rc})
	combined := simplifyProduct([]Expr{c, lt})
	if n, ok := combined.(Num); ok && n.Val.IsZero() {
		return nil, true
	}
	return combined, true
}

// simplifyProduct canonicalizes a product whose children are already
// canonical. The shape matches simplifySum, with zero absorbing the
// whole product and like bases merging into a single power.
func simplifyProduct(kids []Expr) Expr {
	flat := make([]Expr, 0, len(kids))
	for _, k := range kids {
		if p, ok := k.(Product); ok {
			flat = append(flat, p...)
		} else {
			flat = append(flat, k)
		}
	}
	for _, k := range flat {
		if n, ok := k.(Num); ok && n.Val.IsZero() {
			return num0
		}
	}
	sortExprs(flat)

	out := flat[:0]
	for _, next := range flat {
		if len(out) == 0 {
			out = append(out, next)
			continue
		}
		merged, ok := mergeFactors(out[len(out)-1], next)
		switch {
		case !ok:
			out = append(out, next)
		case merged == nil:
			out = out[:len(out)-1]
		default:
			out[len(out)-1] = merged
		}
	}

	switch len(out) {
	case 0:
		return num1
	case 1:
		return out[0]
	}
	return Product(out)
}

// mergeFactors combines two adjacent product children; same contract as
// mergeTerms, with Num(1) as the vanishing result.
func mergeFactors(l, r Expr) (Expr, bool) {
	ln, lok := l.(Num)
	rn, rok := r.(Num)
	switch {
	case lok && rok:
		prod := ln.Val.Mul(rn.Val)
		if prod.IsOne() {
			return nil, true
		}
		return Num{Val: prod}, true
	case lok && ln.Val.IsOne():
		return r, true
	case rok && rn.Val.IsOne():
		return l, true
	}
	lb, le := splitPower(l)
	rb, re := splitPower(r)
	if !Equal(lb, rb) {
		return nil, false
	}
	combined := simplifyPower(lb, simplifySum([]Expr{le, re}))
	if n, ok := combined.(Num); ok && n.Val.IsOne() {
		return nil, true
	}
	return combined, true
}

// simplifyPower canonicalizes b^e for canonical b and e.
func simplifyPower(b, e Expr) Expr {
	if bn, ok := b.(Num); ok {
		if bn.Val.IsZero() {
			en, ok := e.(Num)
			if !ok {
				return Power{Base: b, Exp: e}
			}
			switch en.Val.Sign() {
			case 1:
				return num0
			case 0:
				return num1
			}
			return Undefined{}
		}
		if bn.Val.IsOne() {
			return num1
		}
	}
	if en, ok := e.(Num); ok && en.Val.IsInt() {
		return simplifyIntPower(b, en)
	}
	return Power{Base: b, Exp: e}
}

// simplifyIntPower canonicalizes b^n for an integer-valued n: numeric
// bases fold, nested powers merge their exponents, and products
// distribute the exponent over their factors.
func simplifyIntPower(b Expr, n Num) Expr {
	if n.Val.IsZero() {
		return num1
	}
	if n.Val.IsOne() {
		return b
	}
	switch b := b.(type) {
	case Num:
		r, err := b.Val.Pow(n.Val)
		if err != nil {
			value.Errorf("%s", err) // not reached: n is integer-valued
		}
		return Num{Val: r}
	case Power:
		return simplifyPower(b.Base, simplifyProduct([]Expr{b.Exp, n}))
	case Product:
		factors := make([]Expr, len(b))
		for i, f := range b {
			factors[i] = simplifyPower(f, n)
		}
		return simplifyProduct(factors)
	}
	return Power{Base: b, Exp: n}
}

// simplifyCall simplifies a function application. Arguments are already
// canonical; diff is the one name the core evaluates.
func simplifyCall(name string, args []Expr) Expr {
	if name == "diff" {
		return simplifyDiff(args)
	}
	return Call{Name: name, Args: args}
}
