// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr // import "robpike.io/cas/expr"

import (
	"sort"
	"strings"
)

// Compare defines the strong total order the canonicalizer sorts by,
// returning -1, 0, or +1. The order is keyed first by Kind; mixed-kind
// pairs reduce to recursive comparisons so that, for example, a Power
// compares against a non-Power as its base against the whole of the
// other side.
func Compare(l, r Expr) int {
	if l.Kind() > r.Kind() {
		return -Compare(r, l)
	}
	// Invariant: Kind(l) <= Kind(r).
	switch l := l.(type) {
	case Num:
		if r, ok := r.(Num); ok {
			return l.Val.Cmp(r.Val)
		}
		return -1
	case Product:
		if r, ok := r.(Product); ok {
			return compareLists(l, r)
		}
		return compareLists(l, []Expr{r})
	case Power:
		if r, ok := r.(Power); ok {
			if c := Compare(l.Base, r.Base); c != 0 {
				return c
			}
			return Compare(l.Exp, r.Exp)
		}
		if c := Compare(l.Base, r); c != 0 {
			return c
		}
		return Compare(l.Exp, num1)
	case Sum:
		if r, ok := r.(Sum); ok {
			return compareLists(l, r)
		}
		return compareLists(l, []Expr{r})
	case Call:
		if r, ok := r.(Call); ok {
			if c := strings.Compare(l.Name, r.Name); c != 0 {
				return c
			}
			return compareLists(l.Args, r.Args)
		}
		if c := compareLists(l.Args, []Expr{r}); c != 0 {
			return c
		}
		// f(x) against a bare x: the application sorts after its
		// operand, so distinct expressions never compare equal.
		return 1
	case Symbol:
		if r, ok := r.(Symbol); ok {
			return strings.Compare(string(l), string(r))
		}
		return -1 // r is Undefined.
	case Undefined:
		return 0 // r must be Undefined too.
	}
	panic("cas: unknown expression kind")
}

// compareLists orders two child lists from the tail: the last elements
// are compared first, and when one list runs out the shorter one sorts
// first. Comparing from the tail groups children by their dominant
// factor, which is what keeps like terms and like bases adjacent after
// sorting.
func compareLists(l, r []Expr) int {
	for i, j := len(l)-1, len(r)-1; i >= 0 && j >= 0; i, j = i-1, j-1 {
		if c := Compare(l[i], r[j]); c != 0 {
			return c
		}
	}
	switch {
	case len(l) < len(r):
		return -1
	case len(l) > len(r):
		return 1
	}
	return 0
}

// Equal reports whether l and r are the same canonical expression.
func Equal(l, r Expr) bool {
	return Compare(l, r) == 0
}

// sortExprs sorts children ascending by Compare.
func sortExprs(kids []Expr) {
	sort.SliceStable(kids, func(i, j int) bool {
		return Compare(kids[i], kids[j]) < 0
	})
}
