// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr // import "robpike.io/cas/expr"

import (
	"fmt"
	"strings"
)

// Printing precedence. A child is parenthesized iff its precedence is
// strictly below its parent's; atoms never are.
const (
	precSum = 1 + iota
	precProduct
	precPower
	precAtom
)

func (Num) prec() int       { return precAtom }
func (Symbol) prec() int    { return precAtom }
func (Sum) prec() int       { return precSum }
func (Product) prec() int   { return precProduct }
func (Power) prec() int     { return precPower }
func (Call) prec() int      { return precAtom }
func (Undefined) prec() int { return precAtom }

// wrap renders child, parenthesized if it binds more loosely than a
// parent at the given precedence.
func wrap(parent int, child Expr) string {
	s := child.String()
	if child.prec() < parent {
		return "(" + s + ")"
	}
	return s
}

func (n Num) String() string {
	return n.Val.String()
}

func (s Symbol) String() string {
	return string(s)
}

// String joins the children with +, dropping the + before any child that
// already prints with a leading minus, so x + (-1)*y renders as x-y.
func (s Sum) String() string {
	var b strings.Builder
	for i, k := range s {
		part := wrap(precSum, k)
		if i > 0 && !strings.HasPrefix(part, "-") {
			b.WriteByte('+')
		}
		b.WriteString(part)
	}
	return b.String()
}

// String joins the children with *. A leading factor of exactly -1
// renders as a bare minus sign: (-1)*y prints as -y.
func (p Product) String() string {
	kids := []Expr(p)
	var b strings.Builder
	if len(kids) > 1 {
		if n, ok := kids[0].(Num); ok && n.Val.Cmp(numMinus1.Val) == 0 {
			b.WriteByte('-')
			kids = kids[1:]
		}
	}
	for i, k := range kids {
		if i > 0 {
			b.WriteByte('*')
		}
		b.WriteString(wrap(precProduct, k))
	}
	return b.String()
}

func (p Power) String() string {
	return wrap(precPower, p.Base) + "^" + wrap(precPower, p.Exp)
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

func (Undefined) String() string {
	return "<Undefined>"
}

// Tree returns a structural representation of e for diagnostics such as
// test failure messages. (The "parse" debug switch prints the parser's
// own parse.Tree, not this.)
func Tree(e Expr) string {
	switch e := e.(type) {
	case nil:
		return ""
	case Num:
		return fmt.Sprintf("<num %s>", e.Val)
	case Symbol:
		return fmt.Sprintf("<sym %s>", string(e))
	case Sum:
		return treeList("+", e)
	case Product:
		return treeList("*", e)
	case Power:
		return fmt.Sprintf("(^ %s %s)", Tree(e.Base), Tree(e.Exp))
	case Call:
		return treeList(e.Name, e.Args)
	case Undefined:
		return "<undefined>"
	}
	return fmt.Sprintf("%T", e)
}

func treeList(op string, kids []Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(op)
	for _, k := range kids {
		b.WriteByte(' ')
		b.WriteString(Tree(k))
	}
	b.WriteByte(')')
	return b.String()
}
