// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// d builds diff(e, x) through the public surface.
func d(e Expr) Expr {
	return Func("diff", e, x)
}

func TestDiff(t *testing.T) {
	tests := []struct {
		in   Expr
		want string
	}{
		// Leaves.
		{x, "1"},
		{y, "0"},
		{num(7), "0"},
		{rat(2, 3), "0"},

		// Linearity.
		{Add(x, y), "1"},
		{Add(x, x), "2"},
		{Sub(Mul(Number(3), x), y), "3"},
		{Add(Mul(Number(2), x), Number(5)), "2"},

		// The Leibniz rule.
		{Mul(x, y), "y"},
		{Mul(x, x), "2*x"},
		{Mul(x, y, z), "y*z"},
		{Mul(x, Func("f", x)), "x*diff(f(x), x)+f(x)"},

		// Powers with constant exponents.
		{Pow(x, Number(2)), "2*x"},
		{Pow(x, Number(3)), "3*x^2"},
		{Pow(x, Number(-1)), "-x^-2"},
		{Pow(x, y), "x^(-1+y)*y"},
		{Pow(Add(x, Number(1)), Number(2)), "2*(1+x)"},
		{Pow(Func("f", x), Number(101)), "101*diff(f(x), x)*f(x)^100"},

		// Outside the enumerated patterns the call stands.
		{Func("g", x), "diff(g(x), x)"},
		{Pow(Number(2), x), "diff(2^x, x)"},
		{Pow(x, x), "diff(x^x, x)"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, d(test.in).String(), "diff(%s, x)", test.in)
	}
}

// TestDiffMisuse: a bad variable or arity is algebraically undefined,
// not an error.
func TestDiffMisuse(t *testing.T) {
	assert.Equal(t, "<Undefined>", Func("diff", x).String())
	assert.Equal(t, "<Undefined>", Func("diff", x, x, x).String())
	assert.Equal(t, "<Undefined>", Func("diff", x, num(2)).String())
	assert.Equal(t, "<Undefined>", Func("diff", x, Sum{y, z}).String())
}

// TestDiffCopies: the Leibniz rule duplicates untouched factors; each
// term of the result carries a copy of the factor it did not
// differentiate.
func TestDiffCopies(t *testing.T) {
	f := Func("f", x)
	g := Func("g", x)
	got := d(Mul(f, g))
	assert.Equal(t, "diff(g(x), x)*f(x)+diff(f(x), x)*g(x)", got.String())
}

func TestConstantIn(t *testing.T) {
	assert.True(t, constantIn(num(3), x))
	assert.True(t, constantIn(y, x))
	assert.False(t, constantIn(x, x))
	assert.True(t, constantIn(Sum{y, z}, x))
	assert.False(t, constantIn(Sum{y, x}, x))
	assert.False(t, constantIn(Power{y, x}, x))
	assert.False(t, constantIn(Call{"f", []Expr{x}}, x))
	assert.True(t, constantIn(Call{"f", []Expr{y}}, x))
}
