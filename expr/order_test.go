// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"robpike.io/cas/value"
)

func num(n int64) Num {
	return Num{Val: value.RatInt64(n)}
}

func rat(n, d int64) Num {
	return Num{Val: value.NewRat(value.Int64(n), value.Int64(d))}
}

var (
	x = Symbol("x")
	y = Symbol("y")
	z = Symbol("z")
)

type orderTest struct {
	l, r Expr
	sgn  int
}

var orderTests = []orderTest{
	// Numbers compare by value.
	{num(1), num(1), 0},
	{num(1), num(2), -1},
	{rat(1, 3), rat(1, 2), -1},
	{num(-1), num(0), -1},

	// Symbols compare by name.
	{x, x, 0},
	{x, y, -1},
	{z, y, 1},

	// A Number sorts before anything else.
	{num(100), x, -1},
	{num(100), Sum{x, y}, -1},
	{num(100), Undefined{}, -1},

	// Undefined sorts last.
	{x, Undefined{}, -1},
	{Undefined{}, Undefined{}, 0},
	{Undefined{}, Sum{x, y}, 1},

	// Sums and products compare their children from the tail.
	{Sum{x, y}, Sum{x, y}, 0},
	{Sum{x, y}, Sum{x, z}, -1},
	{Sum{x, z}, Sum{y, z}, -1},
	{Sum{y, z}, Sum{x, y, z}, -1}, // shorter sorts first
	{Product{num(2), x}, Product{num(3), x}, -1},
	{Product{num(3), x}, Product{num(2), y}, -1},

	// A sum against a non-sum compares against the singleton list.
	{Sum{x, y}, z, -1},
	{Sum{x, z}, z, 1}, // equal tails, sum is longer
	{Sum{y, z}, x, 1},
	{Product{num(2), x}, x, 1}, // equal tails, product is longer

	// A power against a non-power compares bases, then exponent to 1.
	{Power{x, num(2)}, x, 1},
	{Power{x, num(2)}, y, -1},
	{Power{x, num(2)}, Power{x, num(3)}, -1},
	{Power{x, num(2)}, Power{y, num(2)}, -1},
	{Power{Sum{x, y}, num(2)}, Power{z, num(2)}, -1},

	// Functions compare names, then arguments.
	{Call{"f", []Expr{x}}, Call{"f", []Expr{x}}, 0},
	{Call{"f", []Expr{x}}, Call{"g", []Expr{x}}, -1},
	{Call{"f", []Expr{x}}, Call{"f", []Expr{y}}, -1},
	{Call{"f", []Expr{x}}, y, -1},
	{Call{"f", []Expr{z}}, y, 1},
}

func TestCompare(t *testing.T) {
	for _, test := range orderTests {
		assert.Equal(t, test.sgn, Compare(test.l, test.r),
			"Compare(%s, %s)", Tree(test.l), Tree(test.r))
		// The order must be antisymmetric.
		assert.Equal(t, -test.sgn, Compare(test.r, test.l),
			"Compare(%s, %s) does not reverse", Tree(test.r), Tree(test.l))
	}
}

// TestCompareTotal checks totality over a spread of expressions: every
// pair orders exactly one way, equality only against itself, and the
// order reverses.
func TestCompareTotal(t *testing.T) {
	exprs := []Expr{
		num(-1), num(0), rat(1, 2), num(2),
		Product{num(2), x}, Product{x, y},
		Power{x, num(2)}, Power{y, rat(1, 2)},
		Sum{x, y}, Sum{y, z},
		Call{"f", []Expr{x}}, Call{"g", []Expr{x, y}},
		x, y, Undefined{},
	}
	for i, l := range exprs {
		for j, r := range exprs {
			c := Compare(l, r)
			if i == j {
				assert.Equal(t, 0, c, "Compare(%s, %s)", Tree(l), Tree(r))
			} else {
				assert.NotEqual(t, 0, c, "distinct %s and %s compare equal", Tree(l), Tree(r))
				assert.Equal(t, -c, Compare(r, l), "Compare(%s, %s) does not reverse", Tree(r), Tree(l))
			}
		}
	}
}
