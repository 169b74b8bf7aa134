// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value // import "robpike.io/cas/value"

import (
	"errors"
	"math/big"
)

// Int is an arbitrary-precision signed integer. It is a thin veneer over
// math/big that fixes the semantics the algebra core depends on: truncated
// division, a non-negative gcd, and classical square-and-multiply
// exponentiation. Operations allocate a fresh result; an Int is never
// mutated after it is built.
type Int struct {
	*big.Int
}

// Int64 returns the Int holding x.
func Int64(x int64) Int {
	return Int{big.NewInt(x)}
}

// ParseInt converts a base-10 textual representation into an Int.
func ParseInt(s string) (Int, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, errors.New("integer parse error")
	}
	return Int{i}, nil
}

// Copy returns an Int that shares no storage with i.
func (i Int) Copy() Int {
	return Int{new(big.Int).Set(i.Int)}
}

func (i Int) Neg() Int {
	return Int{new(big.Int).Neg(i.Int)}
}

func (i Int) Add(j Int) Int {
	return Int{new(big.Int).Add(i.Int, j.Int)}
}

func (i Int) Sub(j Int) Int {
	return Int{new(big.Int).Sub(i.Int, j.Int)}
}

func (i Int) Mul(j Int) Int {
	return Int{new(big.Int).Mul(i.Int, j.Int)}
}

// Quo returns the quotient i/j truncated toward zero.
func (i Int) Quo(j Int) Int {
	if j.Sign() == 0 {
		Errorf("division by zero")
	}
	return Int{new(big.Int).Quo(i.Int, j.Int)}
}

// Rem returns the remainder of truncated division; it has the sign of i.
func (i Int) Rem(j Int) Int {
	if j.Sign() == 0 {
		Errorf("division by zero")
	}
	return Int{new(big.Int).Rem(i.Int, j.Int)}
}

// Cmp returns -1, 0, or +1 according to the order of i and j.
func (i Int) Cmp(j Int) int {
	return i.Int.Cmp(j.Int)
}

// CmpInt64 compares i against a machine integer.
func (i Int) CmpInt64(x int64) int {
	return i.Int.Cmp(big.NewInt(x))
}

// GCD returns the non-negative greatest common divisor of i and j.
// GCD(0, 0) is 0.
func (i Int) GCD(j Int) Int {
	a := new(big.Int).Abs(i.Int)
	b := new(big.Int).Abs(j.Int)
	return Int{a.GCD(nil, nil, a, b)}
}

// Pow returns i**e by square-and-multiply. A negative exponent yields
// zero: the result is not representable as an integer, and rational
// exponentiation inverts before it ever delegates here.
func (i Int) Pow(e Int) Int {
	if e.Sign() < 0 {
		return Int64(0)
	}
	base := i.Copy()
	exp := new(big.Int).Set(e.Int)
	z := Int64(1)
	for exp.Sign() > 0 {
		if exp.Bit(0) == 1 {
			z = z.Mul(base)
		}
		base = base.Mul(base)
		exp.Rsh(exp, 1)
	}
	return z
}
