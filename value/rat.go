// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value // import "robpike.io/cas/value"

import (
	"strings"

	goerrors "gopkg.in/src-d/go-errors.v1"
)

// ErrNonIntegerPower is the domain error raised when a rational is raised
// to an exponent that is not integer-valued. The simplifier guards on
// Rat.IsInt before it dispatches to the integer-power rules, so it never
// trips this; a direct use of Pow still fails loudly.
var ErrNonIntegerPower = goerrors.NewKind("cas: non-integer exponent %s in rational power")

// Rat is an exact rational number: a numerator and denominator pair kept
// normalized at all times, gcd(num, den) = 1 with den > 0. Zero is (0, 1).
type Rat struct {
	num, den Int
}

// NewRat returns the normalized rational num/den.
func NewRat(num, den Int) Rat {
	return newRat(num, den)
}

// RatInt64 returns the rational holding the integer x.
func RatInt64(x int64) Rat {
	return Rat{num: Int64(x), den: Int64(1)}
}

// RatInt returns the rational holding the integer i.
func RatInt(i Int) Rat {
	return Rat{num: i, den: Int64(1)}
}

// ParseRat converts a base-10 textual representation, "n" or "n/d",
// into a Rat.
func ParseRat(s string) (Rat, error) {
	if slash := strings.IndexByte(s, '/'); slash >= 0 {
		num, err := ParseInt(s[:slash])
		if err != nil {
			return Rat{}, err
		}
		den, err := ParseInt(s[slash+1:])
		if err != nil {
			return Rat{}, err
		}
		return newRat(num, den), nil
	}
	num, err := ParseInt(s)
	if err != nil {
		return Rat{}, err
	}
	return RatInt(num), nil
}

// newRat reduces num/den to lowest terms with the sign in the numerator.
func newRat(num, den Int) Rat {
	if den.Sign() == 0 {
		Errorf("zero denominator")
	}
	if den.Sign() < 0 {
		num = num.Neg()
		den = den.Neg()
	}
	if num.Sign() == 0 {
		return Rat{num: Int64(0), den: Int64(1)}
	}
	if g := num.GCD(den); g.CmpInt64(1) != 0 {
		num = num.Quo(g)
		den = den.Quo(g)
	}
	return Rat{num: num, den: den}
}

// Num returns the numerator, which carries the sign.
func (r Rat) Num() Int {
	return r.num
}

// Den returns the denominator, always positive.
func (r Rat) Den() Int {
	return r.den
}

// Copy returns a Rat that shares no storage with r.
func (r Rat) Copy() Rat {
	return Rat{num: r.num.Copy(), den: r.den.Copy()}
}

func (r Rat) Add(s Rat) Rat {
	return newRat(r.num.Mul(s.den).Add(s.num.Mul(r.den)), r.den.Mul(s.den))
}

func (r Rat) Sub(s Rat) Rat {
	return newRat(r.num.Mul(s.den).Sub(s.num.Mul(r.den)), r.den.Mul(s.den))
}

func (r Rat) Mul(s Rat) Rat {
	return newRat(r.num.Mul(s.num), r.den.Mul(s.den))
}

func (r Rat) Div(s Rat) Rat {
	if s.num.Sign() == 0 {
		Errorf("division by zero")
	}
	return newRat(r.num.Mul(s.den), r.den.Mul(s.num))
}

func (r Rat) Neg() Rat {
	return Rat{num: r.num.Neg(), den: r.den}
}

// Inv returns 1/r.
func (r Rat) Inv() Rat {
	if r.num.Sign() == 0 {
		Errorf("division by zero")
	}
	return newRat(r.den, r.num)
}

// Pow returns r**e. The exponent must be integer-valued; anything else is
// outside the rational field and reported as ErrNonIntegerPower. A
// negative exponent inverts the base first, then both sides delegate to
// integer square-and-multiply.
func (r Rat) Pow(e Rat) (Rat, error) {
	if !e.IsInt() {
		return Rat{}, ErrNonIntegerPower.New(e)
	}
	base, n := r, e.num
	if n.Sign() < 0 {
		base = r.Inv()
		n = n.Neg()
	}
	return newRat(base.num.Pow(n), base.den.Pow(n)), nil
}

// Cmp returns -1, 0, or +1 by cross-multiplied integer comparison.
func (r Rat) Cmp(s Rat) int {
	return r.num.Mul(s.den).Cmp(s.num.Mul(r.den))
}

// Sign returns -1, 0, or +1 according to the sign of r.
func (r Rat) Sign() int {
	return r.num.Sign()
}

// IsInt reports whether r is integer-valued.
func (r Rat) IsInt() bool {
	return r.den.CmpInt64(1) == 0
}

func (r Rat) IsZero() bool {
	return r.num.Sign() == 0
}

func (r Rat) IsOne() bool {
	return r.num.CmpInt64(1) == 0 && r.IsInt()
}

// String returns "n" when the denominator is 1, else "n/d" with d > 0.
func (r Rat) String() string {
	if r.IsInt() {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}
