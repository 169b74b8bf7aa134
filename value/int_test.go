// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quoRemPair struct {
	x, y int64
}

var quoRemTests = []quoRemPair{
	// We run the test with all four signs for 5, 3.
	// Truncated division gives:
	// 5,3 -> quo 1 rem 2
	// -5,3 -> quo -1 rem -2
	// 5,-3 -> quo -1 rem 2
	// -5,-3 -> quo 1 rem -2
	{5, 3},
	{-5, 3},
	{5, -3},
	{-5, -3},
	// And with remainder 0.
	{5, 5},
	{-5, 5},
	{5, -5},
	{-5, -5},
	{0, 3},
	{0, -3},
}

// TestQuoRem verifies that Quo and Rem satisfy the truncated-division
// identity: quo rounds toward zero, rem has the sign of the dividend,
// and x == y*quo + rem.
func TestQuoRem(t *testing.T) {
	for _, test := range quoRemTests {
		x, y := Int64(test.x), Int64(test.y)
		quo := x.Quo(y)
		rem := x.Rem(y)
		assert.Equal(t, test.x, y.Mul(quo).Add(rem).Int64(),
			"%d quo %d = %s rem %s breaks the division identity", test.x, test.y, quo, rem)
		if rem.Sign() != 0 {
			assert.Equal(t, x.Sign(), rem.Sign(),
				"%d rem %d = %s has the wrong sign", test.x, test.y, rem)
		}
		absY, absRem := test.y, rem.Int64()
		if absY < 0 {
			absY = -absY
		}
		if absRem < 0 {
			absRem = -absRem
		}
		assert.Less(t, absRem, absY, "%d rem %d out of range", test.x, test.y)
	}
}

func TestParseInt(t *testing.T) {
	i, err := ParseInt("-12345678901234567890123456789")
	require.NoError(t, err)
	assert.Equal(t, "-12345678901234567890123456789", i.String())

	_, err = ParseInt("12x")
	assert.Error(t, err)
	_, err = ParseInt("")
	assert.Error(t, err)
}

func TestGCD(t *testing.T) {
	tests := []struct {
		x, y, gcd int64
	}{
		{12, 18, 6},
		{-12, 18, 6},
		{12, -18, 6},
		{-12, -18, 6},
		{7, 13, 1},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
	}
	for _, test := range tests {
		g := Int64(test.x).GCD(Int64(test.y))
		assert.Equal(t, test.gcd, g.Int64(), "gcd(%d, %d)", test.x, test.y)
		assert.GreaterOrEqual(t, g.Sign(), 0)
	}
}

func TestPow(t *testing.T) {
	tests := []struct {
		b, e int64
		want string
	}{
		{2, 0, "1"},
		{2, 1, "2"},
		{2, 10, "1024"},
		{-3, 3, "-27"},
		{-3, 4, "81"},
		{10, 30, "1000000000000000000000000000000"},
		{0, 0, "1"},
		{0, 5, "0"},
		{1, 1000, "1"},
		// A negative exponent is not representable; the contract is zero.
		{2, -1, "0"},
	}
	for _, test := range tests {
		got := Int64(test.b).Pow(Int64(test.e))
		assert.Equal(t, test.want, got.String(), "%d^%d", test.b, test.e)
	}
}

func TestCmp(t *testing.T) {
	assert.Equal(t, -1, Int64(2).Cmp(Int64(3)))
	assert.Equal(t, 0, Int64(3).Cmp(Int64(3)))
	assert.Equal(t, 1, Int64(3).Cmp(Int64(-3)))
	assert.Equal(t, 1, Int64(3).CmpInt64(2))
	assert.Equal(t, -1, Int64(-1).Sign())
}

func TestDivisionByZero(t *testing.T) {
	assert.PanicsWithError(t, "cas: division by zero", func() {
		Int64(1).Quo(Int64(0))
	})
	assert.PanicsWithError(t, "cas: division by zero", func() {
		Int64(1).Rem(Int64(0))
	})
}
