// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*

Cas is a small symbolic calculator over exact rationals. It reads infix
expressions, reduces them to a canonical form, and prints the result. It
never approximates: numbers are arbitrary-precision rationals, and
anything symbolic stays symbolic.

Input is one expression per line. Integers (3, -1) and rationals (1/3,
-45/67) are numbers; any other identifier is a free symbol. The operators
are + - * / ^ with the usual precedence; ^ is right-associative and binds
a following sign, so x^-2 works. Parentheses group. A line of the form

	name = expression

binds the canonical value of the expression to the name for the rest of
the session, and prints nothing. Comments run from # to end of line.

Function application is written name(args). One function is evaluated by
the core:

	diff(e, x)

is the derivative of e with respect to the symbol x, computed for sums,
products, and powers with constant exponents. Anything the core cannot
differentiate is left as an unevaluated diff(...). Algebraically
undefined results, such as 0^-1, print as <Undefined>.

Every printed result is canonical: sums and products are flattened and
sorted into a fixed order, like terms and like bases are combined, and
integer powers of numbers are evaluated exactly:

	x + x
	2*x
	(x+y)*z*2/2
	(x+y)*z
	2^100
	1267650600228229401496703205376

The -e flag evaluates the command line arguments as a single expression.
The -debug flag takes a comma-separated list of switches: tokens and
parse show the scanner and parser at work, simplify logs each call of
the simplifier with its input and canonical output, and panic disables the error recovery that normally keeps the
interpreter alive after a mistake.

*/
package main
