// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the exact arithmetic the algebra core is built
// on: arbitrary-precision integers and rationals kept in lowest terms.
package value // import "robpike.io/cas/value"

import "fmt"

// Error is the type of user-level arithmetic faults. It is thrown by
// Errorf and recovered at the top of the interpreter loop.
type Error string

func (err Error) Error() string {
	return string(err)
}

// Errorf panics with an Error built from the format and arguments.
func Errorf(format string, args ...interface{}) {
	panic(Error(fmt.Sprintf("cas: "+format, args...)))
}
