package gf256

import "errors"

// ErrDivisionByZero is returned when inverting or dividing by the zero element.
// Well-formed sharing never triggers it; seeing it means a caller passed a zero or
// repeated coordinate.
var ErrDivisionByZero = errors.New("division by zero in GF(2^8)")
