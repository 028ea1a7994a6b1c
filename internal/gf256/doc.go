// Package gf256 implements arithmetic in the finite field GF(2^8).
//
// Elements are bytes. The field is defined by the irreducible polynomial
// x^8 + x^4 + x^3 + x + 1 (0x11b) with generator 0x03, the same field AES uses.
// Multiplication and inversion go through exponent/logarithm tables that are
// built once by New and never modified afterwards, so a *Field may be shared
// freely between goroutines.
package gf256
