// Package shamir implements (t,n)-threshold secret sharing over GF(2^8).
//
// Every byte of the secret is the constant term of its own random polynomial of
// degree t-1. Share x carries the evaluation of each polynomial at x, for x = 1..n.
// Any t shares recover the secret by Lagrange interpolation at zero; fewer than t
// are independent of it.
//
// Combine performs no sufficiency check. Interpolating fewer than t shares returns
// a value unrelated to the secret without error, so callers must verify the result
// by other means, such as an authentication tag.
package shamir
