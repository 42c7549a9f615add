// Package zmij converts IEEE-754 binary32 and binary64 floating-point
// values to the shortest decimal string that round-trips back to the
// same value under round-to-nearest-even.
//
// The conversion is a variant of Schubfach augmented with the "yy" fast
// path (Yaoyuan Guo) for the common case and Cassio Neri's
// shorter-candidate optimization. Most values are decided by a single
// 128-bit multiplication; the Schubfach boundary analysis only runs for
// ties, powers of two, subnormals and the other edge cases the fast
// path cannot resolve on its own.
package zmij
