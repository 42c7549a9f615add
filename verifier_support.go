package zmij

// This file exposes the small set of internal analysis functions the
// verifier needs to implement its modular-search optimization (see the
// verify package). They are not part of the conversion library's
// public surface in the sense that write.go and decimal.go are; they
// exist purely so the verifier can compute the same dec_exp, exp_shift
// and pow10 values the extractor uses internally without duplicating
// that arithmetic.

// DecExp exposes compute_dec_exp for verifier consumption.
func DecExp(binExp int, regular bool) int {
	return computeDecExp(binExp, regular)
}

// ExpShift exposes compute_exp_shift for verifier consumption.
func ExpShift(binExp, decExp int) int {
	return int(computeExpShift(binExp, decExp))
}

// Pow10Underestimate exposes the raw (hi, lo) table entry for 10^k, as
// used by the yy fast path, for verifier consumption.
func Pow10Underestimate(k int) (hi, lo uint64) {
	e := pow10Significand(k)
	return e.hi, e.lo
}

// IsPow10ExactForBinExp reports whether the power of ten used for
// binExp's decimal exponent is an exact 128-bit value rather than a
// rounded approximation, in which case the fast path can never diverge
// from Schubfach and the verifier can skip enumeration entirely.
func IsPow10ExactForBinExp(binExp int) bool {
	k := -computeDecExp(binExp, true)
	return k >= 0 && k <= 55
}

// StripTrailingZeros64 removes trailing decimal zeros from a binary64
// DecFp's significand, compensating the exponent. Exposed so the
// verifier can bring the extractor's raw output and the oracle's
// output to the same canonical form before comparing them.
func StripTrailingZeros64(sig uint64, exp int) (uint64, int) {
	return removeTrailingZeros64(sig, exp)
}

// StripTrailingZeros32 is the binary32 analogue of StripTrailingZeros64.
func StripTrailingZeros32(sig uint32, exp int) (uint32, int) {
	return removeTrailingZeros32(sig, exp)
}
