package zmij

import "math/bits"

// uint128 is a 128-bit unsigned integer represented as two 64-bit halves.
type uint128 struct {
	hi, lo uint64
}

// mul128 computes the full 128-bit product of two 64-bit operands.
func mul128(x, y uint64) uint128 {
	hi, lo := bits.Mul64(x, y)
	return uint128{hi, lo}
}

// mul192Hi128 computes the high 128 bits of (x_hi·2^64 + x_lo) · y.
func mul192Hi128(xHi, xLo, y uint64) uint128 {
	p := mul128(xHi, y)
	midHi, _ := bits.Mul64(xLo, y)
	lo, carry := bits.Add64(p.lo, midHi, 0)
	return uint128{p.hi + carry, lo}
}

// mulUpperInexactToOdd64 computes the high 64 bits of
// ((xHi·2^64 + xLo) · y) / 2, rounded to odd: the result's low bit is set
// if and only if any of the discarded low 63 bits were non-zero.
func mulUpperInexactToOdd64(xHi, xLo, y uint64) uint64 {
	p := mul192Hi128(xHi, xLo, y)
	odd := uint64(0)
	if p.lo>>1 != 0 {
		odd = 1
	}
	return p.hi | odd
}

// mulUpperInexactToOdd32 is the float32 analogue of
// mulUpperInexactToOdd64. It only uses the high 64 bits of the pow10
// entry (xHi); for binary32 the low word never contributes to the
// product since y fits in 32 bits.
func mulUpperInexactToOdd32(xHi uint64, y uint32) uint32 {
	hi, lo := bits.Mul64(xHi, uint64(y))
	mid := (hi << 32) | (lo >> 32)
	odd := uint32(0)
	if uint32(mid)>>1 != 0 {
		odd = 1
	}
	return uint32(mid>>32) | odd
}

// countTrailingNonzeroBytes returns the number of bytes, counted from the
// least significant end, up to and including the most significant
// non-zero byte of a big-endian-normalized packed value, computed as
// (70 - clz(x<<1|1)) / 8.
func countTrailingNonzeroBytes(x uint64) int {
	return (70 - bits.LeadingZeros64(x<<1|1)) / 8
}
