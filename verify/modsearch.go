// Package verify is an exhaustive correctness checker for the zmij
// conversion library: it enumerates binary32 values (fully) or a
// parameterized slice of binary64 significands for a given exponent,
// compares the library's output against a reference oracle, and uses
// a modular-inequality search to skip significands that are provably
// safe without visiting them one at a time.
package verify

import "math/big"

// notFound is returned by findMinN when no n satisfies the inequality.
const notFound = ^uint64(0)

// findMinN finds the smallest n >= 0 such that (n*step) mod mod lies
// in [lower, upper], where upper < mod, by reducing the modulus via
// the Euclidean algorithm until a direct hit is found. Returns
// notFound if step is zero and lower is non-zero, or if no such n
// exists in one full period.
//
// mod is a *big.Int rather than a uint64 because the top-level caller
// needs a modulus of exactly 2^64, which does not fit in a uint64.
// Every recursive call afterwards uses the previous step (which does
// fit) as the new modulus.
func findMinN(step uint64, mod *big.Int, lower, upper uint64) uint64 {
	if lower > upper {
		return notFound
	}
	if lower == 0 {
		return 0 // Current position is already a hit.
	}
	if step == 0 {
		return notFound
	}

	stepBig := new(big.Int).SetUint64(step)

	// Direct hit without wrapping: n = ceil(lower / step).
	n := new(big.Int).SetUint64(lower - 1)
	n.Div(n, stepBig)
	n.Add(n, big.NewInt(1))
	if check := new(big.Int).Mul(n, stepBig); check.Cmp(new(big.Int).SetUint64(upper)) <= 0 {
		return n.Uint64()
	}

	// Recursive modular interval reduction.
	remUpper := new(big.Int).Mod(new(big.Int).SetUint64(upper), stepBig).Uint64()
	remLower := new(big.Int).Mod(new(big.Int).SetUint64(lower), stepBig).Uint64()
	newLower := uint64(0)
	if remUpper != 0 {
		newLower = step - remUpper
	}
	newUpper := uint64(0)
	if remLower != 0 {
		newUpper = step - remLower
	}
	newMod := new(big.Int).Mod(mod, stepBig).Uint64()

	nPrime := findMinN(newMod, stepBig, newLower, newUpper)
	if nPrime == notFound {
		return notFound
	}

	// result = (n' * mod + lower + step - 1) / step
	result := new(big.Int).Mul(new(big.Int).SetUint64(nPrime), mod)
	result.Add(result, new(big.Int).SetUint64(lower))
	result.Add(result, stepBig)
	result.Sub(result, big.NewInt(1))
	result.Div(result, stepBig)
	return result.Uint64()
}

var twoToThe64 = new(big.Int).Lsh(big.NewInt(1), 64)

// findMinNMod64 is findMinN specialized to a modulus of exactly 2^64,
// which is how every top-level call in this package is made.
func findMinNMod64(step, lower, upper uint64) uint64 {
	return findMinN(step, twoToThe64, lower, upper)
}

// findCarriedAway enumerates, without visiting every value in
// between, the indices i in [0, numValues) for which start + i*step
// overflows 64 bits at or past threshold — i.e. (start + i*step) mod
// 2^64 >= threshold. It calls onHit(i) for each index found, in
// increasing order.
func findCarriedAway(start, step, numValues, threshold uint64, onHit func(uint64)) {
	var totalN uint64
	for {
		var n uint64
		if start < threshold {
			n = findMinNMod64(step, threshold-start, ^uint64(0)-start)
			if n == notFound {
				return
			}
		}

		totalN += n
		if totalN >= numValues {
			return
		}
		hitVal := start + n*step

		onHit(totalN)

		start = hitVal + step
		totalN++
	}
}
