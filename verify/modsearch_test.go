package verify

import (
	"math/big"
	"math/rand"
	"testing"
)

// bruteForceMinN is a direct, unoptimized reimplementation of findMinN's
// contract for a modulus small enough to enumerate, used as an oracle
// for the Euclidean-reduction-based implementation under test.
func bruteForceMinN(step, mod, lower, upper uint64) uint64 {
	if lower > upper {
		return notFound
	}
	pos := uint64(0)
	for n := uint64(0); n < mod; n++ {
		if pos >= lower && pos <= upper {
			return n
		}
		pos = (pos + step) % mod
	}
	return notFound
}

func TestFindMinNAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		mod := uint64(1 + rng.Intn(200))
		step := uint64(rng.Intn(int(mod)))
		lower := uint64(rng.Intn(int(mod)))
		upper := lower + uint64(rng.Intn(int(mod-lower)))

		want := bruteForceMinN(step, mod, lower, upper)
		got := findMinN(step, new(big.Int).SetUint64(mod), lower, upper)
		if got != want {
			t.Fatalf("findMinN(step=%d, mod=%d, lower=%d, upper=%d) = %d, want %d",
				step, mod, lower, upper, got, want)
		}
	}
}

// TestFindMinNProperty checks the documented contract directly: the
// returned n (when found) satisfies the inequality, and is the smallest
// such n.
func TestFindMinNProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		mod := uint64(2 + rng.Intn(500))
		step := uint64(rng.Intn(int(mod)))
		lower := uint64(rng.Intn(int(mod)))
		upper := lower + uint64(rng.Intn(int(mod-lower)))

		n := findMinN(step, new(big.Int).SetUint64(mod), lower, upper)
		if n == notFound {
			continue
		}
		hit := (n * step) % mod
		if hit < lower || hit > upper {
			t.Fatalf("findMinN returned n=%d but (n*step) mod mod = %d, outside [%d, %d]",
				n, hit, lower, upper)
		}
		for k := uint64(0); k < n; k++ {
			if h := (k * step) % mod; h >= lower && h <= upper {
				t.Fatalf("findMinN returned n=%d but smaller k=%d already satisfies the inequality", n, k)
			}
		}
	}
}

func TestFindMinNMod64KnownCases(t *testing.T) {
	// step == 1: the smallest n with n mod 2^64 in [lower, upper] is lower itself.
	if n := findMinNMod64(1, 100, 200); n != 100 {
		t.Errorf("findMinNMod64(1, 100, 200) = %d, want 100", n)
	}
	// lower == 0: position 0 is always already a hit.
	if n := findMinNMod64(12345, 0, 50); n != 0 {
		t.Errorf("findMinNMod64(12345, 0, 50) = %d, want 0", n)
	}
	// step == 0 and lower > 0: position never moves, never a hit.
	if n := findMinNMod64(0, 1, 50); n != notFound {
		t.Errorf("findMinNMod64(0, 1, 50) = %d, want notFound", n)
	}
}

func TestFindCarriedAwayMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 200; trial++ {
		numValues := uint64(50 + rng.Intn(200))
		step := rng.Uint64()
		start := rng.Uint64()
		// Pick a threshold that yields a non-trivial hit rate.
		threshold := ^uint64(0) - ^uint64(0)/4

		var want []uint64
		pos := start
		for i := uint64(0); i < numValues; i++ {
			if pos >= threshold {
				want = append(want, i)
			}
			pos += step // wraps mod 2^64 like the uint64 arithmetic under test
		}

		var got []uint64
		findCarriedAway(start, step, numValues, threshold, func(idx uint64) {
			got = append(got, idx)
		})

		if len(got) != len(want) {
			t.Fatalf("trial %d: findCarriedAway found %d hits, brute force found %d (start=%d step=%d threshold=%d)",
				trial, len(got), len(want), start, step, threshold)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("trial %d: hit #%d = %d, want %d", trial, i, got[i], want[i])
			}
		}
	}
}
