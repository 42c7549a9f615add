package zmij

import (
	"math"
	"math/big"
	"testing"
)

// TestComputeDecExp checks compute_dec_exp against an exact big.Rat
// computation of floor(log10((regular ? 1 : 3/4) * 2^binExp)), for
// every binary exponent a binary64 value can have.
func TestComputeDecExp(t *testing.T) {
	tenRat := big.NewRat(10, 1)

	// floor(log10(v)) for a positive rational v, found by bracketing
	// with exact rational powers of ten (no floating-point log involved).
	floorLog10 := func(v *big.Rat) int {
		k := 0
		pow := big.NewRat(1, 1) // 10^k
		for v.Cmp(new(big.Rat).Mul(pow, tenRat)) >= 0 {
			pow.Mul(pow, tenRat)
			k++
		}
		for v.Cmp(pow) < 0 {
			pow.Quo(pow, tenRat)
			k--
		}
		return k
	}

	pow2 := func(e int) *big.Rat {
		if e >= 0 {
			return new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(e)))
		}
		return new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), uint(-e)))
	}

	for e := -1074; e <= 1023; e++ {
		for _, regular := range []bool{true, false} {
			v := pow2(e)
			if !regular {
				v = new(big.Rat).Mul(v, big.NewRat(3, 4))
			}
			want := floorLog10(v)
			got := computeDecExp(e, regular)
			if got != want {
				t.Fatalf("computeDecExp(%d, %v) = %d, want %d", e, regular, got, want)
			}
		}
	}
}

func TestToDecimal64Specials(t *testing.T) {
	if r := ToDecimal64(math.Float64bits(math.Inf(1))); r.Class != ClassInf || r.Negative {
		t.Errorf("+inf: got Class=%v Negative=%v", r.Class, r.Negative)
	}
	if r := ToDecimal64(math.Float64bits(math.Inf(-1))); r.Class != ClassInf || !r.Negative {
		t.Errorf("-inf: got Class=%v Negative=%v", r.Class, r.Negative)
	}
	if r := ToDecimal64(math.Float64bits(math.NaN())); r.Class != ClassNaN {
		t.Errorf("nan: got Class=%v", r.Class)
	}
	if r := ToDecimal64(0); r.Class != ClassFinite || r.Dec.Sig != 0 {
		t.Errorf("+0: got Class=%v Dec=%v", r.Class, r.Dec)
	}
	if r := ToDecimal64(1 << 63); r.Class != ClassFinite || r.Dec.Sig != 0 || !r.Negative {
		t.Errorf("-0: got Class=%v Dec=%v Negative=%v", r.Class, r.Dec, r.Negative)
	}
}

func TestNormalizeSubnormalReachesMinDigits(t *testing.T) {
	d := normalizeSubnormal(DecFp{Sig: 5, Exp: -324}, true, float64Traits.minNormSig)
	if d.Sig < float64Traits.minNormSig || d.Sig >= float64Traits.minNormSig*10 {
		t.Fatalf("normalizeSubnormal left Sig=%d outside the full digit range", d.Sig)
	}
}
