package zmij

import (
	"math/big"
	"math/rand"
	"testing"
)

func toBig(hi, lo uint64) *big.Int {
	v := new(big.Int).SetUint64(hi)
	v.Lsh(v, 64)
	v.Or(v, new(big.Int).SetUint64(lo))
	return v
}

func TestMul128AgainstBigInt(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		x, y := rng.Uint64(), rng.Uint64()
		p := mul128(x, y)
		want := new(big.Int).Mul(new(big.Int).SetUint64(x), new(big.Int).SetUint64(y))
		if toBig(p.hi, p.lo).Cmp(want) != 0 {
			t.Fatalf("mul128(%d, %d) = (%d, %d), want %s", x, y, p.hi, p.lo, want)
		}
	}
}

func TestMul192Hi128AgainstBigInt(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 10000; i++ {
		xHi, xLo, y := rng.Uint64(), rng.Uint64(), rng.Uint64()
		p := mul192Hi128(xHi, xLo, y)

		x := toBig(xHi, xLo)
		full := new(big.Int).Mul(x, new(big.Int).SetUint64(y))
		want := new(big.Int).Rsh(full, 64)

		if toBig(p.hi, p.lo).Cmp(want) != 0 {
			t.Fatalf("mul192Hi128(%d, %d, %d) = (%d, %d), want %s",
				xHi, xLo, y, p.hi, p.lo, want)
		}
	}
}

// TestMulUpperInexactToOdd64 checks the round-to-odd contract directly:
// starting from the high 128 bits p of (xHi,xLo)*y (independently
// checked against big.Int in TestMul192Hi128AgainstBigInt), the result
// must equal p's high word with its low bit forced to 1 whenever any
// of p's low word's bits above the bottom one are set.
func TestMulUpperInexactToOdd64(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 10000; i++ {
		xHi, xLo, y := rng.Uint64(), rng.Uint64(), rng.Uint64()
		got := mulUpperInexactToOdd64(xHi, xLo, y)

		p := mul192Hi128(xHi, xLo, y)
		want := p.hi
		if p.lo>>1 != 0 {
			want |= 1
		}
		if got != want {
			t.Fatalf("mulUpperInexactToOdd64(%d, %d, %d) = %d, want %d", xHi, xLo, y, got, want)
		}
	}
}

// TestMulUpperInexactToOdd32 checks the binary32 round-to-odd primitive
// against an exact big.Int computation of X = xHi*y, verifying the
// returned value is bits[64,96) of X with its low bit forced to 1
// whenever bits[33,64) of X are non-zero.
func TestMulUpperInexactToOdd32(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 10000; i++ {
		xHi := rng.Uint64()
		y := rng.Uint32()
		got := mulUpperInexactToOdd32(xHi, y)

		x := new(big.Int).SetUint64(xHi)
		full := new(big.Int).Mul(x, new(big.Int).SetUint64(uint64(y)))
		wantHi := uint32(new(big.Int).Rsh(full, 64).Uint64())
		bits33to64 := new(big.Int).Rsh(full, 33)
		mask31 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 31), big.NewInt(1))
		inexact := new(big.Int).And(bits33to64, mask31).Sign() != 0

		want := wantHi
		if inexact {
			want |= 1
		}
		if got != want {
			t.Fatalf("mulUpperInexactToOdd32(%d, %d) = %d, want %d", xHi, y, got, want)
		}
	}
}

func TestCountTrailingNonzeroBytes(t *testing.T) {
	cases := []struct {
		x    uint64
		want int
	}{
		{0, 0},
		{0x01, 1},
		{0xff, 1},
		{0x0100, 2},
		{0x010000, 3},
		{0xff000000000000ff, 8},
		{0x0102030405060708, 8},
	}
	for _, c := range cases {
		if got := countTrailingNonzeroBytes(c.x); got != c.want {
			t.Errorf("countTrailingNonzeroBytes(%#x) = %d, want %d", c.x, got, c.want)
		}
	}
}
