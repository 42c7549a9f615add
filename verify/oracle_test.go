package verify

import "testing"

func TestParseShortestDecimal(t *testing.T) {
	cases := []struct {
		in      string
		wantSig uint64
		wantExp int
	}{
		{"1e+00", 1, 0},
		{"1.5e+02", 15, 1},
		{"-6.62607015e-34", 662607015, -42},
		{"3e-10", 3, -10},
	}
	for _, c := range cases {
		sig, exp := parseShortestDecimal(c.in)
		if sig != c.wantSig || exp != c.wantExp {
			t.Errorf("parseShortestDecimal(%q) = (%d, %d), want (%d, %d)",
				c.in, sig, exp, c.wantSig, c.wantExp)
		}
	}
}

func TestShortestDecimal64KnownValues(t *testing.T) {
	sig, exp := shortestDecimal64(6.62607015e-34)
	if sig != 662607015 || exp != -42 {
		t.Errorf("shortestDecimal64(6.62607015e-34) = (%d, %d), want (662607015, -42)", sig, exp)
	}
}

func TestShortestDecimal32KnownValues(t *testing.T) {
	sig, exp := shortestDecimal32(1.342178e+08)
	if sig != 1342178 || exp != 2 {
		t.Errorf("shortestDecimal32(1.342178e+08) = (%d, %d), want (1342178, 2)", sig, exp)
	}
}
