package inventory

import "testing"

func TestPrice(t *testing.T) {
	testCases := []struct {
		name string
		got  Price
		want string
	}{
		{"two decimals", P(2.5), "2.50"},
		{"integer", P(10), "10.00"},
		{"mul", P(2.5).Mul(4), "10.00"},
		{"add", P(0.1).Add(P(0.2)), "0.30"},
		{"sub", P(1).Sub(P(1.25)), "-0.25"},
		{"round half", P(1.005).Round("USD"), "1.01"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.got.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParsePrice(t *testing.T) {
	p, err := ParsePrice("19.99")
	if err != nil || !p.Equal(P(19.99)) {
		t.Errorf("ParsePrice(\"19.99\") = %v, %v", p, err)
	}
	if _, err := ParsePrice("abc"); err == nil {
		t.Error("ParsePrice(\"abc\") expected an error")
	}
}

func TestCurrencyFraction(t *testing.T) {
	if got := Fraction("USD"); got != 2 {
		t.Errorf("Fraction(USD) = %d, want 2", got)
	}
	if got := Fraction("JPY"); got != 0 {
		t.Errorf("Fraction(JPY) = %d, want 0", got)
	}
	if got := Fraction("???"); got != 2 {
		t.Errorf("Fraction(???) = %d, want 2", got)
	}
	if KnownCurrency("???") || !KnownCurrency("EUR") {
		t.Error("KnownCurrency gives wrong answers")
	}
	if got := P(1234.5).StringIn("JPY"); got != "1235" {
		t.Errorf("StringIn(JPY) = %q, want %q", got, "1235")
	}
}
