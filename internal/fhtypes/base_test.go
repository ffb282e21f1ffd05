package fhtypes

import "testing"

func TestBase_Valid(t *testing.T) {
	t.Parallel()

	for _, b := range []Base{Base1, Base12, Base20, Base28, Base40} {
		if !b.Valid() {
			t.Errorf("Base(%d).Valid() = false, want true", int(b))
		}
	}

	for _, b := range []Base{0, -1, 2, 4, 8, 13, 24, 32, 41} {
		if b.Valid() {
			t.Errorf("Base(%d).Valid() = true, want false", int(b))
		}
	}
}

func TestBase_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		base Base
		want string
	}{
		{Base1, "pow2"},
		{Base12, "12n"},
		{Base20, "20n"},
		{Base28, "28n"},
		{Base40, "40n"},
		{Base(7), "invalid(7)"},
	}

	for _, tc := range cases {
		if got := tc.base.String(); got != tc.want {
			t.Errorf("Base(%d).String() = %q, want %q", int(tc.base), got, tc.want)
		}
	}
}
