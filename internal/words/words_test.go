package words

import "testing"

func TestFromAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "Zero"},
		{1, "One"},
		{19, "Nineteen"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{305, "Three Hundred Five"},
		{1_000, "One Thousand"},
		{12_000, "Twelve Thousand"},
		{100_000, "One Lakh"},
		{250_000, "Two Lakh Fifty Thousand"},
		{10_000_000, "One Crore"},
		{10_000_001, "One Crore One"},
		{10_000_000_000, "One Thousand Crore"},
		{12_500_000_000, "One Thousand Two Hundred Fifty Crore"},
		{1_000_000_000_000, "One Lakh Crore"},
		{10_000_000_000.5, "One Thousand Crore and Fifty Paise"},
		{12_345_678.5, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight and Fifty Paise"},
		{99.99, "Ninety Nine and Ninety Nine Paise"},
		{0.25, "Twenty Five Paise"},
		{1.5, "One and Fifty Paise"},
		{123.456, "One Hundred Twenty Three and Forty Five Paise"},
	}

	for _, tc := range cases {
		if got := FromAmount(tc.in); got != tc.want {
			t.Errorf("FromAmount(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFromAmountOmitsZeroGroups(t *testing.T) {
	// 1 crore and 5 rupees: no "Zero Lakh"/"Zero Thousand" filler allowed.
	got := FromAmount(10_000_005)
	if got != "One Crore Five" {
		t.Fatalf("got %q", got)
	}
}
