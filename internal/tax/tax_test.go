package tax

import "testing"

func TestCalculateGSTAlwaysApplied(t *testing.T) {
	cases := []float64{0, 1, 100, 54321.5, 1_000_000, 2_500_000}
	for _, base := range cases {
		got := Calculate(base, false)
		if got.GSTAmount != base*GSTRate {
			t.Fatalf("base=%v: GSTAmount=%v, want %v", base, got.GSTAmount, base*GSTRate)
		}
		if got.TCSAmount != 0 || got.TCSRate != "0%" {
			t.Fatalf("base=%v: expected no TCS, got %v (%s)", base, got.TCSAmount, got.TCSRate)
		}
		if got.GrandTotal != base+got.GSTAmount {
			t.Fatalf("base=%v: GrandTotal=%v, want %v", base, got.GrandTotal, base+got.GSTAmount)
		}
	}
}

func TestCalculateTCSFlatRate(t *testing.T) {
	base := 500_000.0
	got := Calculate(base, true)

	if got.TCSAmount != base*TCSRateLow {
		t.Fatalf("TCSAmount=%v, want %v", got.TCSAmount, base*TCSRateLow)
	}
	if got.TCSRate != "5%" {
		t.Fatalf("TCSRate=%q, want 5%%", got.TCSRate)
	}
	if got.GrandTotal != base+got.GSTAmount+got.TCSAmount {
		t.Fatalf("GrandTotal=%v, want %v", got.GrandTotal, base+got.GSTAmount+got.TCSAmount)
	}
}

func TestCalculateTCSThresholdInclusive(t *testing.T) {
	// Exactly at the threshold the flat rate still applies.
	at := Calculate(TCSThreshold, true)
	if at.TCSRate != "5%" {
		t.Fatalf("at threshold: rate=%q, want 5%%", at.TCSRate)
	}
	if at.TCSAmount != TCSThreshold*TCSRateLow {
		t.Fatalf("at threshold: TCSAmount=%v, want %v", at.TCSAmount, TCSThreshold*TCSRateLow)
	}

	// One paisa above switches to the split regime.
	base := TCSThreshold + 0.01
	above := Calculate(base, true)
	if above.TCSRate != "5% up to ₹10L, 20% above" {
		t.Fatalf("above threshold: rate=%q", above.TCSRate)
	}
	want := TCSThreshold*TCSRateLow + (base-TCSThreshold)*TCSRateHigh
	if above.TCSAmount != want {
		t.Fatalf("above threshold: TCSAmount=%v, want %v", above.TCSAmount, want)
	}
}

func TestCalculateNonPositiveBaseSkipsTCS(t *testing.T) {
	got := Calculate(0, true)
	if got.TCSAmount != 0 || got.TCSRate != "0%" {
		t.Fatalf("zero base should not attract TCS, got %v (%s)", got.TCSAmount, got.TCSRate)
	}
}

func TestCalculateOnGrossUsesBasePlusGST(t *testing.T) {
	base := 400_000.0
	got := CalculateOnGross(base, true)

	gross := base + base*GSTRate
	if got.TCSAmount != gross*TCSRateLow {
		t.Fatalf("TCSAmount=%v, want %v", got.TCSAmount, gross*TCSRateLow)
	}

	// A base that only crosses the threshold once GST is added must land in
	// the split regime here but not in the pre-GST variant.
	base = 980_000.0
	preGST := Calculate(base, true)
	onGross := CalculateOnGross(base, true)
	if preGST.TCSRate != "5%" {
		t.Fatalf("pre-GST variant: rate=%q, want 5%%", preGST.TCSRate)
	}
	if onGross.TCSRate != "5% up to ₹10L, 20% above" {
		t.Fatalf("on-gross variant: rate=%q, want split label", onGross.TCSRate)
	}
}
