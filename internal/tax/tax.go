package tax

// Indian GST/TCS rates for outbound tour packages.
const (
	GSTRate      = 0.05
	TCSThreshold = 1_000_000.0
	TCSRateLow   = 0.05
	TCSRateHigh  = 0.20

	labelNoTCS    = "0%"
	labelFlatTCS  = "5%"
	labelSplitTCS = "5% up to ₹10L, 20% above"
)

// Breakdown holds derived tax figures for one document.
// GrandTotal = base + GSTAmount + TCSAmount exactly; formatting happens at display time.
type Breakdown struct {
	GSTAmount  float64 `json:"gstAmount"`
	TCSAmount  float64 `json:"tcsAmount"`
	TCSRate    string  `json:"tcsRate"`
	GrandTotal float64 `json:"grandTotal"`
}

// Calculate computes GST and TCS with TCS levied on the pre-GST base amount.
// This is the variant used by the voucher/quote pipeline.
func Calculate(baseAmount float64, includeTCS bool) Breakdown {
	gst := baseAmount * GSTRate
	return breakdown(baseAmount, gst, baseAmount, includeTCS)
}

// CalculateOnGross computes GST and TCS with TCS levied on base + GST.
// Some billing integrations collect TCS on the gross amount; both variants are
// kept side by side so the caller chooses explicitly instead of inheriting one.
func CalculateOnGross(baseAmount float64, includeTCS bool) Breakdown {
	gst := baseAmount * GSTRate
	return breakdown(baseAmount, gst, baseAmount+gst, includeTCS)
}

func breakdown(baseAmount, gst, tcsBase float64, includeTCS bool) Breakdown {
	tcs := 0.0
	rate := labelNoTCS

	if includeTCS && baseAmount > 0 {
		// The threshold is inclusive on the flat-rate branch.
		if tcsBase <= TCSThreshold {
			tcs = tcsBase * TCSRateLow
			rate = labelFlatTCS
		} else {
			tcs = TCSThreshold*TCSRateLow + (tcsBase-TCSThreshold)*TCSRateHigh
			rate = labelSplitTCS
		}
	}

	return Breakdown{
		GSTAmount:  gst,
		TCSAmount:  tcs,
		TCSRate:    rate,
		GrandTotal: baseAmount + gst + tcs,
	}
}
