// Package docdata builds the flat record consumed by document templates:
// tax figures, derived counts, formatted dates and display defaults.
package docdata

import (
	"math"
	"time"

	"pdfservice/internal/domain"
	"pdfservice/internal/tax"
	"pdfservice/internal/utils"
)

// LogoSource supplies the shared logo payload for rendered documents.
type LogoSource interface {
	Base64() string
}

// Preparer assembles template records. It is stateless apart from the
// read-only logo asset; every call returns a fresh record.
type Preparer struct {
	Logo LogoSource

	// Image URLs pointing at InternalMediaHost are rewritten to
	// PublicStorageURL so the browser rendering the PDF can fetch them.
	PublicStorageURL  string
	InternalMediaHost string

	// Now is overridable for deterministic tests; nil means time.Now.
	Now func() time.Time
}

// Prepare builds the voucher/quote template record: the caller's data plus tax
// breakdown, pax totals, per-person price, destination counts, logo payload
// and current year.
func (p Preparer) Prepare(data map[string]any) map[string]any {
	out := clone(data)

	total, _ := domain.FieldFloat(data, "totalAmount")
	bd := tax.Calculate(total, domain.FieldBool(data, "includeTcs"))
	out["gstAmount"] = bd.GSTAmount
	out["tcsAmount"] = bd.TCSAmount
	out["tcsRate"] = bd.TCSRate
	out["grandTotal"] = bd.GrandTotal

	adults := intField(data, "paxAdults")
	children := intField(data, "paxChildren")
	infants := intField(data, "paxInfants")
	out["paxAdults"] = adults
	out["paxChildren"] = children
	out["paxInfants"] = infants

	totalPax := adults + children + infants
	out["totalPax"] = totalPax
	if totalPax > 0 {
		out["perPersonPrice"] = math.Round(bd.GrandTotal / float64(totalPax))
	} else {
		out["perPersonPrice"] = bd.GrandTotal
	}

	countryCount, cityCount := destinationCounts(data)
	out["countryCount"] = countryCount
	out["cityCount"] = cityCount

	p.rewriteImageURLs(out)

	out["logoBase64"] = p.logo()
	out["currentYear"] = p.now().Year()

	return out
}

// destinationCounts derives distinct country/city counts from the
// night-by-night allocation list when present; those floor at 1. Without one,
// a comma-separated country string is counted by its non-blank segments.
func destinationCounts(data map[string]any) (int, int) {
	if nights, ok := domain.FieldSlice(data, "nightAllocations"); ok {
		countries := map[string]struct{}{}
		cities := map[string]struct{}{}
		for _, n := range nights {
			night, ok := n.(map[string]any)
			if !ok {
				continue
			}
			if c, ok := domain.FieldString(night, "country"); ok && utils.TrimOrEmpty(c) != "" {
				countries[c] = struct{}{}
			}
			if c, ok := domain.FieldString(night, "city"); ok && utils.TrimOrEmpty(c) != "" {
				cities[c] = struct{}{}
			}
		}
		return atLeastOne(len(countries)), atLeastOne(len(cities))
	}

	if country, ok := domain.FieldString(data, "country"); ok && utils.TrimOrEmpty(country) != "" {
		return len(utils.SplitCSV(country)), 1
	}

	return 1, 1
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func (p Preparer) logo() string {
	if p.Logo == nil {
		return ""
	}
	return p.Logo.Base64()
}

func (p Preparer) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

func intField(data map[string]any, key string) int {
	v, _ := domain.FieldFloat(data, key)
	return int(v)
}

func clone(data map[string]any) map[string]any {
	out := make(map[string]any, len(data)+16)
	for k, v := range data {
		out[k] = v
	}
	return out
}
