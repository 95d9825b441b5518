package docdata

import (
	"fmt"

	"pdfservice/internal/domain"
	"pdfservice/internal/utils"
	"pdfservice/internal/words"
)

// Invoice display defaults.
const (
	defaultSACCode     = "998552"
	defaultPaymentType = "one_time"
	defaultGSTRate     = 5.0
)

// PrepareInvoice builds the invoice template record: locale-formatted dates,
// two-decimal amounts, the CGST/SGST split, amount in words, formatted payment
// rows and display defaults. Malformed optional fields never fail the
// preparation; dates fall back to "N/A".
func (p Preparer) PrepareInvoice(data map[string]any) map[string]any {
	out := clone(data)
	now := p.now()

	for _, field := range []string{"invoiceDate", "bookingDate", "departureDate", "endDate"} {
		s, _ := domain.FieldString(data, field)
		out[field] = utils.FormatShortDate(s)
	}
	out["currentDate"] = utils.ShortDate(now)

	subtotal, _ := domain.FieldFloat(data, "subtotal")
	gstAmount, _ := domain.FieldFloat(data, "gstAmount")
	tcsAmount, _ := domain.FieldFloat(data, "tcsAmount")
	grandTotal, _ := domain.FieldFloat(data, "grandTotal")

	out["subtotal"] = utils.FormatMoney(subtotal)
	out["gstAmount"] = utils.FormatMoney(gstAmount)
	out["tcsAmount"] = utils.FormatMoney(tcsAmount)
	out["grandTotal"] = utils.FormatMoney(grandTotal)
	// Package price before TCS.
	out["packageTotal"] = utils.FormatMoney(subtotal + gstAmount)
	out["grandTotalInWords"] = words.FromAmount(grandTotal)

	gstRate := defaultGSTRate
	if r, ok := domain.FieldFloat(data, "gstRate"); ok && r > 0 {
		gstRate = r
	}
	out["gstRate"] = gstRate
	out["cgstRate"] = formatRate(gstRate / 2)
	out["sgstRate"] = formatRate(gstRate / 2)
	out["cgstAmount"] = utils.FormatMoney(gstAmount / 2)
	out["sgstAmount"] = utils.FormatMoney(gstAmount / 2)

	out["payments"] = formatPayments(data)

	if s, ok := domain.FieldString(data, "sacCode"); !ok || utils.TrimOrEmpty(s) == "" {
		out["sacCode"] = defaultSACCode
	}
	if _, ok := data["includeTcs"]; !ok {
		out["includeTcs"] = false
	}
	if s, ok := domain.FieldString(data, "paymentType"); !ok || utils.TrimOrEmpty(s) == "" {
		out["paymentType"] = defaultPaymentType
	}

	out["logoBase64"] = p.logo()
	out["currentYear"] = now.Year()

	return out
}

// formatPayments reformats each payment row for display: the paid date in the
// short locale layout and the amount with two decimals. Rows are copied;
// caller data is never mutated.
func formatPayments(data map[string]any) []map[string]any {
	raw, _ := domain.FieldSlice(data, "payments")
	out := make([]map[string]any, 0, len(raw))
	for _, r := range raw {
		payment, ok := r.(map[string]any)
		if !ok {
			continue
		}
		row := clone(payment)
		paidDate, _ := domain.FieldString(payment, "paidDate")
		row["paidDate"] = utils.FormatShortDate(paidDate)
		amount, _ := domain.FieldFloat(payment, "amount")
		row["amount"] = utils.FormatMoney(amount)
		out = append(out, row)
	}
	return out
}

func formatRate(rate float64) string {
	return fmt.Sprintf("%.1f", rate)
}
