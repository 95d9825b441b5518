// Package words renders amounts as English words in the Indian numbering
// system (crore, lakh, thousand) for invoice display.
package words

import (
	"math"
	"strconv"
	"strings"
)

var ones = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}

var teens = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}

var tens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}

// FromAmount converts a non-negative amount into words. The fractional part is
// truncated to two digits and appended as "... and N Paise". Whole-number
// groups of zero are omitted, so 10000000 reads "One Crore", not "One Crore
// Zero Lakh".
func FromAmount(amount float64) string {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "Zero"
	}

	out := integerWords(int64(amount))
	paise := paisePart(amount)

	if paise > 0 {
		if out != "" {
			out += " and " + belowThousand(paise) + " Paise"
		} else {
			out = belowThousand(paise) + " Paise"
		}
	}

	if out == "" {
		return "Zero"
	}
	return out
}

// integerWords renders a non-negative rupee amount. The crore group recurses
// through the same grouping, so a thousand crore reads "One Thousand Crore"
// and never overruns the digit tables.
func integerWords(n int64) string {
	if n <= 0 {
		return ""
	}

	var b strings.Builder

	crore := n / 10_000_000
	lakh := (n % 10_000_000) / 100_000
	thousand := (n % 100_000) / 1_000
	remainder := n % 1_000

	if crore > 0 {
		b.WriteString(integerWords(crore) + " Crore ")
	}
	if lakh > 0 {
		b.WriteString(belowThousand(int(lakh)) + " Lakh ")
	}
	if thousand > 0 {
		b.WriteString(belowThousand(int(thousand)) + " Thousand ")
	}
	if remainder > 0 {
		b.WriteString(belowThousand(int(remainder)))
	}

	return strings.TrimSpace(b.String())
}

// paisePart extracts the fractional part as a two-digit paise value, so
// ".5" means fifty paise and ".567" truncates to fifty-six.
func paisePart(amount float64) int {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	_, frac, ok := strings.Cut(s, ".")
	if !ok {
		return 0
	}
	if len(frac) > 2 {
		frac = frac[:2]
	}
	for len(frac) < 2 {
		frac += "0"
	}
	n, err := strconv.Atoi(frac)
	if err != nil {
		return 0
	}
	return n
}

func belowThousand(n int) string {
	switch {
	case n <= 0:
		return ""
	case n < 10:
		return ones[n]
	case n < 20:
		return teens[n-10]
	case n < 100:
		if n%10 == 0 {
			return tens[n/10]
		}
		return tens[n/10] + " " + ones[n%10]
	default:
		out := ones[n/100] + " Hundred"
		if n%100 != 0 {
			out += " " + belowThousand(n%100)
		}
		return out
	}
}
