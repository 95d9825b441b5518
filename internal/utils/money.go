package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatMoney keeps consistent two-decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatINR renders an amount with Indian digit grouping and no decimals,
// e.g. 1234567 -> "12,34,567". The amount is rounded to the nearest rupee.
func FormatINR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + groupIndian(int64(math.Round(amount)))
}

// groupIndian applies lakh/crore grouping: the last three digits form one
// group, every group before that has two digits.
func groupIndian(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	head := s[:len(s)-3]
	out := s[len(s)-3:]
	for len(head) > 2 {
		out = head[len(head)-2:] + "," + out
		head = head[:len(head)-2]
	}
	return head + "," + out
}
