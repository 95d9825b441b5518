package utils

import (
	"strings"
	"time"
)

const (
	layoutShortDate = "Jan 2, 2006"
	layoutLongDate  = "January 2, 2006"
)

// dateLayouts are tried in order when parsing caller-supplied date strings.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
}

// ParseFlexibleDate parses the date formats booking systems send us.
func ParseFlexibleDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatShortDate renders a parseable date as "Jan 2, 2006" and falls back to
// "N/A" otherwise. Invoice display never fails on a bad date.
func FormatShortDate(s string) string {
	t, ok := ParseFlexibleDate(s)
	if !ok {
		return "N/A"
	}
	return t.Format(layoutShortDate)
}

// FormatLongDate renders a parseable date as "January 2, 2006" and returns the
// input unchanged otherwise.
func FormatLongDate(s string) string {
	t, ok := ParseFlexibleDate(s)
	if !ok {
		return s
	}
	return t.Format(layoutLongDate)
}

// ShortDate formats a time value in the invoice display layout.
func ShortDate(t time.Time) string {
	return t.Format(layoutShortDate)
}
