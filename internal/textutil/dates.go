package textutil

import (
	"strings"
	"time"
)

// dateLayouts are tried in order when parsing a stored date string.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01",
	"2006/01/02",
	"01/2006",
}

// FormatDate formats a stored date string as "MM/YYYY". Input that cannot be
// parsed is returned unchanged: user-visible data is preserved over strict
// correctness, and the function never errors.
func FormatDate(dateStr string) string {
	s := strings.TrimSpace(dateStr)
	if s == "" {
		return ""
	}
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t.Format("01/2006")
		}
	}
	return dateStr
}

// FormatDateRange renders "<start> - <end>" with an empty end shown as
// "Present". An empty start yields just the end label; both empty yields
// "Present".
func FormatDateRange(start, end string) string {
	if strings.TrimSpace(start) == "" {
		if strings.TrimSpace(end) == "" {
			return "Present"
		}
		return FormatDate(end)
	}
	if strings.TrimSpace(end) == "" {
		return FormatDate(start) + " - Present"
	}
	return FormatDate(start) + " - " + FormatDate(end)
}
