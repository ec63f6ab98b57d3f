package printers

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a charge for display: currency code, grouped
// thousands, no fractional digits. The stored amount itself stays a plain
// decimal; this is purely a presentation rule.
func FormatAmount(d decimal.Decimal, currency string) string {
	s := groupThousands(d.Round(0).String())
	if currency == "" {
		return s
	}
	return currency + " " + s
}

func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)
	out := strings.Join(groups, ",")
	if neg {
		return "-" + out
	}
	return out
}
