package utils

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FormatRate renders an exchange rate at display precision (4 decimals).
// Example: 83.25 -> "83.2500".
func FormatRate(rate decimal.Decimal) string {
	return rate.StringFixed(4)
}

// FormatAmount renders a monetary amount at display precision (2 decimals).
// Rounding happens here and only here; stored values keep full precision.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// RelativeTime renders how long ago t was, in the coarsest sensible unit.
// Example: "3 hours ago", "1 day ago".
func RelativeTime(t time.Time, now time.Time) string {
	diff := now.Sub(t)
	hours := int(diff.Hours())
	days := hours / 24

	switch {
	case days > 0:
		return fmt.Sprintf("%d day%s ago", days, plural(days))
	case hours > 0:
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	default:
		minutes := int(diff.Minutes())
		return fmt.Sprintf("%d minute%s ago", minutes, plural(minutes))
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
