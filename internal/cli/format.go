// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Currency is the symbol prefixed to monetary output. The root command
// sets it from config at startup.
var Currency = "$"

// Money formats a monetary amount with exactly two fractional digits.
// e.g., 1400 -> "$1400.00", -200.5 -> "-$200.50"
func Money(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + Currency + d.Neg().StringFixed(2)
	}
	return Currency + d.StringFixed(2)
}

// SignedMoney formats a delta with an explicit leading sign.
func SignedMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return Money(d)
	}
	return "+" + Money(d)
}

// Runway formats a projected runway in days. An infinite runway (zero
// burn rate) renders as the infinity sign.
func Runway(days decimal.Decimal, infinite bool) string {
	if infinite {
		return "∞"
	}
	return fmt.Sprintf("%s days", days.StringFixed(1))
}

// Percent formats a 0-1 ratio as a percentage.
func Percent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// DateShort formats a date for tables and summaries.
func DateShort(t time.Time) string {
	return t.Format("2006-01-02")
}

// CycleRange formats a cycle's start and end dates.
func CycleRange(start, end time.Time) string {
	return fmt.Sprintf("%s → %s", DateShort(start), DateShort(end))
}

// DaysLeft phrases the remaining days of a cycle.
func DaysLeft(n int) string {
	switch {
	case n < 0:
		return "ended"
	case n == 0:
		return "last day"
	case n == 1:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", n)
	}
}
