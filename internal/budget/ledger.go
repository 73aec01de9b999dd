package budget

import (
	"time"

	"github.com/shopspring/decimal"
)

// TotalByKind sums the amounts of all transactions of one kind.
func (c *Cycle) TotalByKind(kind Kind) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range c.Transactions {
		if tx.Kind == kind {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// Balance is total income minus total expense.
func (c *Cycle) Balance() decimal.Decimal {
	return c.TotalByKind(Income).Sub(c.TotalByKind(Expense))
}

// DaysElapsed counts the days of the cycle that have passed as of the
// given instant, inclusive of the start day. Never less than 1, so rate
// computations are well-defined on day one.
func (c *Cycle) DaysElapsed(asOf time.Time) int {
	days := int(dateOnly(asOf).Sub(c.StartDate).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}

// BurnRate is the average expense per elapsed day.
func (c *Cycle) BurnRate(asOf time.Time) decimal.Decimal {
	spent := c.TotalByKind(Expense)
	if spent.IsZero() {
		return decimal.Zero
	}
	return spent.Div(decimal.NewFromInt(int64(c.DaysElapsed(asOf))))
}

// Runway projects the days until the balance reaches zero at the current
// burn rate. When nothing has been spent the burn rate is zero and the
// runway is infinite, reported via the second return value. A negative
// runway means the cycle is already overspent; callers display it as-is.
func (c *Cycle) Runway(asOf time.Time) (decimal.Decimal, bool) {
	rate := c.BurnRate(asOf)
	if rate.IsZero() {
		return decimal.Zero, true
	}
	return c.Balance().Div(rate), false
}

// CategoryBreakdown groups expense totals by category. The map is empty
// when the cycle has no expenses; callers treat that as nothing to render.
func (c *Cycle) CategoryBreakdown() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, tx := range c.Transactions {
		if tx.Kind != Expense {
			continue
		}
		out[tx.Category] = out[tx.Category].Add(tx.Amount)
	}
	return out
}

// Rollover is the amount carried into the next cycle when this one
// expires: the remaining balance, unchanged even when negative.
func (c *Cycle) Rollover() decimal.Decimal {
	return c.Balance()
}

// DailyExpenses buckets expense totals per cycle day from the start date
// through asOf, with zero-valued days filled in so charts show gaps.
func (c *Cycle) DailyExpenses(asOf time.Time) []decimal.Decimal {
	days := c.DaysElapsed(asOf)
	buckets := make([]decimal.Decimal, days)
	for _, tx := range c.Transactions {
		if tx.Kind != Expense {
			continue
		}
		idx := int(dateOnly(tx.CreatedAt).Sub(c.StartDate).Hours() / 24)
		if idx < 0 || idx >= days {
			continue
		}
		buckets[idx] = buckets[idx].Add(tx.Amount)
	}
	return buckets
}
