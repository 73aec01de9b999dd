package budget

import (
	"testing"

	"github.com/shopspring/decimal"
)

// fixture builds a cycle starting 2026-03-01 with the given income and
// a list of expense amount/category pairs.
func fixture(t *testing.T, income string, expenses ...[2]string) *Cycle {
	t.Helper()
	c, err := StartNewCycle(dec(income), decimal.Zero, mustDay(t, "2026-03-01"))
	if err != nil {
		t.Fatalf("StartNewCycle: %v", err)
	}
	for _, e := range expenses {
		if _, err := c.AddTransaction(Expense, dec(e[0]), e[1], ""); err != nil {
			t.Fatalf("AddTransaction(%s): %v", e[0], err)
		}
	}
	return c
}

func TestLedger_RentAndFoodScenario(t *testing.T) {
	c := fixture(t, "2000", [2]string{"500", "Rent"}, [2]string{"100", "Food"})

	if got := c.Balance(); !got.Equal(dec("1400")) {
		t.Errorf("Balance = %s, want 1400", got)
	}

	// Day 10 of the cycle.
	asOf := mustDay(t, "2026-03-10")
	if got := c.DaysElapsed(asOf); got != 10 {
		t.Fatalf("DaysElapsed = %d, want 10", got)
	}
	if got := c.BurnRate(asOf); !got.Equal(dec("60")) {
		t.Errorf("BurnRate = %s, want 60", got)
	}

	runway, infinite := c.Runway(asOf)
	if infinite {
		t.Fatal("Runway reported infinite with expenses present")
	}
	// 1400/60 = 23.33... days
	if runway.Round(1).String() != "23.3" {
		t.Errorf("Runway = %s, want ~23.3", runway)
	}
}

func TestLedger_NoExpensesMeansInfiniteRunway(t *testing.T) {
	c := fixture(t, "2000")

	if got := c.BurnRate(mustDay(t, "2026-03-15")); !got.IsZero() {
		t.Errorf("BurnRate = %s, want 0", got)
	}
	if _, infinite := c.Runway(mustDay(t, "2026-03-15")); !infinite {
		t.Error("Runway not infinite with zero expenses")
	}
}

func TestLedger_OverspentCycle(t *testing.T) {
	c := fixture(t, "500", [2]string{"700", "Rent"})

	if got := c.Balance(); !got.Equal(dec("-200")) {
		t.Errorf("Balance = %s, want -200", got)
	}

	runway, infinite := c.Runway(mustDay(t, "2026-03-10"))
	if infinite {
		t.Fatal("Runway reported infinite for overspent cycle")
	}
	if !runway.IsNegative() {
		t.Errorf("Runway = %s, want negative (already overspent)", runway)
	}

	// Debt is carried into the next cycle unchanged.
	if got := c.Rollover(); !got.Equal(dec("-200")) {
		t.Errorf("Rollover = %s, want -200", got)
	}
}

func TestLedger_DaysElapsedNeverBelowOne(t *testing.T) {
	c := fixture(t, "100")

	if got := c.DaysElapsed(mustDay(t, "2026-03-01")); got != 1 {
		t.Errorf("DaysElapsed on start day = %d, want 1", got)
	}
	// Clock skew before the start date still yields 1.
	if got := c.DaysElapsed(mustDay(t, "2026-02-20")); got != 1 {
		t.Errorf("DaysElapsed before start = %d, want 1", got)
	}
}

func TestLedger_BalanceInvariantUnderReordering(t *testing.T) {
	c := fixture(t, "1000", [2]string{"10", "A"}, [2]string{"20", "B"}, [2]string{"30", "C"})
	want := c.Balance()

	reversed := &Cycle{
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
	}
	for i := len(c.Transactions) - 1; i >= 0; i-- {
		reversed.Transactions = append(reversed.Transactions, c.Transactions[i])
	}

	if got := reversed.Balance(); !got.Equal(want) {
		t.Errorf("reordered Balance = %s, want %s", got, want)
	}
}

func TestLedger_ExpenseSumRoundTrip(t *testing.T) {
	c := fixture(t, "10000")
	total := decimal.Zero
	// Many small amounts that would drift under float64 accumulation.
	for i := 0; i < 300; i++ {
		amt := dec("0.10")
		if _, err := c.AddTransaction(Expense, amt, "Misc", ""); err != nil {
			t.Fatalf("AddTransaction: %v", err)
		}
		total = total.Add(amt)
	}
	if got := c.TotalByKind(Expense); !got.Equal(total) {
		t.Errorf("TotalByKind(Expense) = %s, want %s", got, total)
	}
	if !total.Equal(dec("30")) {
		t.Fatalf("fixture arithmetic off: %s", total)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	c := fixture(t, "2000",
		[2]string{"500", "Rent"},
		[2]string{"60", "Food"},
		[2]string{"40", "Food"},
	)

	got := c.CategoryBreakdown()
	if len(got) != 2 {
		t.Fatalf("len(breakdown) = %d, want 2", len(got))
	}
	if !got["Rent"].Equal(dec("500")) {
		t.Errorf("Rent = %s, want 500", got["Rent"])
	}
	if !got["Food"].Equal(dec("100")) {
		t.Errorf("Food = %s, want 100", got["Food"])
	}
}

func TestCategoryBreakdown_EmptyWithoutExpenses(t *testing.T) {
	c := fixture(t, "2000")
	if got := c.CategoryBreakdown(); len(got) != 0 {
		t.Errorf("breakdown = %v, want empty map", got)
	}
}

func TestDailyExpenses_FillsGapDays(t *testing.T) {
	c := fixture(t, "1000")
	// Pin expense timestamps to specific cycle days.
	c.Transactions = append(c.Transactions,
		Transaction{Kind: Expense, Amount: dec("30"), Category: "Food", CreatedAt: mustDay(t, "2026-03-01")},
		Transaction{Kind: Expense, Amount: dec("50"), Category: "Food", CreatedAt: mustDay(t, "2026-03-04")},
	)

	buckets := c.DailyExpenses(mustDay(t, "2026-03-05"))
	if len(buckets) != 5 {
		t.Fatalf("len(buckets) = %d, want 5", len(buckets))
	}
	if !buckets[0].Equal(dec("30")) || !buckets[3].Equal(dec("50")) {
		t.Errorf("buckets = %v, want 30 on day 1 and 50 on day 4", buckets)
	}
	for _, day := range []int{1, 2, 4} {
		if !buckets[day].IsZero() {
			t.Errorf("buckets[%d] = %s, want 0", day, buckets[day])
		}
	}
}

func TestRolloverChain(t *testing.T) {
	first := fixture(t, "2000", [2]string{"1800", "Rent"})
	carried := first.Rollover()
	if !carried.Equal(dec("200")) {
		t.Fatalf("Rollover = %s, want 200", carried)
	}

	next, err := StartNewCycle(dec("2000"), carried, first.EndDate.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("StartNewCycle: %v", err)
	}
	if !next.InitialIncome.Equal(dec("2200")) {
		t.Errorf("next InitialIncome = %s, want 2200", next.InitialIncome)
	}
	if !next.StartDate.After(first.EndDate) {
		t.Error("next cycle does not start after the previous one ended")
	}
}
