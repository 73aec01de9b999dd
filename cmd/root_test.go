package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tathagatalaskar/paycycle/internal/budget"
	"github.com/tathagatalaskar/paycycle/internal/config"
	"github.com/tathagatalaskar/paycycle/internal/store"
)

func testEnv(t *testing.T) *appEnv {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "paycycle.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	env := &appEnv{cfg: config.DefaultConfig(), st: st}
	t.Cleanup(env.close)
	return env
}

func TestRolloverExpired_YesFlagIsNonInteractive(t *testing.T) {
	origYes, origQuiet := flagYes, flagQuiet
	flagYes, flagQuiet = true, true
	t.Cleanup(func() { flagYes, flagQuiet = origYes, origQuiet })

	env := testEnv(t)

	// A cycle that started 40 days ago is well past its end date.
	expired, err := budget.StartNewCycle(
		decimal.RequireFromString("2000"), decimal.Zero,
		time.Now().AddDate(0, 0, -40))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := expired.AddTransaction(budget.Expense, decimal.RequireFromString("1800"), "Rent", ""); err != nil {
		t.Fatal(err)
	}
	if err := env.st.SaveCycle(expired); err != nil {
		t.Fatal(err)
	}

	// With --yes this must complete without any prompt.
	next, err := rolloverExpired(env, expired)
	if err != nil {
		t.Fatalf("rolloverExpired: %v", err)
	}

	// Previous income 2000 reused, plus the 200 left over.
	if !next.InitialIncome.Equal(decimal.RequireFromString("2200")) {
		t.Errorf("InitialIncome = %s, want 2200", next.InitialIncome)
	}
	if next.IsExpired(time.Now()) {
		t.Error("new cycle is already expired")
	}

	// The new cycle was persisted as current.
	current, err := env.st.CurrentCycle()
	if err != nil {
		t.Fatal(err)
	}
	if current == nil || current.ID != next.ID {
		t.Error("rolled-over cycle is not the stored current cycle")
	}
}

func TestDaysUntil_LocalCalendarDate(t *testing.T) {
	// Cycle dates are UTC midnights of local calendar days.
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	// Shortly after local midnight on the end date, in a zone whose
	// UTC instant still falls on the previous day.
	tz := time.FixedZone("UTC+2", 2*3600)
	now := time.Date(2026, 3, 31, 0, 30, 0, 0, tz)

	if got := daysUntil(end, now); got != 0 {
		t.Errorf("daysUntil on the end date = %d, want 0", got)
	}

	if got := daysUntil(end, time.Date(2026, 3, 30, 12, 0, 0, 0, tz)); got != 1 {
		t.Errorf("daysUntil one day before = %d, want 1", got)
	}
	if got := daysUntil(end, time.Date(2026, 4, 2, 12, 0, 0, 0, tz)); got != -2 {
		t.Errorf("daysUntil two days after = %d, want -2", got)
	}
}
