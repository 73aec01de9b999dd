// Package budget defines the pay-cycle domain: a fixed 30-day budget
// period, its transaction ledger, and the derived metrics computed from it.
// Everything here is pure — persistence and prompting live elsewhere.
package budget

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CycleDays is the fixed length of a budget cycle.
const CycleDays = 30

// DefaultCategory labels transactions entered without a category.
const DefaultCategory = "Misc"

// Kind distinguishes money coming in from money going out.
type Kind string

// Transaction kinds. The string values are the on-disk representation.
const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// Validation errors returned by entry-path constructors. All of them
// are recoverable input errors, never faults.
var (
	ErrBadAmount      = errors.New("amount is not a valid number")
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrZeroExpense    = errors.New("expense amount must be greater than zero")
	ErrBadKind        = errors.New("transaction kind must be income or expense")
	ErrNegativeIncome = errors.New("cycle income must not be negative")
)

// Transaction is a single ledger entry. Entries are append-only: once
// recorded they are never edited by the domain layer.
type Transaction struct {
	ID          string
	Kind        Kind
	Amount      decimal.Decimal
	Category    string
	Description string
	CreatedAt   time.Time
}

// Cycle is one 30-day budget period and its ledger. The first entry is
// always a synthetic income transaction equal to InitialIncome.
type Cycle struct {
	ID            string
	StartDate     time.Time
	EndDate       time.Time
	InitialIncome decimal.Decimal
	Transactions  []Transaction
}

// ParseAmount parses a user-entered monetary amount, rejecting anything
// that is not a non-negative number. Amounts are rounded to cents.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ErrBadAmount
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return d.Round(2), nil
}

// StartNewCycle creates a cycle beginning on the given day. The rollover
// is the balance carried from the previous cycle; it may be negative when
// the previous cycle was overspent, in which case it reduces the new
// cycle's starting pool. The returned cycle already contains its seed
// income transaction.
func StartNewCycle(income, rollover decimal.Decimal, start time.Time) (*Cycle, error) {
	if income.IsNegative() {
		return nil, ErrNegativeIncome
	}

	day := dateOnly(start)
	initial := income.Add(rollover).Round(2)

	c := &Cycle{
		ID:            uuid.NewString(),
		StartDate:     day,
		EndDate:       day.AddDate(0, 0, CycleDays),
		InitialIncome: initial,
	}
	c.Transactions = append(c.Transactions, Transaction{
		ID:          uuid.NewString(),
		Kind:        Income,
		Amount:      initial,
		Category:    DefaultCategory,
		Description: "Initial income",
		CreatedAt:   start,
	})
	return c, nil
}

// IsExpired reports whether the cycle has ended as of the given instant.
// Comparison is date-granular: the cycle is still active on its end date.
func (c *Cycle) IsExpired(asOf time.Time) bool {
	return dateOnly(asOf).After(c.EndDate)
}

// AddTransaction validates and appends a ledger entry. Expenses must be
// strictly positive; extra income may be any non-negative amount. A blank
// category falls back to DefaultCategory.
func (c *Cycle) AddTransaction(kind Kind, amount decimal.Decimal, category, description string) (Transaction, error) {
	if kind != Income && kind != Expense {
		return Transaction{}, ErrBadKind
	}
	if amount.IsNegative() {
		return Transaction{}, ErrNegativeAmount
	}
	if kind == Expense && amount.IsZero() {
		return Transaction{}, ErrZeroExpense
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultCategory
	}

	tx := Transaction{
		ID:          uuid.NewString(),
		Kind:        kind,
		Amount:      amount.Round(2),
		Category:    category,
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now(),
	}
	c.Transactions = append(c.Transactions, tx)
	return tx, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
