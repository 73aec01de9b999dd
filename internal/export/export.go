// Package export serializes a cycle's ledger to portable formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tathagatalaskar/paycycle/internal/budget"
)

// Format is a supported export encoding.
type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case CSV, JSON, YAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown export format %q (want csv, json, or yaml)", s)
	}
}

// cycleDoc is the serialized shape shared by JSON and YAML output.
// Amounts are emitted as fixed two-decimal strings.
type cycleDoc struct {
	ID            string  `json:"id" yaml:"id"`
	StartDate     string  `json:"start_date" yaml:"start_date"`
	EndDate       string  `json:"end_date" yaml:"end_date"`
	InitialIncome string  `json:"initial_income" yaml:"initial_income"`
	Balance       string  `json:"balance" yaml:"balance"`
	Transactions  []txDoc `json:"transactions" yaml:"transactions"`
}

type txDoc struct {
	ID          string `json:"id" yaml:"id"`
	Kind        string `json:"kind" yaml:"kind"`
	Amount      string `json:"amount" yaml:"amount"`
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedAt   string `json:"created_at" yaml:"created_at"`
}

func docFor(c *budget.Cycle) cycleDoc {
	doc := cycleDoc{
		ID:            c.ID,
		StartDate:     c.StartDate.Format("2006-01-02"),
		EndDate:       c.EndDate.Format("2006-01-02"),
		InitialIncome: c.InitialIncome.StringFixed(2),
		Balance:       c.Balance().StringFixed(2),
		Transactions:  make([]txDoc, 0, len(c.Transactions)),
	}
	for _, t := range c.Transactions {
		doc.Transactions = append(doc.Transactions, txDoc{
			ID:          t.ID,
			Kind:        string(t.Kind),
			Amount:      t.Amount.StringFixed(2),
			Category:    t.Category,
			Description: t.Description,
			CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return doc
}

// Write encodes the cycle to w in the given format.
func Write(w io.Writer, c *budget.Cycle, f Format) error {
	switch f {
	case CSV:
		return writeCSV(w, c)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(docFor(c))
	case YAML:
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		return enc.Encode(docFor(c))
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

func writeCSV(w io.Writer, c *budget.Cycle) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "kind", "amount", "category", "description", "created_at"}); err != nil {
		return err
	}
	for _, t := range c.Transactions {
		rec := []string{
			t.ID,
			string(t.Kind),
			t.Amount.StringFixed(2),
			t.Category,
			t.Description,
			t.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
