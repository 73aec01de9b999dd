package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tathagatalaskar/paycycle/internal/budget"
	"github.com/tathagatalaskar/paycycle/internal/cli"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past cycles and their rollover chain",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	cycles, err := env.st.ListCycles()
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}
	if len(cycles) == 0 {
		fmt.Println("\n  No cycles yet — run 'paycycle new' to start one.")
		return nil
	}

	now := time.Now()
	rows := make([][]string, 0, len(cycles))
	for i, c := range cycles {
		status := "expired"
		if i == 0 {
			if c.IsExpired(now) {
				status = "current (expired)"
			} else {
				status = "current"
			}
		}

		balance := cli.Money(c.Balance())
		if c.Balance().IsNegative() {
			balance = cli.Bad(balance)
		}

		rows = append(rows, []string{
			cli.CycleRange(c.StartDate, c.EndDate),
			status,
			cli.Money(c.InitialIncome),
			cli.Money(c.TotalByKind(budget.Expense)),
			balance,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Cycle History",
		Headers: []string{"Cycle", "Status", "Starting Pool", "Spent", "Balance"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
