package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tathagatalaskar/paycycle/internal/budget"
	"github.com/tathagatalaskar/paycycle/internal/cli"
)

var flagAll bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Current cycle summary with burn rate and runway",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().BoolVarP(&flagAll, "all", "a", false, "List every transaction")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	c, err := requireCurrent(env)
	if err != nil {
		return err
	}

	now := time.Now()
	balance := c.Balance()
	runway, infinite := c.Runway(now)

	fmt.Println()
	fmt.Println(cli.RenderTitle("CYCLE SUMMARY"))
	fmt.Println()
	fmt.Printf("  %s  (%s)\n\n",
		cli.CycleRange(c.StartDate, c.EndDate),
		cli.DaysLeft(daysUntil(c.EndDate, now)))

	balanceStr := cli.Money(balance)
	if balance.IsNegative() {
		balanceStr = cli.Bad(balanceStr)
	} else {
		balanceStr = cli.Good(balanceStr)
	}

	rows := [][]string{
		{"Total Income", cli.Money(c.TotalByKind(budget.Income))},
		{"Total Expense", cli.Money(c.TotalByKind(budget.Expense))},
		{"Balance", balanceStr},
		cli.Separator,
		{"Days Elapsed", fmt.Sprintf("%d", c.DaysElapsed(now))},
		{"Burn Rate", fmt.Sprintf("%s/day", cli.Money(c.BurnRate(now)))},
		{"Runway", cli.Runway(runway, infinite)},
	}
	fmt.Print(cli.RenderTable(cli.Table{Rows: rows}))
	fmt.Println()

	if flagAll {
		txRows := make([][]string, 0, len(c.Transactions))
		for _, tx := range c.Transactions {
			amount := cli.Money(tx.Amount)
			if tx.Kind == budget.Expense {
				amount = "-" + amount
			}
			txRows = append(txRows, []string{
				cli.DateShort(tx.CreatedAt),
				string(tx.Kind),
				tx.Category,
				tx.Description,
				amount,
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Transactions",
			Headers: []string{"Date", "Kind", "Category", "Description", "Amount"},
			Rows:    txRows,
		}))
		fmt.Println()
	}
	return nil
}

// daysUntil counts whole days from now until the given date, negative
// once the date has passed. Today is taken from now's calendar date,
// normalized the same way cycle dates are, so the count is stable
// across timezones and midnights.
func daysUntil(date, now time.Time) int {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(date.Sub(today).Hours() / 24)
}
