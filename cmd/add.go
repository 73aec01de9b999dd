package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/tathagatalaskar/paycycle/internal/budget"
	"github.com/tathagatalaskar/paycycle/internal/cli"
)

var (
	flagCategory string
	flagNote     string
)

var addCmd = &cobra.Command{
	Use:   "add [amount]",
	Short: "Record an expense",
	Long: `Record an expense against the current cycle. With no arguments an
interactive form asks for amount, category, and description.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagCategory, "category", "c", "", "Expense category (default Misc)")
	addCmd.Flags().StringVarP(&flagNote, "note", "m", "", "Short description")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	c, err := requireCurrent(env)
	if err != nil {
		return err
	}

	amountStr := ""
	if len(args) == 1 {
		amountStr = args[0]
	}
	category := flagCategory
	note := flagNote

	if amountStr == "" {
		if amountStr, category, note, err = expenseForm(env.cfg.Categories.Defaults); err != nil {
			return err
		}
	}

	amount, err := budget.ParseAmount(amountStr)
	if err != nil {
		return err
	}

	tx, err := c.AddTransaction(budget.Expense, amount, category, note)
	if err != nil {
		return err
	}
	if err := env.st.SaveCycle(c); err != nil {
		return fmt.Errorf("saving: %w", err)
	}

	if !flagQuiet {
		fmt.Printf("  Spent %s on %s. Balance: %s\n",
			cli.Money(tx.Amount), tx.Category, cli.Money(c.Balance()))
	}
	return nil
}

// expenseForm collects an expense interactively. Validation failures
// re-prompt inside the form rather than aborting.
func expenseForm(categories []string) (amount, category, note string, err error) {
	if len(categories) == 0 {
		categories = []string{budget.DefaultCategory}
	}
	opts := huh.NewOptions(categories...)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Placeholder("42.50").
				Validate(func(s string) error {
					d, err := budget.ParseAmount(s)
					if err != nil {
						return err
					}
					if d.IsZero() {
						return budget.ErrZeroExpense
					}
					return nil
				}).
				Value(&amount),
			huh.NewSelect[string]().
				Title("Category").
				Options(opts...).
				Value(&category),
			huh.NewInput().
				Title("Description").
				Placeholder("optional").
				Value(&note),
		),
	)
	if err = form.Run(); err != nil {
		return "", "", "", err
	}
	return amount, category, note, nil
}
