package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tathagatalaskar/paycycle/internal/budget"
	"github.com/tathagatalaskar/paycycle/internal/cli"
)

var flagIncomeNote string

var incomeCmd = &cobra.Command{
	Use:   "income [amount]",
	Short: "Record extra income in the current cycle",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIncome,
}

func init() {
	incomeCmd.Flags().StringVarP(&flagIncomeNote, "note", "m", "", "Short description")
	rootCmd.AddCommand(incomeCmd)
}

func runIncome(_ *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	c, err := requireCurrent(env)
	if err != nil {
		return err
	}

	var amt decimal.Decimal
	if len(args) == 1 {
		if amt, err = budget.ParseAmount(args[0]); err != nil {
			return err
		}
	} else {
		if amt, err = promptAmount("Extra income amount", "100.00"); err != nil {
			return err
		}
	}

	tx, err := c.AddTransaction(budget.Income, amt, "", flagIncomeNote)
	if err != nil {
		return err
	}
	if err := env.st.SaveCycle(c); err != nil {
		return fmt.Errorf("saving: %w", err)
	}

	if !flagQuiet {
		fmt.Printf("  Added %s income. Balance: %s\n",
			cli.Money(tx.Amount), cli.Money(c.Balance()))
	}
	return nil
}
