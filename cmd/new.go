package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tathagatalaskar/paycycle/internal/budget"
	"github.com/tathagatalaskar/paycycle/internal/cli"
)

var flagIncome string

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new 30-day budget cycle",
	Long: `Start a new budget cycle beginning today. If the current cycle has
expired, its remaining balance rolls into the new one.`,
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVar(&flagIncome, "income", "", "Income for the cycle (prompted when omitted)")
	rootCmd.AddCommand(newCmd)
}

func runNew(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	// Carry the balance forward only from an expired cycle. Starting a
	// new cycle mid-cycle abandons the old one without rollover.
	carry := decimal.Zero
	if cur := loadCurrent(env); cur != nil && cur.IsExpired(time.Now()) {
		carry = cur.Rollover()
	}

	var income decimal.Decimal
	if flagIncome != "" {
		if income, err = budget.ParseAmount(flagIncome); err != nil {
			return fmt.Errorf("--income: %w", err)
		}
	} else {
		if income, err = promptAmount("Total income for this cycle", "2000.00"); err != nil {
			return err
		}
	}

	c, err := budget.StartNewCycle(income, carry, time.Now())
	if err != nil {
		return err
	}
	if err := env.st.SaveCycle(c); err != nil {
		return fmt.Errorf("saving cycle: %w", err)
	}

	fmt.Println()
	if !carry.IsZero() {
		fmt.Printf("  Rolled over %s from the previous cycle.\n", cli.SignedMoney(carry))
	}
	fmt.Printf("  New cycle started: %s\n", cli.CycleRange(c.StartDate, c.EndDate))
	fmt.Printf("  Starting pool: %s\n\n", cli.Money(c.InitialIncome))
	return nil
}
