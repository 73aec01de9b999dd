package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tathagatalaskar/paycycle/internal/budget"
	"github.com/tathagatalaskar/paycycle/internal/cli"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive menu loop",
	Long:  "Run paycycle as an interactive session: add entries and view summaries until you exit.",
	RunE:  runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

type shellAction int

const (
	actionExpense shellAction = iota
	actionIncome
	actionSummary
	actionBreakdown
	actionExit
)

func runShell(cmd *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	c := loadCurrent(env)
	switch {
	case c == nil:
		// First run: start a cycle right here instead of bouncing the
		// user to a separate command.
		income, err := promptAmount("No cycle yet. Total income to start one", "2000.00")
		if err != nil {
			return err
		}
		if c, err = startAndSave(env, income); err != nil {
			return err
		}
	case c.IsExpired(time.Now()):
		if c, err = rolloverExpired(env, c); err != nil {
			return err
		}
	}

	for {
		fmt.Printf("\n  Cycle ends %s — balance %s\n\n",
			cli.DateShort(c.EndDate), cli.Money(c.Balance()))

		var choice shellAction
		menu := huh.NewSelect[shellAction]().
			Title("Pay-Cycle Finance Tracker").
			Options(
				huh.NewOption("Add expense", actionExpense),
				huh.NewOption("Add extra income", actionIncome),
				huh.NewOption("View summary", actionSummary),
				huh.NewOption("Category breakdown", actionBreakdown),
				huh.NewOption("Exit", actionExit),
			).
			Value(&choice)
		if err := menu.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		switch choice {
		case actionExpense:
			if err := shellAddExpense(env, c); err != nil {
				fmt.Printf("  %v\n", err)
			}
		case actionIncome:
			if err := shellAddIncome(env, c); err != nil {
				fmt.Printf("  %v\n", err)
			}
		case actionSummary:
			if err := runSummary(cmd, nil); err != nil {
				fmt.Printf("  %v\n", err)
			}
		case actionBreakdown:
			chart := cli.BreakdownChart(c.CategoryBreakdown(), 30)
			if chart == "" {
				fmt.Println("  No expenses recorded yet.")
			} else {
				fmt.Println()
				fmt.Print(chart)
			}
		case actionExit:
			fmt.Println("  Goodbye!")
			return nil
		}
	}
}

func shellAddExpense(env *appEnv, c *budget.Cycle) error {
	amountStr, category, note, err := expenseForm(env.cfg.Categories.Defaults)
	if err != nil {
		return err
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
	fmt.Printf("  Spent %s on %s.\n", cli.Money(tx.Amount), tx.Category)
	return nil
}

func shellAddIncome(env *appEnv, c *budget.Cycle) error {
	amount, err := promptAmount("Extra income amount", "100.00")
	if err != nil {
		return err
	}
	tx, err := c.AddTransaction(budget.Income, amount, "", "")
	if err != nil {
		return err
	}
	if err := env.st.SaveCycle(c); err != nil {
		return fmt.Errorf("saving: %w", err)
	}
	fmt.Printf("  Added %s income.\n", cli.Money(tx.Amount))
	return nil
}

func startAndSave(env *appEnv, income decimal.Decimal) (*budget.Cycle, error) {
	c, err := budget.StartNewCycle(income, decimal.Zero, time.Now())
	if err != nil {
		return nil, err
	}
	if err := env.st.SaveCycle(c); err != nil {
		return nil, fmt.Errorf("saving cycle: %w", err)
	}
	fmt.Printf("  New cycle started, ends %s.\n", cli.DateShort(c.EndDate))
	return c, nil
}
