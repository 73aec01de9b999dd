package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tathagatalaskar/paycycle/internal/cli"
)

var flagBreakdownJSON bool

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Expense breakdown by category",
	RunE:  runBreakdown,
}

func init() {
	breakdownCmd.Flags().BoolVar(&flagBreakdownJSON, "json", false, "Emit machine-readable JSON")
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	c, err := requireCurrent(env)
	if err != nil {
		return err
	}

	byCategory := c.CategoryBreakdown()

	if flagBreakdownJSON {
		out := make(map[string]string, len(byCategory))
		for cat, amt := range byCategory {
			out[cat] = amt.StringFixed(2)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDING BY CATEGORY"))
	fmt.Println()

	chart := cli.BreakdownChart(byCategory, 30)
	if chart == "" {
		fmt.Println("  No expenses recorded yet — nothing to chart.")
		fmt.Println()
		return nil
	}
	fmt.Print(chart)
	fmt.Println()
	return nil
}
