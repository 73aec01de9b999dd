package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tathagatalaskar/paycycle/internal/budget"
	"github.com/tathagatalaskar/paycycle/internal/export"
)

var (
	flagFormat string
	flagOut    string
	flagCycle  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a cycle's ledger as csv, json, or yaml",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagFormat, "format", "f", "csv", "Output format: csv, json, or yaml")
	exportCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (default stdout)")
	exportCmd.Flags().StringVar(&flagCycle, "cycle", "", "Cycle id (default: current cycle)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(flagFormat)
	if err != nil {
		return err
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	var c *budget.Cycle
	if flagCycle != "" {
		if c, err = env.st.Cycle(flagCycle); err != nil {
			return err
		}
	} else {
		c = loadCurrent(env)
		if c == nil {
			return fmt.Errorf("no budget cycle yet — run 'paycycle new' to start one")
		}
	}

	out := os.Stdout
	if flagOut != "" {
		f, err := os.Create(flagOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagOut, err)
		}
		defer f.Close()
		out = f
	}

	return export.Write(out, c, format)
}
