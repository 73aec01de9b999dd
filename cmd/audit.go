package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tathagatalaskar/paycycle/internal/cli"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show the audit log of administrative changes",
	RunE:  runAudit,
}

var deleteTxCmd = &cobra.Command{
	Use:   "delete-tx <transaction-id>",
	Short: "Delete a transaction (administrative; recorded in the audit log)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteTx,
}

func init() {
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(deleteTxCmd)
}

func runAudit(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	entries, err := env.st.AuditEntries()
	if err != nil {
		return fmt.Errorf("loading audit log: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("\n  Audit log is empty.")
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.LoggedAt.Format("2006-01-02 15:04"),
			e.Action,
			e.Entity,
			e.EntityID,
			e.Detail,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Audit Log",
		Headers: []string{"When", "Action", "Entity", "ID", "Detail"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func runDeleteTx(_ *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	if err := env.st.DeleteTransaction(args[0]); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Printf("  Deleted transaction %s (audit log updated).\n", args[0])
	}
	return nil
}
