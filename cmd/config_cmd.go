// Package cmd implements the paycycle CLI commands.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tathagatalaskar/paycycle/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value (currency, data_dir, categories)",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Database: %s\n", config.DBPath(cfg))
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Currency: %s\n", cfg.Display.Currency)
	fmt.Println()

	fmt.Println("  [Categories]")
	fmt.Printf("    Defaults: %s\n", strings.Join(cfg.Categories.Defaults, ", "))
	fmt.Println()

	fmt.Println("  Change settings with `paycycle config set <key> <value>`.")
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	switch key {
	case "currency":
		cfg.Display.Currency = value
	case "data_dir":
		cfg.General.DataDir = value
	case "categories":
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		cfg.Categories.Defaults = parts
	default:
		return fmt.Errorf("unknown config key %q (want currency, data_dir, or categories)", key)
	}

	if err := config.Save(cfg); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Printf("  Set %s = %s\n", key, value)
	}
	return nil
}
