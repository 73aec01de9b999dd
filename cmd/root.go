package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tathagatalaskar/paycycle/internal/budget"
	"github.com/tathagatalaskar/paycycle/internal/cli"
	"github.com/tathagatalaskar/paycycle/internal/config"
	"github.com/tathagatalaskar/paycycle/internal/store"
)

var (
	flagDB    string
	flagQuiet bool
	flagYes   bool
)

var rootCmd = &cobra.Command{
	Use:   "paycycle",
	Short: "Pay-cycle budget tracker",
	Long:  "Track a rolling 30-day budget: expenses, income, burn rate, and runway.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database file (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Roll over without prompting, reusing the previous cycle's income")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if flagQuiet {
			log.SetLevel(log.ErrorLevel)
		}
	}
}

// appEnv bundles the loaded config and open store shared by commands.
type appEnv struct {
	cfg config.Config
	st  *store.Store
}

func (e *appEnv) close() {
	if e.st != nil {
		_ = e.st.Close()
	}
}

// openEnv loads config and opens the database.
func openEnv() (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		log.Warn("config unreadable, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}
	if cfg.Display.Currency != "" {
		cli.Currency = cfg.Display.Currency
	}

	dbPath := flagDB
	if dbPath == "" {
		dbPath = config.DBPath(cfg)
	}

	st, reset, err := store.OpenOrReset(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening store at %s: %w", dbPath, err)
	}
	if reset {
		log.Warn("database was unreadable, starting fresh", "backup", dbPath+".corrupt")
	}
	return &appEnv{cfg: cfg, st: st}, nil
}

// loadCurrent returns the current cycle, treating a corrupted store as
// "no current cycle" so the first-time setup path can take over.
func loadCurrent(env *appEnv) *budget.Cycle {
	c, err := env.st.CurrentCycle()
	if err != nil {
		log.Warn("stored cycle unreadable, starting fresh", "err", err)
		return nil
	}
	return c
}

// requireCurrent loads the current cycle and walks the expiry gate: an
// expired cycle gets its closing summary printed and, on confirmation,
// its balance rolled into a freshly started cycle.
func requireCurrent(env *appEnv) (*budget.Cycle, error) {
	c := loadCurrent(env)
	if c == nil {
		return nil, fmt.Errorf("no budget cycle yet — run 'paycycle new' to start one")
	}
	if !c.IsExpired(time.Now()) {
		return c, nil
	}
	return rolloverExpired(env, c)
}

// rolloverExpired closes out an expired cycle and starts the next one,
// carrying the remaining balance (or debt) forward.
func rolloverExpired(env *appEnv, c *budget.Cycle) (*budget.Cycle, error) {
	carry := c.Rollover()

	if !flagQuiet {
		fmt.Println()
		fmt.Println(cli.RenderTitle("CYCLE ENDED"))
		fmt.Println()
		fmt.Printf("  Cycle %s is over.\n", cli.CycleRange(c.StartDate, c.EndDate))
		if carry.IsNegative() {
			fmt.Printf("  You overspent by %s — the debt carries into the next cycle.\n", cli.Bad(cli.Money(carry.Neg())))
		} else {
			fmt.Printf("  You saved %s this cycle!\n", cli.Good(cli.Money(carry)))
		}
		fmt.Println()
	}

	var income decimal.Decimal
	if flagYes {
		// Non-interactive path: reuse the previous cycle's starting
		// pool as the new income so scripts never block on a prompt.
		income = c.InitialIncome
		if !flagQuiet {
			fmt.Printf("  Reusing previous cycle income of %s.\n", cli.Money(income))
		}
	} else {
		var start bool
		confirm := huh.NewConfirm().
			Title("Start the next cycle?").
			Description(fmt.Sprintf("Rollover of %s will be added to the new income.", cli.Money(carry))).
			Value(&start)
		if err := confirm.Run(); err != nil {
			return nil, err
		}
		if !start {
			return nil, fmt.Errorf("cycle %s has ended — start a new one with 'paycycle new'", cli.DateShort(c.EndDate))
		}

		var err error
		if income, err = promptAmount("Income for the new cycle", "2000.00"); err != nil {
			return nil, err
		}
	}

	next, err := budget.StartNewCycle(income, carry, time.Now())
	if err != nil {
		return nil, err
	}
	if err := env.st.SaveCycle(next); err != nil {
		return nil, fmt.Errorf("saving new cycle: %w", err)
	}

	if !flagQuiet {
		fmt.Printf("  New cycle started, ends %s. Starting pool: %s\n\n",
			cli.DateShort(next.EndDate), cli.Money(next.InitialIncome))
	}
	return next, nil
}

// promptAmount asks for a monetary amount, re-prompting until it parses
// as a non-negative number.
func promptAmount(title, placeholder string) (decimal.Decimal, error) {
	var raw string
	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Validate(func(s string) error {
			_, err := budget.ParseAmount(s)
			return err
		}).
		Value(&raw)
	if err := input.Run(); err != nil {
		return decimal.Zero, err
	}
	return budget.ParseAmount(raw)
}
