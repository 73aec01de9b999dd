// Package tui provides the interactive Bubble Tea dashboard for paycycle.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/tathagatalaskar/paycycle/internal/budget"
	"github.com/tathagatalaskar/paycycle/internal/cli"
)

// Saver persists the cycle after a quick-add. The store satisfies it;
// tests can stub it.
type Saver interface {
	SaveCycle(*budget.Cycle) error
}

type tab int

const (
	tabOverview tab = iota
	tabBreakdown
	tabCount
)

var tabNames = [tabCount]string{"Overview", "Breakdown"}

// App is the root Bubble Tea model.
type App struct {
	cycle *budget.Cycle
	saver Saver

	width  int
	height int
	active tab

	// Quick-add expense overlay
	adding   bool
	amountIn textinput.Model
	inputErr string
	status   string
}

// NewApp builds the dashboard around an already-loaded cycle.
func NewApp(c *budget.Cycle, saver Saver) App {
	ti := textinput.New()
	ti.Placeholder = "amount, e.g. 42.50"
	ti.CharLimit = 16
	ti.Width = 24

	return App{
		cycle:    c,
		saver:    saver,
		amountIn: ti,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if a.adding {
			return a.updateAdding(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		case "tab", "right", "l":
			a.active = (a.active + 1) % tabCount
		case "shift+tab", "left", "h":
			a.active = (a.active + tabCount - 1) % tabCount
		case "a":
			a.adding = true
			a.inputErr = ""
			a.status = ""
			a.amountIn.SetValue("")
			return a, a.amountIn.Focus()
		}
	}
	return a, nil
}

func (a App) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.adding = false
		a.amountIn.Blur()
		return a, nil
	case "enter":
		amount, err := budget.ParseAmount(a.amountIn.Value())
		if err == nil && amount.IsZero() {
			err = budget.ErrZeroExpense
		}
		if err != nil {
			a.inputErr = err.Error()
			return a, nil
		}
		tx, err := a.cycle.AddTransaction(budget.Expense, amount, "", "")
		if err != nil {
			a.inputErr = err.Error()
			return a, nil
		}
		if err := a.saver.SaveCycle(a.cycle); err != nil {
			a.inputErr = fmt.Sprintf("save failed: %v", err)
			return a, nil
		}
		a.adding = false
		a.amountIn.Blur()
		a.status = fmt.Sprintf("Spent %s on %s", cli.Money(tx.Amount), tx.Category)
		return a, nil
	}

	var cmd tea.Cmd
	a.amountIn, cmd = a.amountIn.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(a.renderTabBar())
	b.WriteString("\n\n")

	switch a.active {
	case tabOverview:
		b.WriteString(a.renderOverview())
	case tabBreakdown:
		b.WriteString(a.renderBreakdown())
	}

	if a.adding {
		b.WriteString("\n  Add expense: ")
		b.WriteString(a.amountIn.View())
		if a.inputErr != "" {
			b.WriteString("\n  ")
			b.WriteString(errStyle.Render(a.inputErr))
		}
		b.WriteString("\n  ")
		b.WriteString(mutedStyle.Render("enter to save, esc to cancel"))
	} else {
		if a.status != "" {
			b.WriteString("\n  ")
			b.WriteString(okStyle.Render(a.status))
		}
		b.WriteString("\n\n  ")
		b.WriteString(mutedStyle.Render("a add expense · tab switch view · q quit"))
	}
	b.WriteString("\n")
	return b.String()
}

var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.ColorText).
			Background(cli.ColorAccent).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(cli.ColorTextMuted).
				Padding(0, 2)

	labelStyle = lipgloss.NewStyle().Foreground(cli.ColorTextMuted).Width(14)
	mutedStyle = lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
	errStyle   = lipgloss.NewStyle().Foreground(cli.ColorRed)
	okStyle    = lipgloss.NewStyle().Foreground(cli.ColorGreen)
)

func (a App) renderTabBar() string {
	parts := make([]string, 0, tabCount)
	for i, name := range tabNames {
		if tab(i) == a.active {
			parts = append(parts, activeTabStyle.Render(name))
		} else {
			parts = append(parts, inactiveTabStyle.Render(name))
		}
	}
	return "  " + lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a App) renderOverview() string {
	now := time.Now()
	c := a.cycle

	balance := c.Balance()
	balanceStr := cli.Money(balance)
	if balance.IsNegative() {
		balanceStr = cli.Bad(balanceStr)
	} else {
		balanceStr = cli.Good(balanceStr)
	}
	runway, infinite := c.Runway(now)

	var b strings.Builder
	row := func(label, value string) {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Cycle", cli.CycleRange(c.StartDate, c.EndDate))
	b.WriteString("  ")
	b.WriteString(cli.ProgressBar(c.DaysElapsed(now), budget.CycleDays, 30))
	b.WriteString("\n\n")

	row("Balance", balanceStr)
	row("Income", cli.Money(c.TotalByKind(budget.Income)))
	row("Spent", cli.Money(c.TotalByKind(budget.Expense)))
	row("Burn rate", cli.Money(c.BurnRate(now))+"/day")
	row("Runway", cli.Runway(runway, infinite))

	daily := c.DailyExpenses(now)
	if len(daily) > 1 {
		b.WriteString("\n")
		row("Daily spend", cli.Sparkline(daily))
	}
	return b.String()
}

func (a App) renderBreakdown() string {
	byCategory := a.cycle.CategoryBreakdown()
	if len(byCategory) == 0 {
		return "  No expenses recorded yet — nothing to chart.\n"
	}

	width := 30
	if a.width > 70 {
		width = a.width - 40
	}

	total := decimal.Zero
	for _, amt := range byCategory {
		total = total.Add(amt)
	}

	var b strings.Builder
	b.WriteString(cli.BreakdownChart(byCategory, width))
	b.WriteString("\n  ")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Total spent: %s", cli.Money(total))))
	b.WriteString("\n")
	return b.String()
}
