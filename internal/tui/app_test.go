package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/tathagatalaskar/paycycle/internal/budget"
)

type memSaver struct {
	saves int
}

func (m *memSaver) SaveCycle(*budget.Cycle) error {
	m.saves++
	return nil
}

func newTestApp(t *testing.T) (App, *memSaver) {
	t.Helper()
	c, err := budget.StartNewCycle(decimal.RequireFromString("2000"), decimal.Zero, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	saver := &memSaver{}
	return NewApp(c, saver), saver
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{}
}

func TestApp_TabSwitching(t *testing.T) {
	app, _ := newTestApp(t)

	next, _ := app.Update(keyMsg("tab"))
	app = next.(App)
	if app.active != tabBreakdown {
		t.Errorf("active = %d, want breakdown", app.active)
	}

	next, _ = app.Update(keyMsg("tab"))
	app = next.(App)
	if app.active != tabOverview {
		t.Errorf("active = %d, want overview (wraps)", app.active)
	}
}

func TestApp_QuickAddExpense(t *testing.T) {
	app, saver := newTestApp(t)

	next, _ := app.Update(keyMsg("a"))
	app = next.(App)
	if !app.adding {
		t.Fatal("'a' did not open the add overlay")
	}

	app.amountIn.SetValue("55.50")
	next, _ = app.Update(keyMsg("enter"))
	app = next.(App)

	if app.adding {
		t.Errorf("overlay still open after save (inputErr=%q)", app.inputErr)
	}
	if saver.saves != 1 {
		t.Errorf("saves = %d, want 1", saver.saves)
	}
	if len(app.cycle.Transactions) != 2 {
		t.Errorf("len(Transactions) = %d, want 2", len(app.cycle.Transactions))
	}
}

func TestApp_QuickAddRejectsBadInput(t *testing.T) {
	app, saver := newTestApp(t)

	next, _ := app.Update(keyMsg("a"))
	app = next.(App)
	app.amountIn.SetValue("not-a-number")
	next, _ = app.Update(keyMsg("enter"))
	app = next.(App)

	if !app.adding {
		t.Error("overlay closed despite invalid input")
	}
	if app.inputErr == "" {
		t.Error("no input error shown")
	}
	if saver.saves != 0 {
		t.Errorf("saves = %d, want 0", saver.saves)
	}
}

func TestApp_ViewShowsRunway(t *testing.T) {
	app, _ := newTestApp(t)

	out := app.View()
	if !strings.Contains(out, "Runway") {
		t.Errorf("overview missing runway:\n%s", out)
	}
	if !strings.Contains(out, "∞") {
		t.Errorf("zero-expense cycle should show infinite runway:\n%s", out)
	}
}

func TestApp_BreakdownEmptyState(t *testing.T) {
	app, _ := newTestApp(t)
	app.active = tabBreakdown

	out := app.View()
	if !strings.Contains(out, "nothing to chart") {
		t.Errorf("breakdown empty state missing:\n%s", out)
	}
}
