package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

func TestMoney_AlwaysTwoDecimals(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1400", "$1400.00"},
		{"0", "$0.00"},
		{"12.3", "$12.30"},
		{"12.345", "$12.35"},
		{"-200.5", "-$200.50"},
	}
	for _, tc := range cases {
		if got := Money(decimal.RequireFromString(tc.in)); got != tc.want {
			t.Errorf("Money(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSignedMoney(t *testing.T) {
	if got := SignedMoney(decimal.RequireFromString("5")); got != "+$5.00" {
		t.Errorf("SignedMoney(5) = %q, want +$5.00", got)
	}
	if got := SignedMoney(decimal.RequireFromString("-5")); got != "-$5.00" {
		t.Errorf("SignedMoney(-5) = %q, want -$5.00", got)
	}
}

func TestRunway(t *testing.T) {
	if got := Runway(decimal.Zero, true); got != "∞" {
		t.Errorf("infinite runway = %q, want ∞", got)
	}
	if got := Runway(decimal.RequireFromString("23.33"), false); got != "23.3 days" {
		t.Errorf("Runway = %q, want 23.3 days", got)
	}
	if got := Runway(decimal.RequireFromString("-3.5"), false); got != "-3.5 days" {
		t.Errorf("negative runway = %q, want -3.5 days", got)
	}
}

func TestDaysLeft(t *testing.T) {
	cases := map[int]string{
		-1: "ended",
		0:  "last day",
		1:  "1 day left",
		12: "12 days left",
	}
	for in, want := range cases {
		if got := DaysLeft(in); got != want {
			t.Errorf("DaysLeft(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestCycleRange(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)
	if got := CycleRange(start, end); got != "2026-03-01 → 2026-03-31" {
		t.Errorf("CycleRange = %q", got)
	}
}

func TestBreakdownChart(t *testing.T) {
	byCat := map[string]decimal.Decimal{
		"Rent": decimal.RequireFromString("500"),
		"Food": decimal.RequireFromString("100"),
	}

	out := BreakdownChart(byCat, 30)
	if out == "" {
		t.Fatal("chart is empty with expenses present")
	}
	// Largest category renders first.
	rentIdx := strings.Index(out, "Rent")
	foodIdx := strings.Index(out, "Food")
	if rentIdx == -1 || foodIdx == -1 || rentIdx > foodIdx {
		t.Errorf("categories missing or out of order:\n%s", out)
	}
	if !strings.Contains(out, "$500.00") {
		t.Errorf("chart lacks amount:\n%s", out)
	}
}

func TestBreakdownChart_AlignsMultibyteLabels(t *testing.T) {
	byCat := map[string]decimal.Decimal{
		"Rent": decimal.RequireFromString("500"),
		"Café": decimal.RequireFromString("300"),
		"食費":   decimal.RequireFromString("100"),
	}

	out := BreakdownChart(byCat, 30)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3:\n%s", len(lines), out)
	}

	// The bar column must start at the same display width on every line.
	want := -1
	for _, line := range lines {
		idx := strings.Index(line, "█")
		if idx < 0 {
			t.Fatalf("line without bar: %q", line)
		}
		w := lipgloss.Width(line[:idx])
		if want == -1 {
			want = w
		} else if w != want {
			t.Errorf("bar starts at width %d, want %d: %q", w, want, line)
		}
	}
}

func TestBreakdownChart_EmptyInput(t *testing.T) {
	if out := BreakdownChart(nil, 30); out != "" {
		t.Errorf("chart for no expenses = %q, want empty", out)
	}
}

func TestSparkline_Length(t *testing.T) {
	values := []decimal.Decimal{
		decimal.Zero,
		decimal.RequireFromString("10"),
		decimal.RequireFromString("5"),
	}
	out := Sparkline(values)
	if n := len([]rune(out)); n != 3 {
		t.Errorf("sparkline rune length = %d, want 3", n)
	}
}
