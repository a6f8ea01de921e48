package http

import (
	"testing"

	"github.com/Wichuda1723/expense-tracker2/internal/core"
	"github.com/Wichuda1723/expense-tracker2/internal/services"
)

func TestBuildDashboardResponse(t *testing.T) {
	l := core.Ledger{Transactions: []core.Transaction{
		{Date: core.NewDate(2025, 1, 15), Type: core.Income, Category: "daily income", Description: "wage", Amount: core.Money{Cents: 150000}},
		{Date: core.NewDate(2025, 1, 16), Type: core.Expense, Category: "food", Description: "lunch", Amount: core.Money{Cents: 8550}},
	}}

	resp := buildDashboardResponse(services.BuildDashboard(l))

	if resp.Income.Total != "1,500.00 ฿" {
		t.Fatalf("income total wrong: %q", resp.Income.Total)
	}
	if resp.Expense.Total != "85.50 ฿" {
		t.Fatalf("expense total wrong: %q", resp.Expense.Total)
	}
	if resp.Balance != "1,414.50 ฿" {
		t.Fatalf("balance wrong: %q", resp.Balance)
	}
	if !resp.Chart.SufficientData || resp.Chart.BarWidth != core.BarWidth {
		t.Fatalf("chart header wrong: %+v", resp.Chart)
	}
	if len(resp.Chart.Bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(resp.Chart.Bars))
	}

	first := resp.Chart.Bars[0]
	if first.Category != "daily income" || first.Income != 1500.0 || first.Expense != 0.0 {
		t.Fatalf("first bar wrong: %+v", first)
	}
	if first.IncomeLabel == "" || first.ExpenseLabel != "" {
		t.Fatalf("labels only belong on non-zero bars: %+v", first)
	}
}

func TestBuildDashboardResponseEmpty(t *testing.T) {
	resp := buildDashboardResponse(services.BuildDashboard(core.Ledger{}))

	if resp.Chart.SufficientData {
		t.Fatalf("empty ledger cannot have chart data")
	}
	if len(resp.Income.Rows) != 0 || len(resp.Expense.Rows) != 0 {
		t.Fatalf("tables must be empty: %+v", resp)
	}
	if resp.Balance != "0.00 ฿" {
		t.Fatalf("balance wrong: %q", resp.Balance)
	}
}

func TestBuildTableRows(t *testing.T) {
	rows := []core.Transaction{
		{Date: core.Date{}, Type: core.Expense, Category: "travel", Description: "bus", Amount: core.Money{Cents: 1200}},
	}
	table := buildTable(rows, core.Money{Cents: 1200})

	if len(table.Rows) != 1 {
		t.Fatalf("expected one row")
	}
	if table.Rows[0].Date != "" {
		t.Fatalf("sentinel date must render empty, got %q", table.Rows[0].Date)
	}
	if table.Rows[0].Amount != "12.00 ฿" {
		t.Fatalf("amount wrong: %q", table.Rows[0].Amount)
	}
}
