package services

import (
	"testing"

	"github.com/Wichuda1723/expense-tracker2/internal/core"
)

func entry(t core.TransactionType, cat string, cents int64) core.Transaction {
	return core.Transaction{
		Date:        core.NewDate(2025, 6, 1),
		Type:        t,
		Category:    cat,
		Description: "x",
		Amount:      core.Money{Cents: cents},
	}
}

func TestBuildDashboard(t *testing.T) {
	l := core.Ledger{Transactions: []core.Transaction{
		entry(core.Income, "daily income", 100000),
		entry(core.Expense, "food", 30000),
		entry(core.Expense, "travel", 20000),
		entry(core.Income, "daily income", 50000),
	}}

	d := BuildDashboard(l)
	if len(d.Income) != 2 || len(d.Expense) != 2 {
		t.Fatalf("tables wrong: %d income, %d expense", len(d.Income), len(d.Expense))
	}
	if d.TotalIncome.Cents != 150000 || d.TotalExpense.Cents != 50000 {
		t.Fatalf("totals wrong: %+v", d)
	}
	if d.Balance.Cents != 100000 {
		t.Fatalf("balance wrong: %d", d.Balance.Cents)
	}
	if len(d.Series.Categories) != 3 {
		t.Fatalf("expected 3 chart categories, got %v", d.Series.Categories)
	}
}

func TestBuildDashboardNegativeBalance(t *testing.T) {
	l := core.Ledger{Transactions: []core.Transaction{
		entry(core.Income, "daily income", 100),
		entry(core.Expense, "food", 500),
	}}
	d := BuildDashboard(l)
	if d.Balance.Cents != -400 {
		t.Fatalf("expected negative balance, got %d", d.Balance.Cents)
	}
}

func TestBuildDashboardEmptyLedger(t *testing.T) {
	d := BuildDashboard(core.Ledger{})
	if d.HasRecords() {
		t.Fatalf("empty ledger must have no records")
	}
	if d.TotalIncome.Cents != 0 || d.TotalExpense.Cents != 0 || d.Balance.Cents != 0 {
		t.Fatalf("empty ledger totals must be zero: %+v", d)
	}
	if !d.Series.Empty() {
		t.Fatalf("empty ledger must produce an empty chart series")
	}
}

func TestBuildDashboardDeterministic(t *testing.T) {
	l := core.Ledger{Transactions: []core.Transaction{
		entry(core.Expense, "food", 1),
		entry(core.Expense, "travel", 2),
		entry(core.Income, "other income", 3),
	}}
	a := BuildDashboard(l)
	b := BuildDashboard(l)
	for i := range a.Series.Categories {
		if a.Series.Categories[i] != b.Series.Categories[i] {
			t.Fatalf("rebuild changed category order: %v vs %v", a.Series.Categories, b.Series.Categories)
		}
	}
}
