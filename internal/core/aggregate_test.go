package core

import "testing"

func tx(t TransactionType, cat string, cents int64) Transaction {
	return Transaction{
		Date:        NewDate(2025, 6, 1),
		Type:        t,
		Category:    cat,
		Description: "x",
		Amount:      Money{Cents: cents},
	}
}

func TestSplitByType(t *testing.T) {
	l := Ledger{Transactions: []Transaction{
		tx(Income, "daily income", 100),
		tx(Expense, "food", 50),
		tx(Income, "other income", 200),
		tx("transfer", "weird", 999), // unknown type: neither partition
	}}

	income, expense := SplitByType(l)
	if len(income) != 2 || len(expense) != 1 {
		t.Fatalf("expected 2 income / 1 expense, got %d/%d", len(income), len(expense))
	}
	if income[0].Amount.Cents != 100 || income[1].Amount.Cents != 200 {
		t.Fatalf("income order not preserved: %+v", income)
	}
	// Unknown types stay out of both totals
	if Total(income).Cents+Total(expense).Cents != 350 {
		t.Fatalf("unknown type leaked into totals")
	}
}

func TestTotal(t *testing.T) {
	if got := Total(nil); got.Cents != 0 {
		t.Fatalf("empty total should be 0, got %d", got.Cents)
	}
	records := []Transaction{tx(Income, "a", 1000), tx(Income, "b", 550)}
	if got := Total(records); got.Cents != 1550 {
		t.Fatalf("expected 1550, got %d", got.Cents)
	}
}

func TestBalance(t *testing.T) {
	cases := []struct {
		income, expense, want int64
	}{
		{1000, 400, 600},
		{400, 1000, -600}, // expenses exceed income
		{0, 0, 0},
	}
	for i, tc := range cases {
		got := Balance(Money{Cents: tc.income}, Money{Cents: tc.expense})
		if got.Cents != tc.want {
			t.Fatalf("case %d: expected %d, got %d", i, tc.want, got.Cents)
		}
	}
}

func TestSumByCategory(t *testing.T) {
	records := []Transaction{
		tx(Expense, "food", 100),
		tx(Expense, "travel", 200),
		tx(Expense, "food", 50),
	}
	sums := SumByCategory(records)
	if len(sums) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(sums))
	}
	// First-appearance order
	if sums[0].Name != "food" || sums[0].Amount.Cents != 150 {
		t.Fatalf("food group wrong: %+v", sums[0])
	}
	if sums[1].Name != "travel" || sums[1].Amount.Cents != 200 {
		t.Fatalf("travel group wrong: %+v", sums[1])
	}
}

func TestSumByCategoryEmptyInputs(t *testing.T) {
	if sums := SumByCategory(nil); len(sums) != 0 {
		t.Fatalf("expected no groups for no records, got %+v", sums)
	}
}

func TestSumByCategoryEmptyLabelIsOwnGroup(t *testing.T) {
	// Rows from malformed files may have an empty category
	records := []Transaction{
		{Type: Expense, Amount: Money{Cents: 10}},
		{Type: Expense, Amount: Money{Cents: 15}},
	}
	sums := SumByCategory(records)
	if len(sums) != 1 || sums[0].Name != "" || sums[0].Amount.Cents != 25 {
		t.Fatalf("empty category should aggregate as its own group: %+v", sums)
	}
}
