package services

import (
	"github.com/Wichuda1723/expense-tracker2/internal/core"
)

// Dashboard is the view-model the renderer consumes: the two per-type
// tables, the three totals and the chart series.
type Dashboard struct {
	Income  []core.Transaction
	Expense []core.Transaction

	TotalIncome  core.Money
	TotalExpense core.Money
	Balance      core.Money

	Series core.Series
}

// BuildDashboard recomputes the full view-model from the ledger. It is a
// pure function and is re-run from scratch every display cycle; nothing is
// maintained incrementally.
func BuildDashboard(l core.Ledger) Dashboard {
	income, expense := core.SplitByType(l)
	totalIncome := core.Total(income)
	totalExpense := core.Total(expense)
	return Dashboard{
		Income:       income,
		Expense:      expense,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      core.Balance(totalIncome, totalExpense),
		Series: core.BuildSeries(
			core.SumByCategory(income),
			core.SumByCategory(expense),
		),
	}
}

// HasRecords reports whether anything is displayable at all.
func (d Dashboard) HasRecords() bool {
	return len(d.Income) > 0 || len(d.Expense) > 0
}
