package core

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount Money
}

// SplitByType partitions the ledger into income and expense records,
// preserving relative order. Records whose type is neither Income nor
// Expense belong to neither partition and therefore count toward no total.
func SplitByType(l Ledger) (income, expense []Transaction) {
	for _, tx := range l.Transactions {
		switch tx.Type {
		case Income:
			income = append(income, tx)
		case Expense:
			expense = append(expense, tx)
		}
	}
	return income, expense
}

// Total sums the amounts of the given records. An empty set totals zero.
func Total(records []Transaction) Money {
	var sum Money
	for _, tx := range records {
		sum = sum.Add(tx.Amount)
	}
	return sum
}

// Balance is income minus expense; the result is signed and may be negative.
func Balance(totalIncome, totalExpense Money) Money {
	return totalIncome.Sub(totalExpense)
}

// SumByCategory groups records by category and sums amounts per group,
// ordered by first appearance. Categories with no matching records are
// absent, never present with a zero value. Rows loaded from malformed files
// may carry an empty category; that is simply its own group.
func SumByCategory(records []Transaction) []CategoryAmount {
	index := make(map[string]int)
	var sums []CategoryAmount
	for _, tx := range records {
		i, ok := index[tx.Category]
		if !ok {
			i = len(sums)
			index[tx.Category] = i
			sums = append(sums, CategoryAmount{Name: tx.Category})
		}
		sums[i].Amount = sums[i].Amount.Add(tx.Amount)
	}
	return sums
}
