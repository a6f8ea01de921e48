package core

// BarWidth is the fixed width of one bar in category-axis units. Paired
// bars sit half a width either side of the shared category tick.
const BarWidth = 0.35

// Series is the aligned chart data a renderer consumes: one shared category
// axis with an income and an expense value per category.
type Series struct {
	Categories []string
	Income     []Money
	Expense    []Money
}

// Bar is the rendered geometry for one category tick: paired bar center
// positions plus value labels. Labels are empty for zero-valued bars.
type Bar struct {
	Category     string
	Center       float64
	IncomeX      float64
	ExpenseX     float64
	Income       Money
	Expense      Money
	IncomeLabel  string
	ExpenseLabel string
}

// BuildSeries merges per-category income and expense sums into a shared
// axis. The axis is the union of both inputs ordered by first appearance,
// each category exactly once; a category missing on one side gets a zero
// value there rather than falling off the axis. Two empty inputs yield an
// empty series, which renderers must treat as "insufficient data".
func BuildSeries(incomeByCategory, expenseByCategory []CategoryAmount) Series {
	index := make(map[string]int)
	var s Series
	add := func(name string) int {
		i, ok := index[name]
		if !ok {
			i = len(s.Categories)
			index[name] = i
			s.Categories = append(s.Categories, name)
			s.Income = append(s.Income, Money{})
			s.Expense = append(s.Expense, Money{})
		}
		return i
	}
	for _, ca := range incomeByCategory {
		s.Income[add(ca.Name)] = ca.Amount
	}
	for _, ca := range expenseByCategory {
		s.Expense[add(ca.Name)] = ca.Amount
	}
	return s
}

// Empty reports whether the series has no categories to plot.
func (s Series) Empty() bool {
	return len(s.Categories) == 0
}

// Bars lays out the paired bars around each category tick.
func (s Series) Bars() []Bar {
	bars := make([]Bar, len(s.Categories))
	for i, cat := range s.Categories {
		center := float64(i)
		b := Bar{
			Category: cat,
			Center:   center,
			IncomeX:  center - BarWidth/2,
			ExpenseX: center + BarWidth/2,
			Income:   s.Income[i],
			Expense:  s.Expense[i],
		}
		if b.Income.Cents > 0 {
			b.IncomeLabel = b.Income.GroupedRounded()
		}
		if b.Expense.Cents > 0 {
			b.ExpenseLabel = b.Expense.GroupedRounded()
		}
		bars[i] = b
	}
	return bars
}
