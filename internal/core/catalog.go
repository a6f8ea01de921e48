package core

// Fixed category taxonomy per transaction type. The first entry of each list
// is the default the selection resets to when the type changes. Records
// persisted under labels no longer listed here are still displayed as-is.
var (
	incomeCategories  = []string{"daily income", "other income"}
	expenseCategories = []string{"food", "travel", "other"}
)

// Options returns the ordered category labels allowed for t. Unknown types
// get no options.
func Options(t TransactionType) []string {
	switch t {
	case Income:
		return append([]string(nil), incomeCategories...)
	case Expense:
		return append([]string(nil), expenseCategories...)
	default:
		return nil
	}
}

// DefaultCategory returns the designated default for t, the first entry of
// its option list.
func DefaultCategory(t TransactionType) string {
	opts := Options(t)
	if len(opts) == 0 {
		return ""
	}
	return opts[0]
}

// IsListedCategory reports whether category is currently offered for t.
// Entry forms use this; loaded records are never re-checked.
func IsListedCategory(t TransactionType, category string) bool {
	for _, c := range Options(t) {
		if c == category {
			return true
		}
	}
	return false
}
