package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// DateLayout is the fixed calendar format used on the wire and in tables.
const DateLayout = "02/01/2006"

type (
	TransactionType string

	// Date is a calendar date without a time component. Valid is false for
	// rows whose stored date could not be parsed; such rows are kept, not
	// dropped.
	Date struct {
		time.Time
		Valid bool
	}

	Money struct {
		Cents int64
	}

	Transaction struct {
		Date        Date
		Type        TransactionType
		Category    string
		Description string
		Amount      Money
	}

	// Ledger is the full ordered sequence of transactions. Insertion order
	// is entry order and is preserved everywhere.
	Ledger struct {
		Transactions []Transaction
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrUnknownType      = errors.New("unknown transaction type")
)

// IsValid reports whether t is one of the two known transaction types.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

func (t TransactionType) String() string {
	return string(t)
}

// NewDate creates a valid Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), Valid: true}
}

// ParseDate parses s using DateLayout. On failure it returns the
// invalid-date sentinel rather than an error so callers keep the row.
func ParseDate(s string) Date {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}
	}
	return Date{Time: t, Valid: true}
}

// String formats the date in DateLayout, or empty for the invalid sentinel.
func (d Date) String() string {
	if !d.Valid {
		return ""
	}
	return d.Format(DateLayout)
}

// Validate checks a candidate transaction at entry time. Rows loaded from
// legacy files are never re-validated.
func (tx Transaction) Validate() error {
	if !tx.Type.IsValid() {
		return ErrUnknownType
	}
	if len(strings.TrimSpace(tx.Description)) == 0 {
		return ErrEmptyDescription
	}
	if tx.Amount.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Append returns a new Ledger with tx appended at the end. The receiver is
// not mutated; the ledger is passed explicitly between load, aggregate and
// persist calls.
func (l Ledger) Append(tx Transaction) Ledger {
	out := make([]Transaction, 0, len(l.Transactions)+1)
	out = append(out, l.Transactions...)
	out = append(out, tx)
	return Ledger{Transactions: out}
}

// Len returns the number of recorded transactions.
func (l Ledger) Len() int {
	return len(l.Transactions)
}

// IsEmpty reports whether the ledger holds no transactions.
func (l Ledger) IsEmpty() bool {
	return len(l.Transactions) == 0
}
