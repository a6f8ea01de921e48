// Package storage keeps a SQLite reporting copy of recorded transactions.
// The flat ledger file stays the sole source of truth; the archive is
// written by the worker and only ever read for reporting.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Wichuda1723/expense-tracker2/internal/amqp"
	"github.com/Wichuda1723/expense-tracker2/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

// TypeTotal is a per-type cents total read back from the archive.
type TypeTotal struct {
	Type  core.TransactionType
	Total core.Money
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ArchiveTransaction inserts one recorded transaction. Redeliveries of the
// same ledger position are ignored so the consumer stays idempotent.
func (r *SQLiteRepository) ArchiveTransaction(ctx context.Context, msg *amqp.TransactionRecordedMessage) error {
	const q = `
		INSERT INTO archived_transactions
			(position, tx_date, tx_type, category, description, amount_cents)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (position) DO NOTHING`

	res, err := r.db.ExecContext(ctx, q,
		msg.Position, msg.Date, msg.Type, msg.Category, msg.Description, msg.AmountCents)
	if err != nil {
		return fmt.Errorf("insert archived transaction: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		slog.DebugContext(ctx, "Duplicate archive delivery ignored", "position", msg.Position)
		return nil
	}

	slog.InfoContext(ctx, "Transaction archived",
		"position", msg.Position,
		"type", msg.Type,
		"amount_cents", msg.AmountCents)
	return nil
}

// CountArchived returns the number of archived transactions.
func (r *SQLiteRepository) CountArchived(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM archived_transactions`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count archived transactions: %w", err)
	}
	return n, nil
}

// TotalsByType returns archived cents totals grouped by transaction type.
func (r *SQLiteRepository) TotalsByType(ctx context.Context) ([]TypeTotal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT tx_type, COALESCE(SUM(amount_cents), 0)
		FROM archived_transactions
		GROUP BY tx_type
		ORDER BY tx_type`)
	if err != nil {
		return nil, fmt.Errorf("query totals by type: %w", err)
	}
	defer rows.Close()

	var totals []TypeTotal
	for rows.Next() {
		var tt TypeTotal
		var typ string
		if err := rows.Scan(&typ, &tt.Total.Cents); err != nil {
			return nil, fmt.Errorf("scan type total: %w", err)
		}
		tt.Type = core.TransactionType(typ)
		totals = append(totals, tt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate type totals: %w", err)
	}
	return totals, nil
}

// SumsByCategory returns archived per-category sums for one type, in
// category order.
func (r *SQLiteRepository) SumsByCategory(ctx context.Context, t core.TransactionType) ([]core.CategoryAmount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT category, COALESCE(SUM(amount_cents), 0)
		FROM archived_transactions
		WHERE tx_type = ?
		GROUP BY category
		ORDER BY category`, t.String())
	if err != nil {
		return nil, fmt.Errorf("query category sums: %w", err)
	}
	defer rows.Close()

	var sums []core.CategoryAmount
	for rows.Next() {
		var ca core.CategoryAmount
		if err := rows.Scan(&ca.Name, &ca.Amount.Cents); err != nil {
			return nil, fmt.Errorf("scan category sum: %w", err)
		}
		sums = append(sums, ca)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category sums: %w", err)
	}
	return sums, nil
}
