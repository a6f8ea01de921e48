// Package csvfile persists the ledger as a delimited text file, the one
// wire-level contract of the system: a header row of five fixed field names
// followed by one row per transaction.
//
// Files are written as UTF-8 with a byte-order mark. Reads are BOM-aware
// and fall back to the legacy Thai single-byte encoding (Windows-874) when
// the content is not valid UTF-8, so files produced by older tooling still
// load.
package csvfile

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/Wichuda1723/expense-tracker2/internal/core"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// header is the fixed field order: date, type, category, description, amount.
var header = []string{"date", "type", "category", "description", "amount"}

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted ledger. Missing or empty files yield an empty
// ledger; a file that cannot be decoded even under the legacy encoding
// degrades to an empty ledger rather than failing startup. Rows with
// unparseable dates are retained with the invalid-date sentinel.
func (s *Store) Load(ctx context.Context) (core.Ledger, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return core.Ledger{}, nil
		}
		return core.Ledger{}, fmt.Errorf("read ledger file: %w", err)
	}
	if len(data) == 0 {
		return core.Ledger{}, nil
	}

	text, legacy := decode(data)
	rows, err := parseRows(text)
	if err != nil {
		slog.WarnContext(ctx, "Ledger file undecodable, starting empty",
			"path", s.path, "legacy_encoding", legacy, "error", err)
		return core.Ledger{}, nil
	}
	if legacy {
		slog.InfoContext(ctx, "Ledger file read under legacy encoding", "path", s.path)
	}

	l := core.Ledger{Transactions: make([]core.Transaction, 0, len(rows))}
	for _, row := range rows {
		l.Transactions = append(l.Transactions, fromRow(row))
	}
	return l, nil
}

// Append returns the ledger with tx appended and synchronously overwrites
// the backing file with the full serialized ledger. The rewrite goes
// through a temp file and rename so a failed write never truncates the
// previous contents; any failure propagates to the caller.
func (s *Store) Append(ctx context.Context, l core.Ledger, tx core.Transaction) (core.Ledger, error) {
	next := l.Append(tx)
	if err := s.write(next); err != nil {
		return core.Ledger{}, fmt.Errorf("persist ledger: %w", err)
	}
	slog.InfoContext(ctx, "Ledger persisted",
		"path", s.path, "records", next.Len(),
		"type", tx.Type.String(), "category", tx.Category, "amount_cents", tx.Amount.Cents)
	return next, nil
}

func (s *Store) write(l core.Ledger) error {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, tx := range l.Transactions {
		row := []string{
			tx.Date.String(),
			tx.Type.String(),
			tx.Category,
			tx.Description,
			tx.Amount.Decimal(),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// decode returns the file contents as text, reporting whether the legacy
// Windows-874 fallback was used. The fallback maps every byte, so decode
// itself cannot fail; structurally broken files surface in parseRows.
func decode(data []byte) (text string, legacy bool) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), false
	}
	out, err := charmap.Windows874.NewDecoder().Bytes(data)
	if err != nil {
		return string(data), true
	}
	return string(out), true
}

func parseRows(text string) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	// Skip the header row when present
	if len(all[0]) > 0 && strings.EqualFold(strings.TrimSpace(all[0][0]), header[0]) {
		all = all[1:]
	}
	return all, nil
}

// fromRow builds a transaction from one stored row, padding short rows so
// malformed files load as partial records instead of aborting the rest.
func fromRow(row []string) core.Transaction {
	get := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	return core.Transaction{
		Date:        core.ParseDate(get(0)),
		Type:        core.TransactionType(get(1)),
		Category:    get(2),
		Description: get(3),
		Amount:      core.ParseStoredAmount(get(4)),
	}
}
