package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Wichuda1723/expense-tracker2/internal/amqp"
	"github.com/Wichuda1723/expense-tracker2/internal/core"
	"github.com/Wichuda1723/expense-tracker2/internal/ledger"
)

// RecordPublisher publishes recorded transactions for the archive worker.
type RecordPublisher interface {
	PublishTransactionRecorded(ctx context.Context, msg *amqp.TransactionRecordedMessage) error
}

// LedgerService owns the in-memory ledger for the process lifetime. It is
// loaded once at startup and mutated by exactly one operation: append a
// transaction, then synchronously re-persist through the store.
type LedgerService struct {
	store     ledger.Store
	publisher RecordPublisher

	mu      sync.Mutex
	current core.Ledger
}

// NewLedgerService loads the persisted ledger and returns the service.
// publisher may be nil; archiving is optional.
func NewLedgerService(ctx context.Context, store ledger.Store, publisher RecordPublisher) (*LedgerService, error) {
	l, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	slog.InfoContext(ctx, "Ledger loaded", "records", l.Len())
	return &LedgerService{
		store:     store,
		publisher: publisher,
		current:   l,
	}, nil
}

// Current returns a copy of the ledger as of the last append.
func (s *LedgerService) Current() core.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.Ledger{Transactions: append([]core.Transaction(nil), s.current.Transactions...)}
}

// Record validates tx, appends it, and persists the whole ledger before
// returning. A persist failure is fatal for the submission and leaves the
// in-memory ledger untouched; a publish failure is logged and swallowed,
// the record is already durable in the file.
func (s *LedgerService) Record(ctx context.Context, tx core.Transaction) (position int, err error) {
	if err := tx.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.store.Append(ctx, s.current, tx)
	if err != nil {
		return 0, fmt.Errorf("record transaction: %w", err)
	}
	s.current = next
	position = next.Len() - 1

	if s.publisher != nil {
		msg := amqp.NewTransactionRecordedMessage(position, tx)
		if err := s.publisher.PublishTransactionRecorded(ctx, msg); err != nil {
			// Don't fail the request - the transaction is saved locally
			slog.ErrorContext(ctx, "Failed to publish recorded transaction",
				"position", position, "error", err)
		}
	}

	return position, nil
}
