package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Wichuda1723/expense-tracker2/internal/amqp"
	"github.com/Wichuda1723/expense-tracker2/internal/core"
	"github.com/Wichuda1723/expense-tracker2/internal/ledger/memory"
)

type stubPublisher struct {
	published []*amqp.TransactionRecordedMessage
	err       error
}

func (p *stubPublisher) PublishTransactionRecorded(_ context.Context, msg *amqp.TransactionRecordedMessage) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, msg)
	return nil
}

func validTx() core.Transaction {
	return core.Transaction{
		Date:        core.NewDate(2025, 5, 5),
		Type:        core.Expense,
		Category:    "food",
		Description: "dinner",
		Amount:      core.Money{Cents: 25000},
	}
}

func TestRecordAppendsAndPersists(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc, err := NewLedgerService(ctx, store, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	pos, err := svc.Record(ctx, validTx())
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if pos != 0 {
		t.Fatalf("expected position 0, got %d", pos)
	}
	if svc.Current().Len() != 1 {
		t.Fatalf("expected 1 record in memory")
	}

	persisted, _ := store.Load(ctx)
	if persisted.Len() != 1 {
		t.Fatalf("expected 1 record persisted")
	}
}

func TestRecordRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	svc, err := NewLedgerService(ctx, memory.New(), nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	bad := validTx()
	bad.Description = "  "
	if _, err := svc.Record(ctx, bad); !errors.Is(err, core.ErrEmptyDescription) {
		t.Fatalf("expected ErrEmptyDescription, got %v", err)
	}
	if svc.Current().Len() != 0 {
		t.Fatalf("rejected record must not enter the ledger")
	}
}

func TestRecordPublishes(t *testing.T) {
	ctx := context.Background()
	pub := &stubPublisher{}
	svc, err := NewLedgerService(ctx, memory.New(), pub)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if _, err := svc.Record(ctx, validTx()); err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(pub.published) != 1 {
		t.Fatalf("expected 1 published message, got %d", len(pub.published))
	}
	if pub.published[0].Position != 0 || pub.published[0].Category != "food" {
		t.Fatalf("message wrong: %+v", pub.published[0])
	}
}

func TestRecordPublishFailureDoesNotFailAppend(t *testing.T) {
	ctx := context.Background()
	pub := &stubPublisher{err: errors.New("broker down")}
	svc, err := NewLedgerService(ctx, memory.New(), pub)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if _, err := svc.Record(ctx, validTx()); err != nil {
		t.Fatalf("publish failure must not fail the append: %v", err)
	}
	if svc.Current().Len() != 1 {
		t.Fatalf("record must be kept despite publish failure")
	}
}

func TestRecordSequencePreservesOrder(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc, err := NewLedgerService(ctx, store, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	const n = 10
	for i := 0; i < n; i++ {
		tx := validTx()
		tx.Amount = core.Money{Cents: int64(i + 1)}
		if _, err := svc.Record(ctx, tx); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	// Reload from the store as a fresh process would
	reloaded, err := NewLedgerService(ctx, store, nil)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	l := reloaded.Current()
	if l.Len() != n {
		t.Fatalf("expected %d records after reload, got %d", n, l.Len())
	}
	for i, tx := range l.Transactions {
		if tx.Amount.Cents != int64(i+1) {
			t.Fatalf("record %d out of order: %+v", i, tx)
		}
	}
}
