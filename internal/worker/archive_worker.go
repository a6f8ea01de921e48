// Package worker mirrors recorded transactions into the SQLite archive.
// The ledger file stays the source of truth; the archive is a queryable
// copy fed by the message queue.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Wichuda1723/expense-tracker2/internal/amqp"
	"github.com/Wichuda1723/expense-tracker2/internal/storage"
)

// Consumer is the message-queue side the worker drains.
type Consumer interface {
	ConsumeTransactionRecorded(ctx context.Context, handler func(*amqp.TransactionRecordedMessage) error) error
}

// ArchiveWorker consumes recorded-transaction messages and writes them to
// the archive repository.
type ArchiveWorker struct {
	repo           *storage.SQLiteRepository
	consumer       Consumer
	reportInterval time.Duration
}

func NewArchiveWorker(repo *storage.SQLiteRepository, consumer Consumer, reportInterval time.Duration) *ArchiveWorker {
	if reportInterval <= 0 {
		reportInterval = 5 * time.Minute
	}
	return &ArchiveWorker{
		repo:           repo,
		consumer:       consumer,
		reportInterval: reportInterval,
	}
}

// HandleMessage archives a single recorded transaction. Redeliveries are
// absorbed by the repository, so returning nil acks them.
func (w *ArchiveWorker) HandleMessage(ctx context.Context, msg *amqp.TransactionRecordedMessage) error {
	slog.InfoContext(ctx, "Archiving transaction",
		"position", msg.Position,
		"type", msg.Type,
		"category", msg.Category,
		"amount_cents", msg.AmountCents)

	if err := w.repo.ArchiveTransaction(ctx, msg); err != nil {
		return fmt.Errorf("archive transaction %d: %w", msg.Position, err)
	}
	return nil
}

// Run consumes until the context is cancelled. A second goroutine reports
// archive depth periodically so operators can spot a stalled queue.
func (w *ArchiveWorker) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := w.consumer.ConsumeTransactionRecorded(ctx, func(msg *amqp.TransactionRecordedMessage) error {
			return w.HandleMessage(ctx, msg)
		})
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("consume recorded transactions: %w", err)
		}
		return ctx.Err()
	})

	g.Go(func() error {
		ticker := time.NewTicker(w.reportInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				n, err := w.repo.CountArchived(ctx)
				if err != nil {
					slog.ErrorContext(ctx, "Archive depth check failed", "error", err)
					continue
				}
				slog.InfoContext(ctx, "Archive status", "archived", n)
			}
		}
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
