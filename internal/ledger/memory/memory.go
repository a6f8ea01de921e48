// Package memory holds the ledger in process memory only. Used by tests
// and as the throwaway development backend.
package memory

import (
	"context"
	"sync"

	"github.com/Wichuda1723/expense-tracker2/internal/core"
)

type Store struct {
	mu      sync.Mutex
	current core.Ledger
}

func New() *Store {
	return &Store{}
}

// Seed replaces the stored ledger. Test helper.
func (s *Store) Seed(l core.Ledger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = core.Ledger{Transactions: append([]core.Transaction(nil), l.Transactions...)}
}

func (s *Store) Load(_ context.Context) (core.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.Ledger{Transactions: append([]core.Transaction(nil), s.current.Transactions...)}, nil
}

func (s *Store) Append(_ context.Context, l core.Ledger, tx core.Transaction) (core.Ledger, error) {
	next := l.Append(tx)
	s.mu.Lock()
	s.current = next
	s.mu.Unlock()
	return next, nil
}
