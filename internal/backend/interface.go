package backend

import (
	"context"

	"github.com/Wichuda1723/expense-tracker2/internal/amqp"
	"github.com/Wichuda1723/expense-tracker2/internal/ledger"
)

// CleanupFunc releases resources owned by a backend.
type CleanupFunc func() error

// Result bundles the ledger store with the optional event publisher and
// the cleanup for whatever connections the backend opened.
type Result struct {
	Store     ledger.Store
	Publisher *amqp.Client
	Cleanup   CleanupFunc
}

// Factory creates ledger backends based on configuration.
type Factory interface {
	CreateBackend(ctx context.Context, config Config) (*Result, error)
}

// Config holds configuration for backend creation.
type Config struct {
	Type Type

	// CSV backend
	LedgerFile string

	// Optional event publishing
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

// Type selects the ledger persistence backend.
type Type string

const (
	CSVBackend    Type = "csv"
	MemoryBackend Type = "memory"
)

func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case CSVBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
