package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Wichuda1723/expense-tracker2/internal/amqp"
	"github.com/Wichuda1723/expense-tracker2/internal/ledger/csvfile"
	"github.com/Wichuda1723/expense-tracker2/internal/ledger/memory"
)

// DefaultFactory builds stores from configuration.
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a backend factory.
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// CreateBackend implements Factory.CreateBackend.
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case CSVBackend:
		return f.createCSVBackend(config)
	case MemoryBackend:
		return f.createMemoryBackend(config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createCSVBackend(config Config) (*Result, error) {
	if config.LedgerFile == "" {
		return nil, fmt.Errorf("csv backend requires a ledger file path")
	}
	store := csvfile.New(config.LedgerFile)

	publisher, cleanup := f.connectPublisher(config)

	f.logger.Info("Initialized CSV backend",
		"ledger_file", config.LedgerFile,
		"amqp_enabled", publisher != nil)

	return &Result{Store: store, Publisher: publisher, Cleanup: cleanup}, nil
}

func (f *DefaultFactory) createMemoryBackend(config Config) (*Result, error) {
	publisher, cleanup := f.connectPublisher(config)

	f.logger.Info("Initialized memory backend", "amqp_enabled", publisher != nil)

	return &Result{Store: memory.New(), Publisher: publisher, Cleanup: cleanup}, nil
}

// connectPublisher opens the AMQP client when a URL is configured. Failing
// to connect is not fatal: the ledger keeps working without the archive feed.
func (f *DefaultFactory) connectPublisher(config Config) (*amqp.Client, CleanupFunc) {
	if config.AMQPURL == "" {
		return nil, nil
	}
	client, err := amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
	if err != nil {
		f.logger.Warn("Failed to initialize AMQP client, continuing without archive feed", "error", err)
		return nil, nil
	}
	f.logger.Info("Initialized AMQP client",
		"exchange", config.AMQPExchange,
		"queue", config.AMQPQueue)
	return client, client.Close
}
