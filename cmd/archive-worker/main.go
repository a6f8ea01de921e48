package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Wichuda1723/expense-tracker2/internal/amqp"
	"github.com/Wichuda1723/expense-tracker2/internal/config"
	applog "github.com/Wichuda1723/expense-tracker2/internal/log"
	"github.com/Wichuda1723/expense-tracker2/internal/storage"
	"github.com/Wichuda1723/expense-tracker2/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	// Setup structured logging
	logger := applog.New(applog.Config{
		Component: applog.ComponentWorker,
	})
	applog.SetDefault(logger)

	logger.Info("Starting archive worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the archive worker")
		os.Exit(1)
	}

	repo, err := storage.NewSQLiteRepository(cfg.ArchiveDBPath)
	if err != nil {
		logger.Error("Failed to initialize archive repository", "error", err, "path", cfg.ArchiveDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())
		cancel()
	}()

	archiveWorker := worker.NewArchiveWorker(repo, amqpClient, 5*time.Minute)

	logger.Info("Consuming recorded transactions",
		"exchange", cfg.AMQPExchange,
		"queue", cfg.AMQPQueue,
		"db_path", cfg.ArchiveDBPath)

	if err := archiveWorker.Run(ctx); err != nil {
		logger.Error("Archive worker failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Archive worker stopped gracefully")
}
