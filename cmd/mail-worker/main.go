package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"proapp/internal/config"
	"proapp/internal/logger"
	"proapp/internal/queue"
	"proapp/internal/wire"
)

// jobBuffer bounds how far the kafka reader runs ahead of the SMTP workers.
const jobBuffer = 64

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zl, err := logger.Init(logger.FromAppConfig(cfg))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	worker, cleanup, err := wire.InitializeMailWorker(cfg, zl)
	if err != nil {
		zl.Fatal("failed to initialize mail worker", zap.Error(err))
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	jobs := make(chan queue.EmailJob, jobBuffer)
	go func() {
		if err := worker.Consumer.Listen(ctx, jobs); err != nil {
			zl.Error("consumer stopped", zap.Error(err))
			stop()
		}
	}()

	zl.Info("mail worker started", zap.String("topic", cfg.Kafka.EmailTopic), zap.Int("workers", cfg.Email.Workers))
	worker.Dispatcher.Run(ctx, jobs)
	zl.Info("mail worker stopped")
}
