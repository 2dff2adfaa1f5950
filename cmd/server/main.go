package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/katana82/f1gn"
	"github.com/katana82/f1gn/internal/logging"
)

func main() {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg := f1gn.LoadConfig()

	provider, err := logging.NewGologgerProvider(logging.GologgerConfig{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		log.Fatalf("configure logging: %v", err)
	}
	logger := provider.GetLogger("f1gn")

	module, err := f1gn.New(cfg, f1gn.WithLoggerProvider(provider))
	if err != nil {
		logger.Fatal("bootstrap failed", "error", err)
	}

	go func() {
		if err := module.Start(); err != nil {
			logger.Error("server stopped", "error", err)
		}
	}()
	logger.Info("f1 news site running", "addr", cfg.Address)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := module.Shutdown(ctx); err != nil {
		logger.Error("shutdown incomplete", "error", err)
	}
}
