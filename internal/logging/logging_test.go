package logging

import (
	"context"
	"testing"
)

func TestModuleLoggerWithoutProvider(t *testing.T) {
	logger := ModuleLogger(nil, "")
	if logger == nil {
		t.Fatal("expected no-op logger, got nil")
	}

	// Chained calls must not panic when logging is disabled.
	logger.Info("store.ready", "dir", "uploads")
	logger.WithContext(context.Background()).Debug("noop")
}

func TestGologgerProviderCreatesLogger(t *testing.T) {
	provider, err := NewGologgerProvider(GologgerConfig{
		Level:  "debug",
		Format: "console",
	})
	if err != nil {
		t.Fatalf("NewGologgerProvider returned error: %v", err)
	}

	logger := provider.GetLogger(contentModule)
	if logger == nil {
		t.Fatal("expected logger, got nil")
	}
	logger.Debug("adapter.initialised")
}

func TestGologgerProviderRejectsUnknownFormat(t *testing.T) {
	if _, err := NewGologgerProvider(GologgerConfig{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
