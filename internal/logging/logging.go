package logging

import "context"

// Logger is the minimal structured logging contract shared by every service.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// Provider resolves named child loggers for module namespaces.
type Provider interface {
	GetLogger(name string) Logger
}

const (
	rootModule     = "f1gn"
	contentModule  = "f1gn.content"
	racingModule   = "f1gn.racing"
	webModule      = "f1gn.web"
	markdownModule = "f1gn.markdown"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied.
func ModuleLogger(provider Provider, module string) Logger {
	if module == "" {
		module = rootModule
	}
	if provider != nil {
		if logger := provider.GetLogger(module); logger != nil {
			return logger
		}
	}
	return NoOp()
}

// RootLogger returns the top level application logger.
func RootLogger(provider Provider) Logger {
	return ModuleLogger(provider, rootModule)
}

// ContentLogger returns the logger namespace reserved for the post store.
func ContentLogger(provider Provider) Logger {
	return ModuleLogger(provider, contentModule)
}

// RacingLogger returns the logger namespace reserved for the race results read path.
func RacingLogger(provider Provider) Logger {
	return ModuleLogger(provider, racingModule)
}

// WebLogger returns the logger namespace reserved for the HTTP surface.
func WebLogger(provider Provider) Logger {
	return ModuleLogger(provider, webModule)
}

// MarkdownLogger returns the logger namespace reserved for rendering.
func MarkdownLogger(provider Provider) Logger {
	return ModuleLogger(provider, markdownModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ Logger = noopLogger{}

func (noopLogger) Trace(string, ...any)               {}
func (noopLogger) Debug(string, ...any)               {}
func (noopLogger) Info(string, ...any)                {}
func (noopLogger) Warn(string, ...any)                {}
func (noopLogger) Error(string, ...any)               {}
func (noopLogger) Fatal(string, ...any)               {}
func (l noopLogger) WithContext(context.Context) Logger { return l }
