// Package f1gn is a minimal news-posting site: a flat-file store of
// Markdown posts behind a handful of public routes, plus one read-only
// page over a pre-existing race results database.
package f1gn

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/katana82/f1gn/internal/content"
	"github.com/katana82/f1gn/internal/logging"
	"github.com/katana82/f1gn/internal/markdown"
	"github.com/katana82/f1gn/internal/racing"
	"github.com/katana82/f1gn/internal/web"
)

// Post exports the article record for consumers of the package.
type Post = content.Post

// PostSummary exports the listing projection.
type PostSummary = content.Summary

// RaceResult exports the reshaped classification row.
type RaceResult = racing.Result

// Logger exports the logging contract.
type Logger = logging.Logger

// LoggerProvider exports the named-logger resolver contract.
type LoggerProvider = logging.Provider

// Module is the top level runtime façade wiring the store, the renderer,
// the racing read path, and the web server.
type Module struct {
	cfg    Config
	store  *content.Store
	races  *racing.Repository
	server *web.Server
	db     *bun.DB
	ownsDB bool
	logger logging.Logger
}

type options struct {
	provider logging.Provider
	db       *bun.DB
}

// Option customizes module construction.
type Option func(*options)

// WithLoggerProvider injects a logging provider; without one every module
// logs through the no-op logger.
func WithLoggerProvider(provider logging.Provider) Option {
	return func(o *options) { o.provider = provider }
}

// WithDB injects an externally managed database for the racing read path,
// bypassing Config.RacingDSN. The caller keeps ownership.
func WithDB(db *bun.DB) Option {
	return func(o *options) { o.db = db }
}

// New wires a module. The upload directory is created here; that is the
// only startup side effect.
func New(cfg Config, opts ...Option) (*Module, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	store := content.NewStore(cfg.UploadDir, logging.ContentLogger(o.provider))
	if err := store.EnsureReady(); err != nil {
		return nil, err
	}

	db := o.db
	ownsDB := false
	if db == nil && cfg.RacingDSN != "" {
		sqlDB, err := sql.Open("sqlite3", cfg.RacingDSN)
		if err != nil {
			return nil, fmt.Errorf("f1gn: open racing database: %w", err)
		}
		db = bun.NewDB(sqlDB, sqlitedialect.New())
		ownsDB = true
	}

	var races *racing.Repository
	if db != nil {
		races = racing.NewRepository(db, logging.RacingLogger(o.provider))
	}

	server, err := web.NewServer(
		web.Config{PublicDir: cfg.PublicDir, RaceID: cfg.RaceID},
		store,
		markdown.NewRenderer(),
		races,
		logging.WebLogger(o.provider),
	)
	if err != nil {
		return nil, err
	}

	return &Module{
		cfg:    cfg,
		store:  store,
		races:  races,
		server: server,
		db:     db,
		ownsDB: ownsDB,
		logger: logging.RootLogger(o.provider),
	}, nil
}

// Posts exposes the flat-file content store.
func (m *Module) Posts() *content.Store {
	return m.store
}

// Racing exposes the results repository; nil when no database is wired.
func (m *Module) Racing() *racing.Repository {
	return m.races
}

// Server exposes the web server, primarily for tests.
func (m *Module) Server() *web.Server {
	return m.server
}

// Start binds the HTTP server and blocks until shutdown.
func (m *Module) Start() error {
	m.logger.Info("module.start", "addr", m.cfg.Address, "uploads", m.cfg.UploadDir)
	return m.server.Listen(m.cfg.Address)
}

// Shutdown drains the server and closes module-owned resources.
func (m *Module) Shutdown(ctx context.Context) error {
	err := m.server.Shutdown(ctx)
	if m.ownsDB && m.db != nil {
		if closeErr := m.db.Close(); err == nil {
			err = closeErr
		}
	}
	return err
}
