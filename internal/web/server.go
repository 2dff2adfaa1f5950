// Package web exposes the public HTTP surface: the homepage, the submit
// form, individual post pages, and the race results table.
package web

import (
	"context"
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/katana82/f1gn/internal/content"
	"github.com/katana82/f1gn/internal/logging"
	"github.com/katana82/f1gn/internal/markdown"
	"github.com/katana82/f1gn/internal/racing"
)

//go:embed views/*.html
var viewsFS embed.FS

// Config carries the handful of knobs the web surface needs.
type Config struct {
	// PublicDir is served as static assets at the site root. Empty disables
	// static serving.
	PublicDir string
	// RaceID is the fixed race whose classification /race-results shows.
	RaceID int64
}

// Server glues the content store, the Markdown renderer, and the racing
// read path behind the five public routes. Requests are stateless and
// independent; the only shared state lives in the filesystem and the
// database.
type Server struct {
	app      *fiber.App
	cfg      Config
	posts    *content.Store
	renderer *markdown.Renderer
	races    *racing.Repository
	logger   logging.Logger
}

// NewServer wires the fiber application. A nil racing repository leaves the
// route registered; the query error then surfaces through the framework
// error handler, matching the original site's unhandled-fault behavior.
func NewServer(cfg Config, posts *content.Store, renderer *markdown.Renderer, races *racing.Repository, logger logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.NoOp()
	}

	views, err := fs.Sub(viewsFS, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(views), ".html")

	app := fiber.New(fiber.Config{
		AppName:               "f1gn",
		Views:                 engine,
		DisableStartupMessage: true,
	})
	app.Use(fiberrecover.New())
	app.Use(fiberlogger.New())

	s := &Server{
		app:      app,
		cfg:      cfg,
		posts:    posts,
		renderer: renderer,
		races:    races,
		logger:   logger,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.app.Get("/", s.handleHome)
	s.app.Get("/submit", s.handleSubmitForm)
	s.app.Post("/submit", s.handleSubmit)
	s.app.Get("/post/:slug", s.handlePost)
	s.app.Get("/race-results", s.handleRaceResults)

	if s.cfg.PublicDir != "" {
		s.app.Static("/", s.cfg.PublicDir)
	}
}

// App exposes the underlying fiber application for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen binds the server to addr and blocks until shutdown.
func (s *Server) Listen(addr string) error {
	s.logger.Info("server.listening", "addr", addr)
	return s.app.Listen(addr)
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
