package ui

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"launchdash/internal"
	"launchdash/internal/errors"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html templates/*.md static/js/* static/css/*
var embeddedFiles embed.FS

// Server represents the web server for the dashboard page
type Server struct {
	router    *gin.Engine
	api       *App
	about     template.HTML
	title     string
	log       *internal.Logger
	templates *template.Template
}

// ServerConfig holds page server settings
type ServerConfig struct {
	API *App
	// GinMode is gin's debug/release/test mode.
	GinMode string
	// About is markdown shown under the heading. Empty uses the built-in text.
	About []byte
}

// NewServer creates a new web server instance
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.API == nil {
		return nil, errors.ConfigInvalid("API application is required")
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	about := cfg.About
	if len(about) == 0 {
		builtin, err := embeddedFiles.ReadFile("templates/about.md")
		if err != nil {
			return nil, errors.Wrap(err, "failed to read built-in about text")
		}
		about = builtin
	}

	s := &Server{
		router: gin.New(),
		api:    cfg.API,
		about:  RenderMarkdown(about),
		title:  cfg.API.Layout().Title,
		log:    internal.DefaultLogger.WithComponent("Server"),
	}

	if err := s.parseTemplates(); err != nil {
		return nil, err
	}
	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

func (s *Server) parseTemplates() error {
	templatesFS, err := fs.Sub(embeddedFiles, "templates")
	if err != nil {
		return errors.Wrap(err, "failed to create templates filesystem")
	}
	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, "*.html")
	if err != nil {
		return errors.Wrap(err, "failed to parse templates")
	}
	s.templates = tmpl
	s.router.SetHTMLTemplate(tmpl)
	return nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/healthz", s.handleHealth)

	// JSON API is served by the chi application.
	s.router.Any("/api/*path", gin.WrapH(s.api))
}

// Handler exposes the router for tests and custom servers.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves on addr until ctx is cancelled, then shuts down within timeout.
func (s *Server) Start(ctx context.Context, addr string, timeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Starting dashboard on http://%s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		s.log.Info("Shutting down dashboard server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	s.renderTemplate(c, "index.html", gin.H{
		"Title":  s.title,
		"About":  s.about,
		"Layout": s.api.Layout(),
		"Info":   s.api.Info(),
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"records": s.api.Info().Records,
		"dataset": s.api.Info().ID,
	})
}
