// Package web exposes the portfolio over HTTP.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Options configure the server.
type Options struct {
	Addr            string
	StaticDir       string
	SubmitTimeout   time.Duration
	SweepInterval   time.Duration
	ShutdownTimeout time.Duration
	SecureCookies   bool
}

// Server wires the theme store and contact sessions to gin routes.
type Server struct {
	opts     Options
	theme    *theme.Store
	sessions *session.Manager
	engine   *gin.Engine
	logger   zerolog.Logger

	// done is closed when shutdown starts so event streams let go.
	done     chan struct{}
	stopOnce sync.Once
}

// New builds the router. gin's mode should be set by the caller beforehand.
func New(themes *theme.Store, sessions *session.Manager, opts Options) (*Server, error) {
	if themes == nil {
		return nil, errors.New("theme store is required")
	}
	if sessions == nil {
		return nil, errors.New("session manager is required")
	}
	if opts.SubmitTimeout <= 0 {
		opts.SubmitTimeout = 30 * time.Second
	}
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = time.Minute
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}

	s := &Server{
		opts:     opts,
		theme:    themes,
		sessions: sessions,
		logger:   logging.Component("web"),
		done:     make(chan struct{}),
	}
	s.engine = s.routes()
	return s, nil
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger, newIPHasher()))

	if s.opts.StaticDir != "" {
		r.Static("/static", s.opts.StaticDir)
		r.Static("/images", filepath.Join(s.opts.StaticDir, "images"))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	api.GET("/sections", s.listSections)
	api.GET("/sections/:id", s.getSection)
	api.GET("/projects", s.listProjects)
	api.GET("/skills", s.listSkills)

	api.GET("/theme", s.getTheme)
	api.PUT("/theme", s.setTheme)
	api.POST("/theme/toggle", s.toggleTheme)
	api.GET("/theme/events", s.themeEvents)

	api.GET("/contact", s.getContact)
	api.PATCH("/contact", s.updateContact)
	api.POST("/contact/submit", s.submitContact)
	api.POST("/contact/ack", s.acknowledgeContact)

	return r
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go s.sessions.Run(sweepCtx, s.opts.SweepInterval)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.opts.Addr).Msg("portfolio server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("portfolio server shutting down...")
		s.stopStreams()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
	}

	s.logger.Info().Msg("portfolio server shutdown complete")
	return nil
}

func (s *Server) stopStreams() {
	s.stopOnce.Do(func() { close(s.done) })
}
