// Package viewer serves recorded devtools entries over HTTP.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/phaseo/ai-stats-go/internal/logger"
	"github.com/phaseo/ai-stats-go/internal/storage"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the devtools API backed by a Store.
type Server struct {
	store  storage.Store
	log    logger.Logger
	router *gin.Engine
}

// New builds the router. mode is a gin mode ("debug", "release" or "test");
// empty selects release.
func New(store storage.Store, log logger.Logger, mode string) *Server {
	if log == nil {
		log = logger.NopLogger()
	}
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	s := &Server{store: store, log: log, router: gin.New()}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(gin.Recovery())
	s.router.Use(s.requestLogMiddleware())

	s.router.GET("/health", s.healthCheck)
	s.router.GET("/devtools-assets/*path", s.getAsset)

	api := s.router.Group("/api")
	{
		api.GET("/generations", s.listGenerations)
		api.GET("/generations/:id", s.getGeneration)
		api.DELETE("/generations", s.clearGenerations)
		api.GET("/stats", s.getStats)
		api.GET("/export", s.export)
		api.GET("/metadata", s.getMetadata)
	}
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.InfoObj("devtools viewer listening", "viewer", map[string]string{"addr": addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("viewer listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("viewer shutdown: %w", err)
	}
	s.log.InfoObj("devtools viewer stopped", "reason", ctx.Err().Error())
	return nil
}

func (s *Server) requestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.DebugObj("viewer request", "http_request", map[string]any{
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"elapsed_ms": time.Since(start).Milliseconds(),
		})
	}
}
