package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/custodia-labs/mevzuat-cli/internal/logger"
)

// maxUploadBytes bounds the size of an uploaded document.
const maxUploadBytes = 32 << 20

// Server serves the HTTP API.
type Server struct {
	ports  *Ports
	engine *gin.Engine
}

// NewServer creates the API server and registers its routes.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	engine := gin.New()
	engine.MaxMultipartMemory = maxUploadBytes
	engine.Use(gin.Recovery(), requestID(), accessLog())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length", "Accept", headerRequestID},
		ExposeHeaders: []string{"Content-Length", headerRequestID},
		MaxAge:        12 * time.Hour,
	}))

	s := &Server{ports: ports, engine: engine}
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api/v1")
	{
		api.GET("/health", s.handleHealth)
		api.POST("/ask", s.handleAsk)
		api.POST("/search", s.handleSearch)
		api.POST("/extract", s.handleExtract)
		if s.ports.History != nil {
			api.GET("/history", s.handleHistory)
		}
	}
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	logger.Info("HTTP API listening on %s", addr)
	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
