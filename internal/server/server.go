package server

import (
	"context"
	"net/http"
	"time"

	"github.com/Manzo48/profileMockAPI/internal/api"
	"github.com/Manzo48/profileMockAPI/internal/config"
	"go.uber.org/zap"
)

// Server wraps the mock API handler in an http.Server with graceful shutdown.
type Server struct {
	logger     *zap.SugaredLogger
	handler    http.Handler
	httpServer *http.Server
}

func New(cfg *config.Config, logger *zap.SugaredLogger) *Server {
	handler := RequestLogMiddleware(logger)(api.New(cfg, logger))

	logger.Infow("mock API server initialized",
		"port", cfg.Port,
		"classifier_latency", cfg.Latency.Classifier,
		"enrichment_latency", cfg.Latency.Enrichment,
	)

	return &Server{
		logger:  logger,
		handler: handler,
	}
}

// Start runs the HTTP server and blocks until it stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.handler,
	}

	s.logger.Infof("serving mock API at %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the server, waiting up to 5 seconds for in-flight requests.
// Requests sleeping out a long artificial delay past the deadline are cut off.
func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.logger.Info("shutting down mock API server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Errorf("graceful shutdown failed: %v", err)
	} else {
		s.logger.Info("shutdown complete")
	}
}
