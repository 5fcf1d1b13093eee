package app

import (
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Manzo48/profileMockAPI/internal/config"
	"github.com/Manzo48/profileMockAPI/internal/log"
	"github.com/Manzo48/profileMockAPI/internal/server"
)

// Options carry the command-line overrides applied on top of the config file.
type Options struct {
	ConfigFilePath string
	Port           int // 0 means "use the config file value"
}

// Run starts the mock API server and blocks until SIGINT or SIGTERM.
func Run(opts Options) error {
	logger, err := log.New()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load(opts.ConfigFilePath)
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if opts.Port != 0 {
		cfg.Port = opts.Port
	}

	srv := server.New(cfg, logger)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("received shutdown signal")
	srv.Shutdown()
	return nil
}
