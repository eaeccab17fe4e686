package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mkamau/pesapal-callback/internal/pkg/logger"
	"github.com/mkamau/pesapal-callback/internal/pkg/models"
)

// GracefulServer wraps an Echo server with TLS wiring and graceful shutdown
type GracefulServer struct {
	echo   *echo.Echo
	log    *logger.ZapLogger
	config models.ServerConfig
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, log *logger.ZapLogger, config models.ServerConfig) *GracefulServer {
	return &GracefulServer{
		echo:   e,
		log:    log,
		config: config,
	}
}

// Start starts the server and blocks until a shutdown signal arrives. TLS
// is enabled when both certificate and key files are configured and exist.
func (s *GracefulServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	go func() {
		var err error
		if s.tlsConfigured() {
			s.log.Info("Starting HTTPS server", logger.String("address", addr))
			err = s.echo.StartTLS(addr, s.config.TLSCertFile, s.config.TLSKeyFile)
		} else {
			s.log.Warn("Starting HTTP server without TLS", logger.String("address", addr))
			err = s.echo.Start(addr)
		}
		if err != nil && err != http.ErrServerClosed {
			s.log.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	s.log.Info("Received shutdown signal", logger.String("signal", sig.String()))

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server
func (s *GracefulServer) Shutdown() error {
	timeout := time.Duration(s.config.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.log.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	s.log.Info("Server shutdown completed")
	return nil
}

func (s *GracefulServer) tlsConfigured() bool {
	if s.config.TLSCertFile == "" || s.config.TLSKeyFile == "" {
		return false
	}
	if _, err := os.Stat(s.config.TLSCertFile); err != nil {
		return false
	}
	if _, err := os.Stat(s.config.TLSKeyFile); err != nil {
		return false
	}
	return true
}
