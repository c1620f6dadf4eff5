// Package httpserver holds the echo setup shared by the API and worker processes.
package httpserver

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"proptrust/config"
	"proptrust/internal/delivery/middleware"
	"proptrust/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// NewEcho returns an echo instance with the configured timeouts and the common middleware
// chain: panic recovery, request ids, then access logging.
func NewEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Recover first so panics anywhere below become 500s.
	e.Use(echomiddleware.Recover())
	// Request ids before the logger so access logs carry them.
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

// Options names a server and where it listens.
type Options struct {
	Name string
	Port int
	// H2C serves cleartext HTTP/2 alongside HTTP/1.1.
	H2C bool
}

// Server runs an echo instance until the fx lifecycle stops it.
type Server struct {
	opts   Options
	logger *slog.Logger
	echo   *echo.Echo
	idle   http2.Server
}

// New wraps e and registers its graceful shutdown on lc.
func New(lc fx.Lifecycle, e *echo.Echo, logger *slog.Logger, opts Options) *Server {
	s := &Server{
		opts:   opts,
		logger: logger.With(slog.String("server", opts.Name)),
		echo:   e,
		idle:   http2.Server{IdleTimeout: e.Server.IdleTimeout},
	}

	lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

// Serve blocks until the server is shut down. A graceful shutdown returns nil.
func (s *Server) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.opts.Port))
	s.logger.Info("Starting HTTP server", slog.String("host_port", hostPort), slog.Bool("h2c", s.opts.H2C))

	var err error
	if s.opts.H2C {
		err = s.echo.StartH2CServer(hostPort, &s.idle)
	} else {
		err = s.echo.Start(hostPort)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server", s.opts.Name)
	}

	return nil
}

func (s *Server) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
