// Package http serves the console screens over echo.
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"backoffice/config"
	"backoffice/internal/delivery"
	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/router"
	"backoffice/internal/delivery/http/view"
	sharedmiddleware "backoffice/internal/delivery/middleware"
	"backoffice/internal/domain/lifecycle"
	"backoffice/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Renderer     *view.Renderer
	Metrics      *middleware.MetricsMiddleware
	Errors       *middleware.ErrorMiddleware
	RouterParams router.RouterParams
}

// NewServer builds the echo instance with the console middleware chain and routes.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := NewEcho(params)

	srv := &httpServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho wires middleware, the renderer, the error handler and the routes.
func NewEcho(params ServerParams) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// Recover first so panics in later middleware are caught.
	echoServer.Use(echomiddleware.Recover())

	// Request ID before any logging.
	requestIDMiddleware := sharedmiddleware.NewRequestIDMiddleware(params.Logger)
	echoServer.Use(requestIDMiddleware.Process)

	echoServer.Use(slogecho.NewWithConfig(params.Logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
		Filters:          []slogecho.Filter{slogecho.IgnorePath("/health")},
	}))

	loggerMiddleware := sharedmiddleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	echoServer.Use(loggerMiddleware.Handle)

	echoServer.Use(params.Metrics.Handle)

	echoServer.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	echoServer.HTTPErrorHandler = params.Errors.HandleHTTPError
	echoServer.Renderer = params.Renderer

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	return echoServer
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting console HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down console HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
