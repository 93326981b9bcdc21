package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"storerating/config"
	"storerating/internal/delivery"
	httpmiddleware "storerating/internal/delivery/http/middleware"
	"storerating/internal/delivery/http/router"
	"storerating/internal/delivery/http/validator"
	"storerating/internal/delivery/middleware"
	"storerating/internal/domain/lifecycle"
	"storerating/internal/errors"
	"storerating/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// HTTPParams holds dependencies for HTTP server, injected by Fx.
type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Router  *router.Router
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer builds the API server. It starts listening in Serve and shuts down with the application.
func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := NewEcho(params.Config, params.Logger, params.Metrics, params.Router)

	srv := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho assembles the echo instance: middleware chain, error handler, validator and routes.
func NewEcho(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics, r *router.Router) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// 1. Recover first to catch panics from everything below.
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID before anything that logs.
	echoServer.Use(middleware.NewRequestIDMiddleware(logger).Process)

	// 3. Metrics outside the logger, which renders errors, so the status is final.
	echoServer.Use(httpmiddleware.NewMetricsMiddleware(m).Handle)

	// 4. Logger
	echoServer.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	// 5. CORS
	corsConfig := echomiddleware.DefaultCORSConfig
	if len(cfg.HTTP.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.AllowOrigins
	}
	echoServer.Use(echomiddleware.CORSWithConfig(corsConfig))

	// 6. Request body size limit
	echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	echoServer.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError
	echoServer.Validator = validator.New()

	r.RegisterRoutes(echoServer)

	return echoServer
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
