package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router"
	"storefront/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const shutdownTimeout = 10 * time.Second

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Gatherer prometheus.Gatherer
	Router   *router.Router

	ErrorMiddleware   *middleware.ErrorMiddleware
	MetricsMiddleware *middleware.MetricsMiddleware
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewEcho assembles the sandbox echo instance. gatherer may be nil to leave /metrics out.
func NewEcho(
	cfg *config.Config,
	logger *slog.Logger,
	r *router.Router,
	errMw *middleware.ErrorMiddleware,
	metricsMw *middleware.MetricsMiddleware,
	gatherer prometheus.Gatherer,
) (*echo.Echo, error) {
	v, err := validator.New()
	if err != nil {
		return nil, err
	}

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Validator = v
	echoServer.HTTPErrorHandler = errMw.HandleHTTPError

	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(echomiddleware.CORS())
	echoServer.Use(middleware.NewRequestMiddleware(logger, cfg).Handle)
	echoServer.Use(metricsMw.Handle)

	if cfg.Metrics.Enabled && gatherer != nil {
		echoServer.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	r.RegisterRoutes(echoServer)

	return echoServer, nil
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	if params.Config.Sandbox == nil {
		return nil, errors.New("sandbox section is missing from the configuration")
	}

	e, err := NewEcho(params.Config, params.Logger, params.Router, params.ErrorMiddleware, params.MetricsMiddleware, params.Gatherer)
	if err != nil {
		return nil, err
	}

	srv := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: e,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Sandbox.Port))
	s.logger.Info("Starting sandbox HTTP server",
		slog.String("hostPort", hostPort),
		slog.String("apiBase", s.cfg.Sandbox.PublicURL+router.APIPrefix),
	)
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down sandbox HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
