package middleware

import (
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestMiddleware tags every request with a correlation id and writes the access log.
type RequestMiddleware struct {
	logger  *slog.Logger
	verbose bool
}

func NewRequestMiddleware(logger *slog.Logger, cfg *config.Config) *RequestMiddleware {
	return &RequestMiddleware{
		logger:  logger,
		verbose: cfg.Env.Debug,
	}
}

func (m *RequestMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		req := c.Request()

		requestID := req.Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = deliverycontext.NewRequestID()
		}
		deliverycontext.SetEchoRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)
		c.SetRequest(req.WithContext(deliverycontext.Scope(req.Context(), m.logger, requestID)))

		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = statusOf(err)
		}
		m.access(c, status, time.Since(start), err)

		return err
	}
}

// access logs failures always and successful requests only in debug mode.
func (m *RequestMiddleware) access(c echo.Context, status int, latency time.Duration, err error) {
	level := slog.LevelDebug
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	case m.verbose:
		level = slog.LevelInfo
	}

	ctx := c.Request().Context()
	attrs := []slog.Attr{
		slog.String("method", c.Request().Method),
		slog.String("route", c.Path()),
		slog.String("path", c.Request().URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
	}
	if userID := UserID(c); userID != "" {
		attrs = append(attrs, slog.String("user_id", userID))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	deliverycontext.LoggerFrom(ctx, m.logger).LogAttrs(ctx, level, "Sandbox request", attrs...)
}
