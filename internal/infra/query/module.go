package query

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/infra/metrics"

	"go.uber.org/fx"
)

// ClientParams holds dependencies for the query Client, injected by Fx
type ClientParams struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Metrics *metrics.Metrics `optional:"true"`
	Logger  *slog.Logger
}

// New creates the application query Client and waits for detached fetches on stop.
func New(params ClientParams) *Client {
	c := NewClient(Config{
		Retry:     params.Config.Cache.Retry,
		StaleTime: params.Config.Cache.StaleTime,
	}, params.Metrics, params.Logger.With(slog.String("component", "query")))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			done := make(chan struct{})
			go func() {
				c.Wait()
				close(done)
			}()

			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})

	return c
}

// Module provides the query FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
