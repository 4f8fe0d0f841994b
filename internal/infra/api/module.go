package api

import (
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/infra/metrics"

	"go.uber.org/fx"
)

// ClientParams holds dependencies for the API Client, injected by Fx
type ClientParams struct {
	fx.In

	Config  *config.Config
	Tokens  TokenSource
	Files   service.FileResolver
	Metrics *metrics.Metrics `optional:"true"`
	Logger  *slog.Logger
}

// NewClientFromParams creates the shared API Client.
func NewClientFromParams(params ClientParams) *Client {
	return NewClient(
		params.Config.API,
		params.Tokens,
		params.Files,
		params.Metrics,
		params.Logger.With(slog.String("component", "api")),
	)
}

// Module provides the API client and the HTTP repositories
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClientFromParams,
		NewAuthRepository,
		NewMarketRepository,
		NewOrderRepository,
		NewShoppingListRepository,
	),
)
