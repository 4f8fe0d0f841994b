package session

import (
	"log/slog"

	"storefront/internal/domain/service"

	"go.uber.org/fx"
)

// StoreParams holds dependencies for the session Store, injected by Fx
type StoreParams struct {
	fx.In

	Storage service.SecureStorage
	Logger  *slog.Logger
}

// New creates the application session Store.
func New(params StoreParams) *Store {
	return NewStore(params.Storage, params.Logger.With(slog.String("component", "session")))
}

// Module provides the session FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
