package files

import (
	"context"
	"log/slog"

	"storefront/internal/domain/service"

	"go.uber.org/fx"
)

// ResolverParams holds dependencies for the Resolver, injected by Fx
type ResolverParams struct {
	fx.In

	Lc     fx.Lifecycle
	Logger *slog.Logger
}

// NewFileResolver creates the Resolver and closes its buckets on stop.
func NewFileResolver(params ResolverParams) (*Resolver, service.FileResolver) {
	r := NewResolver(params.Logger.With(slog.String("component", "files")), nil)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return r.Close()
		},
	})

	return r, r
}

// Module provides the file resolver FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewFileResolver),
)
