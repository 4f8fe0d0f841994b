package sandbox

import (
	"context"
	"log/slog"

	"storefront/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UploadsParams holds dependencies for the uploads bucket, injected by Fx
type UploadsParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewUploadsFromConfig opens the uploads bucket and closes it on stop.
func NewUploadsFromConfig(params UploadsParams) (*Uploads, error) {
	cfg := params.Config.Sandbox
	if cfg == nil {
		return nil, errors.New("sandbox section is missing from config")
	}

	uploads, err := OpenUploads(cfg.UploadsDir, cfg.PublicURL)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing uploads bucket")

			return uploads.Close()
		},
	})

	return uploads, nil
}

// Module provides the emulated backend state
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewUploadsFromConfig,
		NewBackend,
	),
)
