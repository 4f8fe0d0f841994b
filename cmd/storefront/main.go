package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"storefront/config"
	"storefront/internal/delivery/cli"
	"storefront/internal/infra/api"
	"storefront/internal/infra/files"
	"storefront/internal/infra/location"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/metrics"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/query"
	"storefront/internal/infra/storage"
	"storefront/internal/session"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var app *cli.App

	fxApp := fx.New(
		injectInfra(),
		injectService(),
		impl.Module,
		cli.Module,
		fx.Populate(&app),
		fx.WithLogger(newFxLogger),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startCtx, cancelStart := context.WithTimeout(ctx, fxApp.StartTimeout())
	defer cancelStart()
	if err := fxApp.Start(startCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return cli.ExitError
	}

	code := app.Run(ctx, args)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), fxApp.StopTimeout())
	defer cancelStop()
	if err := fxApp.Stop(stopCtx); err != nil {
		slog.Error("Failed to stop cleanly", slog.Any("error", err))
	}

	return code
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
		),
		metrics.Module,
		storage.Module,
		files.Module,
		session.Module,
		query.Module,
		api.Module,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		qrcode.NewFromConfig,
		location.NewStaticProvider,
		func(s *session.Store) api.TokenSource { return s },
		func(c *api.Client) cli.MediaResolver { return c },
	)
}

// newFxLogger keeps the container quiet unless debug is enabled.
func newFxLogger(cfg *config.Config, logger *slog.Logger) fxevent.Logger {
	if cfg.Env.Debug {
		return &fxevent.SlogLogger{Logger: logger}
	}

	return fxevent.NopLogger
}
