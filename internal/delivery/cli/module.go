package cli

import (
	"storefront/internal/domain/service"
	"storefront/internal/session"

	"go.uber.org/fx"
)

// Module provides the CLI front-end FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewNavigator,
		func(n *Navigator) service.Navigator { return n },
		session.NewGate,
		NewApp,
	),
)
