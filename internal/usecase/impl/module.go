package impl

import (
	"storefront/internal/session"

	"go.uber.org/fx"
)

// Module provides the usecase implementations
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewValidator,
		func(store *session.Store) SessionManager { return store },
		NewAuthService,
		NewMarketService,
		NewOrderService,
		NewShoppingListService,
	),
)
