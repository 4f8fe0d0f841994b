package http

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router"
	"storefront/internal/delivery/http/router/handler"

	"go.uber.org/fx"
)

// Module provides the sandbox HTTP surface
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		middleware.NewAuthMiddleware,
		middleware.NewErrorMiddleware,
		middleware.NewMetricsMiddleware,
		handler.NewAuthHandler,
		handler.NewStoreHandler,
		handler.NewProductHandler,
		handler.NewOrderHandler,
		handler.NewUploadHandler,
		router.NewRouter,
	),
)
