package components

import (
	"oasis-backend/internal/handler"
	"oasis-backend/internal/handler/api"
	"oasis-backend/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewTabHandler,
		api.NewWalletHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
