package components

import (
	"tavola-api/internal/handler"
	"tavola-api/internal/handler/api"
	"tavola-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewMenuHandler,
		api.NewContentHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
