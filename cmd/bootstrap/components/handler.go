package components

import (
	"tarumbeta-server/internal/handler"
	"tarumbeta-server/internal/handler/api"
	"tarumbeta-server/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewInstrumentHandler,
		api.NewRentalHandler,
		api.NewLessonHandler,
		api.NewInstructorHandler,
		api.NewMatchingHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
