package components

import (
	"studio-booking/internal/handler"
	"studio-booking/internal/handler/api"
	reqdto "studio-booking/internal/handler/dto/request"
	"studio-booking/internal/handler/middleware"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		fx.Annotate(
			api.NewHealthHandler,
			fx.From(new(*pgxpool.Pool)),
		),
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewScheduleHandler,
		api.NewFileHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(
		reqdto.RegisterValidators,
		handler.NewRouter,
	),
)

func newHandlers(health *api.HealthHandler, auth *api.AuthHandler, booking *api.BookingHandler, schedule *api.ScheduleHandler, file *api.FileHandler) handler.Handlers {
	return handler.Handlers{
		Health:   health,
		Auth:     auth,
		Booking:  booking,
		Schedule: schedule,
		File:     file,
	}
}
