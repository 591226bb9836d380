package components

import (
	"context"
	"log/slog"

	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/usecase"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"
	"studio-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	fx.Invoke(seedBootstrapAdmin),
)

var usecaseBaseOption = fx.Provide(
	newClock,
	func(cfg config.Config) commands.Options {
		return commands.Options{
			ReferenceRetries:   cfg.Booking.ReferenceRetries,
			DefaultManualEmail: cfg.Booking.DefaultManualEmail,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewScheduleCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAdminQueries,
		queries.NewScheduleQueries,
		newBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func newClock(cfg config.Config) (clock.Clock, error) {
	loc, err := clock.LoadLocation(cfg.Booking.TimeZone)
	if err != nil {
		return nil, err
	}
	return clock.NewRealClock(loc), nil
}

func newBookingQueries(
	store queries.BookingReadStore,
	uow shared.UnitOfWork,
	bookings shared.BookingRepository,
	schedules shared.ScheduleRepository,
	clk clock.Clock,
	cfg config.Config,
) queries.BookingQueries {
	return queries.NewBookingQueries(store, uow, bookings, schedules, clk, cfg.Storage.PublicBaseURL)
}

func seedBootstrapAdmin(lc fx.Lifecycle, auth commands.AuthCommands, cfg config.Config) {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := auth.EnsureBootstrapAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
				slog.Error("failed to seed bootstrap admin", "error", err.Error())
				return err
			}
			return nil
		},
	})
}
