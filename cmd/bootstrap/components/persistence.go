package components

import (
	"studio-booking/internal/infra/readstore"
	"studio-booking/internal/infra/repository"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/infra/uow"
	"studio-booking/internal/usecase/queries"
	"studio-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// one generated query set behind every narrow interface the stores take
		fx.Annotate(
			NewSQLQueries,
			fx.As(fx.Self()),
			fx.As(new(readstore.BookingReadQueries)),
			fx.As(new(readstore.ScheduleReadQueries)),
			fx.As(new(readstore.AdminReadQueries)),
			fx.As(new(repository.BookingWriteQueries)),
			fx.As(new(repository.ScheduleWriteQueries)),
		),
		NewDBTX,
		uow.NewPostgresUoW,
	),
	readStores,
	poolRepositories,
)

var readStores = fx.Provide(
	fx.Annotate(readstore.NewBookingReadStore, fx.As(new(queries.BookingReadStore))),
	fx.Annotate(readstore.NewScheduleReadStore, fx.As(new(queries.ScheduleReadStore))),
	fx.Annotate(readstore.NewAdminReadStore, fx.As(new(queries.AdminReadStore))),
)

// Writes go through the unit of work, which scopes its own repositories to
// the transaction. These pool-scoped ones serve the conflict preview.
var poolRepositories = fx.Provide(
	fx.Annotate(repository.NewBookingRepository, fx.As(new(shared.BookingRepository))),
	fx.Annotate(repository.NewScheduleRepository, fx.As(new(shared.ScheduleRepository))),
)

// sqlc is generated with emit_methods_with_db_argument, so the query set
// holds no connection.
func NewSQLQueries() *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
