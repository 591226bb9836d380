package bootstrap

import (
	"studio-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Infrastructure is everything that talks to the outside world.
var Infrastructure = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	StorageModule,
	NotifyModule,
)

var Module = fx.Options(
	Infrastructure,
	WithSlogEvents,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
