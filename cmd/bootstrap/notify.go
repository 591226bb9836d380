package bootstrap

import (
	"context"

	"studio-booking/internal/infra/notify"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewRedisClient,
		NewNotifier,
	),
)

// NewRedisClient returns a nil client when REDIS_URL is unset.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, err := notify.NewRedisClient(context.Background(), cfg.Redis.URL)
	if err != nil {
		return nil, err
	}
	if client != nil {
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
	}
	return client, nil
}

func NewNotifier(client *redis.Client, cfg config.Config) shared.Notifier {
	return notify.New(client, cfg.Redis.Channel)
}
