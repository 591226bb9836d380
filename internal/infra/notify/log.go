package notify

import (
	"context"
	"log/slog"

	"studio-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, ev shared.Event) error {
	slog.InfoContext(ctx, "booking event",
		"kind", ev.Kind,
		"booking_id", ev.BookingID,
		"reference", ev.Reference,
		"date", ev.Date,
		"status", ev.Status,
	)
	return nil
}

// New publishes to redis when a client is available and logs otherwise.
func New(client *redis.Client, channel string) shared.Notifier {
	if client == nil {
		return LogNotifier{}
	}
	return NewRedisNotifier(client, channel)
}
