package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

// Publisher is the subset of *redis.Client the notifier needs.
type Publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// NewRedisClient returns nil without error when url is empty; notifications
// then fall back to the log.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		slog.Warn("redis url not configured, events will only be logged")
		return nil, nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse redis url")
	}
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to ping redis")
	}

	slog.Info("connected to redis", "addr", opt.Addr)
	return client, nil
}

type RedisNotifier struct {
	publisher Publisher
	channel   string
}

func NewRedisNotifier(publisher Publisher, channel string) *RedisNotifier {
	return &RedisNotifier{publisher: publisher, channel: channel}
}

func (n *RedisNotifier) Notify(ctx context.Context, ev shared.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "failed to encode event")
	}
	if err := n.publisher.Publish(ctx, n.channel, payload).Err(); err != nil {
		return errs.Wrapf(err, "failed to publish %s", ev.Kind)
	}
	return nil
}
