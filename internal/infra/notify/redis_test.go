//go:build unit

package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"studio-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	channel string
	message []byte
	err     error
}

func (p *fakePublisher) Publish(_ context.Context, channel string, message any) *redis.IntCmd {
	p.channel = channel
	p.message, _ = message.([]byte)
	return redis.NewIntResult(1, p.err)
}

func TestRedisNotifier(t *testing.T) {
	ev := shared.Event{
		Kind:       shared.EventBookingCreated,
		BookingID:  7,
		Reference:  "BK-TEST0001",
		Date:       "2024-06-01",
		Status:     "PENDING",
		OccurredAt: time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC),
	}

	t.Run("publishes the event as json", func(t *testing.T) {
		pub := &fakePublisher{}
		require.NoError(t, NewRedisNotifier(pub, "studio.bookings").Notify(context.Background(), ev))

		assert.Equal(t, "studio.bookings", pub.channel)
		var got shared.Event
		require.NoError(t, json.Unmarshal(pub.message, &got))
		assert.Equal(t, ev, got)
	})

	t.Run("publish failure is returned", func(t *testing.T) {
		pub := &fakePublisher{err: assert.AnError}
		err := NewRedisNotifier(pub, "studio.bookings").Notify(context.Background(), ev)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestNewFallsBackToLog(t *testing.T) {
	n := New(nil, "studio.bookings")
	assert.IsType(t, LogNotifier{}, n)
	assert.NoError(t, n.Notify(context.Background(), shared.Event{Kind: shared.EventBookingDeleted}))
}

func TestNewRedisClientWithoutURL(t *testing.T) {
	client, err := NewRedisClient(context.Background(), "")
	assert.NoError(t, err)
	assert.Nil(t, client)
}
