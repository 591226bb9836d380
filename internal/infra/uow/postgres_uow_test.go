//go:build unit

package uow

import (
	"context"
	"testing"
	"time"

	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: pgErrCodeSerializationFailure}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: pgErrCodeDeadlockDetected}, want: true},
		{name: "wrapped deadlock", err: errs.Wrap(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}, "insert booking"), want: true},
		{name: "exclusion violation", err: &pgconn.PgError{Code: "23P01"}, want: false},
		{name: "plain error", err: errs.New("boom"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestTxBackOffStopsAfterMaxRetries(t *testing.T) {
	b := newTxBackOff(context.Background())
	for i := 0; i < maxTxRetries; i++ {
		wait := b.NextBackOff()
		assert.NotEqual(t, backoff.Stop, wait, "retry %d", i+1)
		assert.LessOrEqual(t, wait, time.Second)
	}
	assert.Equal(t, backoff.Stop, b.NextBackOff())
}

func TestTxBackOffStartsAtInitialInterval(t *testing.T) {
	b := newTxBackOff(context.Background())
	wait := b.NextBackOff()
	assert.GreaterOrEqual(t, wait, 80*time.Millisecond)
	assert.LessOrEqual(t, wait, 120*time.Millisecond)
}

func TestDateLockKey(t *testing.T) {
	assert.Equal(t, "booking-date:2024-06-15", dateLockKey(schedule.NewDate(2024, time.June, 15)))
}
