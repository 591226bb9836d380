//go:build unit

package conflict_test

import (
	"testing"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/conflict"
	"studio-booking/internal/domain/schedule"
	"studio-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(t *testing.T, date, start, end string, exclude *booking.ID) conflict.Request {
	t.Helper()
	d, err := schedule.ParseDate(date)
	require.NoError(t, err)
	slot, err := schedule.ParseTimeSlot(start, end)
	require.NoError(t, err)
	return conflict.NewRequest(d, slot, exclude)
}

func TestFind(t *testing.T) {
	confirmed := builder.NewBookingBuilder().WithID(1).WithStatus(booking.StatusConfirmed).MustDomain()
	cancelled := builder.NewBookingBuilder().WithID(2).WithReference("BK-TEST0002").
		WithSlot("14:00", "16:00").WithStatus(booking.StatusCancelled).MustDomain()
	otherDay := builder.NewBookingBuilder().WithID(3).WithReference("BK-TEST0003").
		WithDate("2024-06-02").MustDomain()
	blackout := builder.NewRangeBuilder().MustDomain() // 13:00-14:00

	bookings := []*booking.Booking{confirmed, cancelled, otherDay}
	ranges := []schedule.UnavailableRange{blackout}

	t.Run("overlapping booking conflicts", func(t *testing.T) {
		res := conflict.Find(request(t, "2024-06-01", "11:00", "12:30", nil), bookings, ranges)
		require.Len(t, res.Bookings, 1)
		assert.Equal(t, booking.ID(1), res.Bookings[0].ID())
		assert.Empty(t, res.Ranges)
		assert.False(t, res.Empty())
	})

	t.Run("back to back slots are free", func(t *testing.T) {
		res := conflict.Find(request(t, "2024-06-01", "12:00", "13:00", nil), bookings, ranges)
		assert.True(t, res.Empty())
	})

	t.Run("cancelled bookings never conflict", func(t *testing.T) {
		res := conflict.Find(request(t, "2024-06-01", "14:30", "15:30", nil), bookings, ranges)
		assert.True(t, res.Empty())
	})

	t.Run("excluded booking does not conflict with itself", func(t *testing.T) {
		id := booking.ID(1)
		res := conflict.Find(request(t, "2024-06-01", "10:00", "11:00", &id), bookings, ranges)
		assert.True(t, res.Empty())
	})

	t.Run("unavailable range conflicts", func(t *testing.T) {
		res := conflict.Find(request(t, "2024-06-01", "12:30", "13:30", nil), bookings, ranges)
		assert.Empty(t, res.Bookings)
		require.Len(t, res.Ranges, 1)
		assert.Equal(t, "13:00-14:00", res.Ranges[0].Slot().String())
	})

	t.Run("booking and range reported together", func(t *testing.T) {
		res := conflict.Find(request(t, "2024-06-01", "11:00", "13:30", nil), bookings, ranges)
		assert.Len(t, res.Bookings, 1)
		assert.Len(t, res.Ranges, 1)
	})

	t.Run("other dates are ignored", func(t *testing.T) {
		res := conflict.Find(request(t, "2024-06-03", "10:00", "12:00", nil), bookings, ranges)
		assert.True(t, res.Empty())
	})

	t.Run("nil candidates are skipped", func(t *testing.T) {
		res := conflict.Find(request(t, "2024-06-01", "10:00", "11:00", nil), []*booking.Booking{nil, confirmed}, nil)
		assert.Len(t, res.Bookings, 1)
	})
}
