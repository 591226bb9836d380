//go:build unit

package readstore

import (
	"context"
	"testing"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
	"studio-booking/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockQueries struct {
	mock.Mock
}

func (m *MockQueries) GetBookingDetails(ctx context.Context, db sqlc.DBTX, bookingID int64) (sqlc.GetBookingDetailsRow, error) {
	args := m.Called(ctx, db, bookingID)
	return args.Get(0).(sqlc.GetBookingDetailsRow), args.Error(1)
}

func (m *MockQueries) GetBookingByReference(ctx context.Context, db sqlc.DBTX, ref string) (sqlc.Bookings, error) {
	args := m.Called(ctx, db, ref)
	return args.Get(0).(sqlc.Bookings), args.Error(1)
}

func (m *MockQueries) ListBookingsByDateAndStatuses(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByDateAndStatusesParams) ([]sqlc.Bookings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Bookings), args.Error(1)
}

func (m *MockQueries) ListBookingsBetweenDates(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsBetweenDatesParams) ([]sqlc.Bookings, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Bookings), args.Error(1)
}

func (m *MockQueries) ListBookingsByStatus(ctx context.Context, db sqlc.DBTX, status string) ([]sqlc.Bookings, error) {
	args := m.Called(ctx, db, status)
	return args.Get(0).([]sqlc.Bookings), args.Error(1)
}

func (m *MockQueries) ListBookingsByGuestEmail(ctx context.Context, db sqlc.DBTX, email string) ([]sqlc.Bookings, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).([]sqlc.Bookings), args.Error(1)
}

func (m *MockQueries) ListUpcomingBookings(ctx context.Context, db sqlc.DBTX, date pgtype.Date) ([]sqlc.Bookings, error) {
	args := m.Called(ctx, db, date)
	return args.Get(0).([]sqlc.Bookings), args.Error(1)
}

func (m *MockQueries) ListAllBookings(ctx context.Context, db sqlc.DBTX) ([]sqlc.Bookings, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Bookings), args.Error(1)
}

func (m *MockQueries) ListOrphanedPayments(ctx context.Context, db sqlc.DBTX) ([]sqlc.Payments, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Payments), args.Error(1)
}

func TestFindByReference(t *testing.T) {
	row := builder.NewBookingBuilder().WithSlot("09:30", "11:00").BuildInfra()

	tests := []struct {
		name      string
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "not found", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockQueries)
			mockQueries.On("GetBookingByReference", mock.Anything, mock.Anything, "BK-TEST0001").Return(row, tt.mockError)

			rm, err := NewBookingReadStore(mockQueries, nil).FindByReference(context.Background(), "BK-TEST0001")

			if tt.mockError != nil {
				assert.Nil(t, rm)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, "2024-06-01", rm.Date)
				assert.Equal(t, "09:30", rm.StartTime)
				assert.Equal(t, "11:00", rm.EndTime)
				assert.Equal(t, "Maria Santos", rm.GuestName)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindDetails(t *testing.T) {
	b := builder.NewBookingBuilder().BuildInfra()
	base := sqlc.GetBookingDetailsRow{
		BookingID:         b.BookingID,
		BookingReference:  b.BookingReference,
		BookingDate:       b.BookingDate,
		BookingTimeStart:  b.BookingTimeStart,
		BookingTimeEnd:    b.BookingTimeEnd,
		BookingHours:      b.BookingHours,
		PackagePriceCents: b.PackagePriceCents,
		BookingStatus:     b.BookingStatus,
		PaymentID:         b.PaymentID,
	}

	t.Run("with payment", func(t *testing.T) {
		row := base
		row.PaymentAmountCents = pgtype.Int8{Int64: 100000, Valid: true}
		row.PaymentRemainingCents = pgtype.Int8{Int64: 200000, Valid: true}
		row.PaymentType = pgconv.StringToPgtype("DOWNPAYMENT")
		row.PaymentMethod = pgconv.StringToPgtype("GCASH")
		row.PaymentStatus = pgconv.StringToPgtype("COMPLETED")
		row.PaymentProof_2 = pgconv.StringToPgtype("proof.png")

		mockQueries := new(MockQueries)
		mockQueries.On("GetBookingDetails", mock.Anything, mock.Anything, int64(1)).Return(row, nil)

		rm, err := NewBookingReadStore(mockQueries, nil).FindDetails(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, rm.Payment)
		assert.Equal(t, int64(200000), rm.Payment.RemainingCents)
		assert.Equal(t, "proof.png", *rm.Payment.Proof)
		assert.Nil(t, rm.ProofURL)
	})

	t.Run("dangling payment id", func(t *testing.T) {
		mockQueries := new(MockQueries)
		mockQueries.On("GetBookingDetails", mock.Anything, mock.Anything, int64(1)).Return(base, nil)

		rm, err := NewBookingReadStore(mockQueries, nil).FindDetails(context.Background(), 1)
		require.NoError(t, err)
		assert.Nil(t, rm.Payment)
		assert.Equal(t, "10:00", rm.StartTime)
	})
}

func TestListByDate(t *testing.T) {
	date, err := schedule.ParseDate("2024-06-01")
	require.NoError(t, err)

	mockQueries := new(MockQueries)
	mockQueries.On("ListBookingsByDateAndStatuses", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.ListBookingsByDateAndStatusesParams) bool {
		return p.BookingDate.Time.Equal(date.Time()) && assert.ObjectsAreEqual([]string{"CONFIRMED", "COMPLETED"}, p.Statuses)
	})).Return([]sqlc.Bookings{
		builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildInfra(),
		builder.NewBookingBuilder().WithID(2).WithSlot("13:00", "15:00").WithStatus(booking.StatusCompleted).BuildInfra(),
	}, nil)

	rms, err := NewBookingReadStore(mockQueries, nil).ListByDate(context.Background(), date, []booking.Status{booking.StatusConfirmed, booking.StatusCompleted})
	require.NoError(t, err)
	require.Len(t, rms, 2)
	assert.Equal(t, "COMPLETED", rms[1].Status)
	mockQueries.AssertExpectations(t)
}

func TestListOrphanedPayments(t *testing.T) {
	mockQueries := new(MockQueries)
	mockQueries.On("ListOrphanedPayments", mock.Anything, mock.Anything).Return([]sqlc.Payments{
		{PaymentID: 4, AmountCents: 50000, PaymentType: "FULL_PAYMENT", PaymentMethod: "CASH", PaymentStatus: "PENDING"},
	}, nil)

	rms, err := NewBookingReadStore(mockQueries, nil).ListOrphanedPayments(context.Background())
	require.NoError(t, err)
	require.Len(t, rms, 1)
	assert.Equal(t, int64(4), rms[0].ID)
	assert.Nil(t, rms[0].BookingID)
	assert.Nil(t, rms[0].Proof)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", formatClock(pgtype.Time{Valid: true}))
	assert.Equal(t, "23:59", formatClock(pgtype.Time{Microseconds: (23*60 + 59) * 60 * 1e6, Valid: true}))
	assert.Equal(t, "", formatClock(pgtype.Time{}))
}
