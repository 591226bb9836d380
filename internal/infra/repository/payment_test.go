//go:build unit

package repository

import (
	"context"
	"testing"

	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/tests/common/builder"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentQueries struct {
	mock.Mock
}

func (m *MockPaymentQueries) CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) (sqlc.Payments, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Payments), args.Error(1)
}

func (m *MockPaymentQueries) GetPayment(ctx context.Context, db sqlc.DBTX, paymentID int64) (sqlc.Payments, error) {
	args := m.Called(ctx, db, paymentID)
	return args.Get(0).(sqlc.Payments), args.Error(1)
}

func (m *MockPaymentQueries) GetPaymentForUpdate(ctx context.Context, db sqlc.DBTX, paymentID int64) (sqlc.Payments, error) {
	args := m.Called(ctx, db, paymentID)
	return args.Get(0).(sqlc.Payments), args.Error(1)
}

func (m *MockPaymentQueries) LinkPaymentToBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.LinkPaymentToBookingParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentQueries) UpdatePaymentProof(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentProofParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentQueries) UnlinkPaymentsFromBooking(ctx context.Context, db sqlc.DBTX, bookingID pgtype.Int8) (int64, error) {
	args := m.Called(ctx, db, bookingID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentQueries) DeletePayment(ctx context.Context, db sqlc.DBTX, paymentID int64) (int64, error) {
	args := m.Called(ctx, db, paymentID)
	return args.Get(0).(int64), args.Error(1)
}

type MockScheduleQueries struct {
	mock.Mock
}

func (m *MockScheduleQueries) ListUnavailableRangesByDate(ctx context.Context, db sqlc.DBTX, date pgtype.Date) ([]sqlc.UnavailableTimeRanges, error) {
	args := m.Called(ctx, db, date)
	return args.Get(0).([]sqlc.UnavailableTimeRanges), args.Error(1)
}

func (m *MockScheduleQueries) DeleteUnavailableRangesByDate(ctx context.Context, db sqlc.DBTX, date pgtype.Date) (int64, error) {
	args := m.Called(ctx, db, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockScheduleQueries) CreateUnavailableRange(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUnavailableRangeParams) (sqlc.UnavailableTimeRanges, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.UnavailableTimeRanges), args.Error(1)
}

func TestPaymentRepositoryLink(t *testing.T) {
	p := builder.NewBookingBuilder().WithID(5).MustPayment()

	mockQueries := new(MockPaymentQueries)
	mockQueries.On("LinkPaymentToBooking", mock.Anything, mock.Anything, sqlc.LinkPaymentToBookingParams{
		PaymentID:      1,
		BookingID:      pgtype.Int8{Int64: 5, Valid: true},
		RemainingCents: 200000,
	}).Return(int64(1), nil)

	require.NoError(t, NewPaymentRepository(mockQueries, nil).Link(context.Background(), nil, p))
	mockQueries.AssertExpectations(t)
}

func TestPaymentRepositoryUnlinkAndDelete(t *testing.T) {
	t.Run("unlink tolerates bookings without payments", func(t *testing.T) {
		mockQueries := new(MockPaymentQueries)
		mockQueries.On("UnlinkPaymentsFromBooking", mock.Anything, mock.Anything, pgtype.Int8{Int64: 3, Valid: true}).Return(int64(0), nil)

		assert.NoError(t, NewPaymentRepository(mockQueries, nil).UnlinkFromBooking(context.Background(), nil, 3))
	})

	t.Run("delete while still referenced", func(t *testing.T) {
		mockQueries := new(MockPaymentQueries)
		mockQueries.On("DeletePayment", mock.Anything, mock.Anything, int64(1)).Return(int64(0), &pgconn.PgError{Code: "23503"})

		err := NewPaymentRepository(mockQueries, nil).Delete(context.Background(), nil, 1)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	t.Run("delete missing payment", func(t *testing.T) {
		mockQueries := new(MockPaymentQueries)
		mockQueries.On("DeletePayment", mock.Anything, mock.Anything, int64(2)).Return(int64(0), nil)

		err := NewPaymentRepository(mockQueries, nil).Delete(context.Background(), nil, 2)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestScheduleRepositoryReplace(t *testing.T) {
	date, err := schedule.ParseDate("2024-06-01")
	require.NoError(t, err)
	first := builder.NewRangeBuilder().WithSlot("08:00", "09:00").MustDomain()
	second := builder.NewRangeBuilder().WithSlot("17:00", "18:00").MustDomain()
	day, err := schedule.NewDaySchedule(date, []schedule.UnavailableRange{first, second})
	require.NoError(t, err)

	t.Run("clears then inserts every range", func(t *testing.T) {
		mockQueries := new(MockScheduleQueries)
		mockQueries.On("DeleteUnavailableRangesByDate", mock.Anything, mock.Anything, mock.Anything).Return(int64(3), nil).Once()
		mockQueries.On("CreateUnavailableRange", mock.Anything, mock.Anything, mock.Anything).
			Return(builder.NewRangeBuilder().WithSlot("08:00", "09:00").BuildInfra(), nil).Once()
		mockQueries.On("CreateUnavailableRange", mock.Anything, mock.Anything, mock.Anything).
			Return(builder.NewRangeBuilder().WithSlot("17:00", "18:00").BuildInfra(), nil).Once()

		saved, err := NewScheduleRepository(mockQueries, nil).Replace(context.Background(), nil, day)
		require.NoError(t, err)
		require.Len(t, saved, 2)
		assert.Equal(t, "08:00-09:00", saved[0].Slot().String())
		assert.Equal(t, "17:00-18:00", saved[1].Slot().String())
		mockQueries.AssertExpectations(t)
	})

	t.Run("insert failure surfaces", func(t *testing.T) {
		mockQueries := new(MockScheduleQueries)
		mockQueries.On("DeleteUnavailableRangesByDate", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)
		mockQueries.On("CreateUnavailableRange", mock.Anything, mock.Anything, mock.Anything).
			Return(sqlc.UnavailableTimeRanges{}, assert.AnError)

		_, err := NewScheduleRepository(mockQueries, nil).Replace(context.Background(), nil, day)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("list by date", func(t *testing.T) {
		mockQueries := new(MockScheduleQueries)
		mockQueries.On("ListUnavailableRangesByDate", mock.Anything, mock.Anything, mock.Anything).
			Return([]sqlc.UnavailableTimeRanges{builder.NewRangeBuilder().BuildInfra()}, nil)

		got, err := NewScheduleRepository(mockQueries, nil).ListByDate(context.Background(), nil, date)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].Date().Equal(date))
	})
}
