package shared

import (
	"context"

	"studio-booking/internal/domain/admin"
	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/conflict"
	"studio-booking/internal/domain/payment"
	"studio-booking/internal/domain/schedule"
	sqlc "studio-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Payments() PaymentRepository
	Schedules() ScheduleRepository
	Admins() AdminRepository
	// LockDate serialises writers touching the same calendar date until the
	// transaction ends.
	LockDate(ctx context.Context, date schedule.Date) error
	DB() sqlc.DBTX
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (booking.ID, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id booking.ID) (*booking.Booking, error)
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id booking.ID) (*booking.Booking, error)
	// FindByReference returns nil without error when no booking carries ref.
	FindByReference(ctx context.Context, tx sqlc.DBTX, ref booking.Reference) (*booking.Booking, error)
	FindOverlapping(ctx context.Context, tx sqlc.DBTX, req conflict.Request) ([]*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	UpdateTimeRange(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	UpdateDetails(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	UpdateProof(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, tx sqlc.DBTX, id booking.ID) error
}

type PaymentRepository interface {
	CreateOrphan(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (payment.ID, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id payment.ID) (*payment.Payment, error)
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id payment.ID) (*payment.Payment, error)
	Link(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error
	UpdateProof(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error
	UnlinkFromBooking(ctx context.Context, tx sqlc.DBTX, bookingID booking.ID) error
	Delete(ctx context.Context, tx sqlc.DBTX, id payment.ID) error
}

type ScheduleRepository interface {
	ListByDate(ctx context.Context, tx sqlc.DBTX, date schedule.Date) ([]schedule.UnavailableRange, error)
	// Replace deletes every range on the schedule's date, then inserts its set.
	Replace(ctx context.Context, tx sqlc.DBTX, day schedule.DaySchedule) ([]schedule.UnavailableRange, error)
}

type AdminRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, a *admin.Admin) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, adminID uuid.UUID) error
}
