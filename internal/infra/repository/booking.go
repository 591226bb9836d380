package repository

import (
	"context"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/conflict"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/repository/converter"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	GetBooking(ctx context.Context, db sqlc.DBTX, bookingID int64) (sqlc.Bookings, error)
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, bookingID int64) (sqlc.Bookings, error)
	GetBookingByReference(ctx context.Context, db sqlc.DBTX, bookingReference string) (sqlc.Bookings, error)
	ListOverlappingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverlappingBookingsParams) ([]sqlc.Bookings, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	UpdateBookingTimeRange(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingTimeRangeParams) (int64, error)
	UpdateBookingDetails(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingDetailsParams) (int64, error)
	UpdateBookingProof(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingProofParams) (int64, error)
	DeleteBooking(ctx context.Context, db sqlc.DBTX, bookingID int64) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (booking.ID, error) {
	row, err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return booking.ID(row.BookingID), nil
}

func (r *BookingRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id booking.ID) (*booking.Booking, error) {
	row, err := r.queries.GetBooking(ctx, tx, int64(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return fromRow(row)
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id booking.ID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, tx, int64(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return fromRow(row)
}

func (r *BookingRepository) FindByReference(ctx context.Context, tx sqlc.DBTX, ref booking.Reference) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByReference(ctx, tx, ref.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find booking by reference", err)
	}
	return fromRow(row)
}

// FindOverlapping narrows candidates in SQL; the resolver makes the final call.
func (r *BookingRepository) FindOverlapping(ctx context.Context, tx sqlc.DBTX, req conflict.Request) ([]*booking.Booking, error) {
	exclude := pgtype.Int8{}
	if req.ExcludeID != nil {
		exclude = pgconv.Int64ToPgtype(int64(*req.ExcludeID))
	}
	rows, err := r.queries.ListOverlappingBookings(ctx, tx, sqlc.ListOverlappingBookingsParams{
		BookingDate: converter.DateToPgtype(req.Date),
		ExcludeID:   exclude,
		SlotEnd:     converter.ClockTimeToPgtype(req.Slot.End()),
		SlotStart:   converter.ClockTimeToPgtype(req.Slot.Start()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping bookings", err)
	}
	return fromRows(rows)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	n, err := r.queries.UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{
		BookingID:     int64(b.ID()),
		BookingStatus: b.Status().String(),
		AdminNotes:    pgconv.StringPtrToPgtype(b.AdminNotes()),
	})
	return affected("failed to update booking status", n, err)
}

func (r *BookingRepository) UpdateTimeRange(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	n, err := r.queries.UpdateBookingTimeRange(ctx, tx, sqlc.UpdateBookingTimeRangeParams{
		BookingID:        int64(b.ID()),
		BookingTimeStart: converter.ClockTimeToPgtype(b.Slot().Start()),
		BookingTimeEnd:   converter.ClockTimeToPgtype(b.Slot().End()),
		BookingHours:     pgconv.IntToInt32(b.DurationHours()),
	})
	return affected("failed to update booking time range", n, err)
}

func (r *BookingRepository) UpdateDetails(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	n, err := r.queries.UpdateBookingDetails(ctx, tx, converter.BookingToUpdateDetailsParams(b))
	return affected("failed to update booking details", n, err)
}

func (r *BookingRepository) UpdateProof(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	n, err := r.queries.UpdateBookingProof(ctx, tx, sqlc.UpdateBookingProofParams{
		BookingID:    int64(b.ID()),
		PaymentProof: pgconv.StringPtrToPgtype(b.ProofRef()),
	})
	return affected("failed to update booking proof", n, err)
}

func (r *BookingRepository) Delete(ctx context.Context, tx sqlc.DBTX, id booking.ID) error {
	n, err := r.queries.DeleteBooking(ctx, tx, int64(id))
	return affected("failed to delete booking", n, err)
}

func fromRow(row sqlc.Bookings) (*booking.Booking, error) {
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err)
	}
	return b, nil
}

func fromRows(rows []sqlc.Bookings) ([]*booking.Booking, error) {
	out, err := converter.BookingsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err)
	}
	return out, nil
}

// affected turns a zero-row update into NOT_FOUND.
func affected(msg string, n int64, err error) error {
	if err != nil {
		return infra.WrapRepoErr(msg, err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, msg+": no rows affected")
	}
	return nil
}
