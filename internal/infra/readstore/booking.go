package readstore

import (
	"context"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/repository/converter"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
	"studio-booking/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBookingDetails(ctx context.Context, db sqlc.DBTX, bookingID int64) (sqlc.GetBookingDetailsRow, error)
	GetBookingByReference(ctx context.Context, db sqlc.DBTX, bookingReference string) (sqlc.Bookings, error)
	ListBookingsByDateAndStatuses(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByDateAndStatusesParams) ([]sqlc.Bookings, error)
	ListBookingsBetweenDates(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsBetweenDatesParams) ([]sqlc.Bookings, error)
	ListBookingsByStatus(ctx context.Context, db sqlc.DBTX, bookingStatus string) ([]sqlc.Bookings, error)
	ListBookingsByGuestEmail(ctx context.Context, db sqlc.DBTX, guestEmail string) ([]sqlc.Bookings, error)
	ListUpcomingBookings(ctx context.Context, db sqlc.DBTX, bookingDate pgtype.Date) ([]sqlc.Bookings, error)
	ListAllBookings(ctx context.Context, db sqlc.DBTX) ([]sqlc.Bookings, error)
	ListOrphanedPayments(ctx context.Context, db sqlc.DBTX) ([]sqlc.Payments, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindDetails(ctx context.Context, id int64) (*readmodel.BookingDetailsRM, error) {
	row, err := r.queries.GetBookingDetails(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking details", err)
	}
	return toBookingDetailsRM(row), nil
}

func (r *BookingReadStore) FindByReference(ctx context.Context, ref string) (*readmodel.BookingRM, error) {
	row, err := r.queries.GetBookingByReference(ctx, r.db, ref)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by reference", err)
	}
	return toBookingRM(row), nil
}

func (r *BookingReadStore) ListByDate(ctx context.Context, date schedule.Date, statuses []booking.Status) ([]*readmodel.BookingRM, error) {
	rows, err := r.queries.ListBookingsByDateAndStatuses(ctx, r.db, sqlc.ListBookingsByDateAndStatusesParams{
		BookingDate: converter.DateToPgtype(date),
		Statuses:    statusStrings(statuses),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for date", err)
	}
	return toBookingRMs(rows), nil
}

func (r *BookingReadStore) ListBetween(ctx context.Context, from, to schedule.Date, statuses []booking.Status) ([]*readmodel.BookingRM, error) {
	rows, err := r.queries.ListBookingsBetweenDates(ctx, r.db, sqlc.ListBookingsBetweenDatesParams{
		FromDate: converter.DateToPgtype(from),
		ToDate:   converter.DateToPgtype(to),
		Statuses: statusStrings(statuses),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings between dates", err)
	}
	return toBookingRMs(rows), nil
}

func (r *BookingReadStore) ListByStatus(ctx context.Context, status booking.Status) ([]*readmodel.BookingRM, error) {
	rows, err := r.queries.ListBookingsByStatus(ctx, r.db, status.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by status", err)
	}
	return toBookingRMs(rows), nil
}

func (r *BookingReadStore) ListByGuestEmail(ctx context.Context, email string) ([]*readmodel.BookingRM, error) {
	rows, err := r.queries.ListBookingsByGuestEmail(ctx, r.db, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by email", err)
	}
	return toBookingRMs(rows), nil
}

func (r *BookingReadStore) ListUpcoming(ctx context.Context, from schedule.Date) ([]*readmodel.BookingRM, error) {
	rows, err := r.queries.ListUpcomingBookings(ctx, r.db, converter.DateToPgtype(from))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming bookings", err)
	}
	return toBookingRMs(rows), nil
}

func (r *BookingReadStore) ListAll(ctx context.Context) ([]*readmodel.BookingRM, error) {
	rows, err := r.queries.ListAllBookings(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return toBookingRMs(rows), nil
}

func (r *BookingReadStore) ListOrphanedPayments(ctx context.Context) ([]*readmodel.PaymentRM, error) {
	rows, err := r.queries.ListOrphanedPayments(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orphaned payments", err)
	}
	out := make([]*readmodel.PaymentRM, len(rows))
	for i, row := range rows {
		out[i] = &readmodel.PaymentRM{
			ID:             row.PaymentID,
			BookingID:      pgconv.Int64PtrFromPgtype(row.BookingID),
			AmountCents:    row.AmountCents,
			RemainingCents: row.RemainingCents,
			Type:           row.PaymentType,
			Method:         row.PaymentMethod,
			Status:         row.PaymentStatus,
			Proof:          pgconv.StringPtrFromPgtype(row.PaymentProof),
			PaidAt:         pgconv.TimeFromPgtype(row.PaymentDate),
		}
	}
	return out, nil
}

func statusStrings(statuses []booking.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}

func toBookingRMs(rows []sqlc.Bookings) []*readmodel.BookingRM {
	out := make([]*readmodel.BookingRM, len(rows))
	for i, row := range rows {
		out[i] = toBookingRM(row)
	}
	return out
}

func toBookingRM(row sqlc.Bookings) *readmodel.BookingRM {
	return &readmodel.BookingRM{
		ID:                row.BookingID,
		Reference:         row.BookingReference,
		Date:              formatDate(row.BookingDate),
		StartTime:         formatClock(row.BookingTimeStart),
		EndTime:           formatClock(row.BookingTimeEnd),
		DurationHours:     row.BookingHours,
		GuestName:         row.GuestName,
		GuestEmail:        row.GuestEmail,
		GuestPhone:        row.GuestPhone,
		Location:          row.Location,
		Category:          row.CategoryName,
		PackageName:       row.PackageName,
		PackagePriceCents: row.PackagePriceCents,
		SpecialRequests:   row.SpecialRequests,
		Status:            row.BookingStatus,
		AdminNotes:        pgconv.StringPtrFromPgtype(row.AdminNotes),
		PaymentID:         row.PaymentID,
		PaymentProof:      pgconv.StringPtrFromPgtype(row.PaymentProof),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func toBookingDetailsRM(row sqlc.GetBookingDetailsRow) *readmodel.BookingDetailsRM {
	rm := &readmodel.BookingDetailsRM{
		BookingRM: *toBookingRM(sqlc.Bookings{
			BookingID:         row.BookingID,
			BookingReference:  row.BookingReference,
			GuestName:         row.GuestName,
			GuestEmail:        row.GuestEmail,
			GuestPhone:        row.GuestPhone,
			BookingDate:       row.BookingDate,
			BookingTimeStart:  row.BookingTimeStart,
			BookingTimeEnd:    row.BookingTimeEnd,
			BookingHours:      row.BookingHours,
			Location:          row.Location,
			CategoryName:      row.CategoryName,
			PackageName:       row.PackageName,
			PackagePriceCents: row.PackagePriceCents,
			SpecialRequests:   row.SpecialRequests,
			BookingStatus:     row.BookingStatus,
			AdminNotes:        row.AdminNotes,
			PaymentID:         row.PaymentID,
			PaymentProof:      row.PaymentProof,
			CreatedAt:         row.CreatedAt,
		}),
	}
	// LEFT JOIN: payment columns are null for a dangling payment id.
	if row.PaymentAmountCents.Valid {
		rm.Payment = &readmodel.PaymentSummaryRM{
			AmountCents:    row.PaymentAmountCents.Int64,
			RemainingCents: row.PaymentRemainingCents.Int64,
			Type:           row.PaymentType.String,
			Method:         row.PaymentMethod.String,
			Status:         row.PaymentStatus.String,
			Proof:          pgconv.StringPtrFromPgtype(row.PaymentProof_2),
		}
	}
	return rm
}
