package queries

import (
	"context"
	"strings"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/conflict"
	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/usecase/readmodel"
	"studio-booking/internal/usecase/shared"
)

const DefaultProofBaseURL = "/api/files/view"

type BookingReadStore interface {
	FindDetails(ctx context.Context, id int64) (*readmodel.BookingDetailsRM, error)
	FindByReference(ctx context.Context, ref string) (*readmodel.BookingRM, error)
	ListByDate(ctx context.Context, date schedule.Date, statuses []booking.Status) ([]*readmodel.BookingRM, error)
	ListBetween(ctx context.Context, from, to schedule.Date, statuses []booking.Status) ([]*readmodel.BookingRM, error)
	ListByStatus(ctx context.Context, status booking.Status) ([]*readmodel.BookingRM, error)
	ListByGuestEmail(ctx context.Context, email string) ([]*readmodel.BookingRM, error)
	ListUpcoming(ctx context.Context, from schedule.Date) ([]*readmodel.BookingRM, error)
	ListAll(ctx context.Context) ([]*readmodel.BookingRM, error)
	ListOrphanedPayments(ctx context.Context) ([]*readmodel.PaymentRM, error)
}

type BookingQueries interface {
	FindConflicts(ctx context.Context, date, start, end string, excludeID *booking.ID) (conflict.Result, error)
	GetBookingsForDate(ctx context.Context, date string) ([]*readmodel.BookingRM, error)
	GetBookingsForMonth(ctx context.Context, year, month int) ([]*readmodel.BookingRM, error)
	GetBooking(ctx context.Context, p shared.Principal, id booking.ID) (*readmodel.BookingDetailsRM, error)
	GetByReference(ctx context.Context, ref string) (*readmodel.BookingRM, error)
	ListPending(ctx context.Context, p shared.Principal) ([]*readmodel.BookingRM, error)
	ListByStatus(ctx context.Context, p shared.Principal, status string) ([]*readmodel.BookingRM, error)
	ListByGuestEmail(ctx context.Context, p shared.Principal, email string) ([]*readmodel.BookingRM, error)
	ListUpcoming(ctx context.Context) ([]*readmodel.BookingRM, error)
	ListAll(ctx context.Context, p shared.Principal) ([]*readmodel.BookingRM, error)
	ListOrphanedPayments(ctx context.Context, p shared.Principal) ([]*readmodel.PaymentRM, error)
}

type bookingQueriesImpl struct {
	store        BookingReadStore
	uow          shared.UnitOfWork
	bookings     shared.BookingRepository
	schedules    shared.ScheduleRepository
	clock        clock.Clock
	proofBaseURL string
}

func NewBookingQueries(
	store BookingReadStore,
	uow shared.UnitOfWork,
	bookings shared.BookingRepository,
	schedules shared.ScheduleRepository,
	clk clock.Clock,
	proofBaseURL string,
) BookingQueries {
	if proofBaseURL == "" {
		proofBaseURL = DefaultProofBaseURL
	}
	return &bookingQueriesImpl{
		store:        store,
		uow:          uow,
		bookings:     bookings,
		schedules:    schedules,
		clock:        clk,
		proofBaseURL: strings.TrimRight(proofBaseURL, "/"),
	}
}

// FindConflicts answers "what is in the way" outside any transaction, so
// the answer can be stale by the time a write runs.
func (q *bookingQueriesImpl) FindConflicts(ctx context.Context, date, start, end string, excludeID *booking.ID) (conflict.Result, error) {
	d, err := schedule.ParseDate(strings.TrimSpace(date))
	if err != nil {
		return conflict.Result{}, shared.Validation(err)
	}
	slot, err := schedule.ParseTimeSlot(strings.TrimSpace(start), strings.TrimSpace(end))
	if err != nil {
		return conflict.Result{}, shared.Validation(err)
	}

	var res conflict.Result
	err = q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var ferr error
		res, ferr = shared.FindConflicts(ctx, db, q.bookings, q.schedules, conflict.NewRequest(d, slot, excludeID))
		return ferr
	})
	if err != nil {
		return conflict.Result{}, err
	}
	return res, nil
}

func (q *bookingQueriesImpl) GetBookingsForDate(ctx context.Context, date string) ([]*readmodel.BookingRM, error) {
	d, err := schedule.ParseDate(strings.TrimSpace(date))
	if err != nil {
		return nil, shared.Validation(err)
	}
	rows, err := q.store.ListByDate(ctx, d, booking.CalendarStatuses)
	return rows, shared.FromRepo(err, "bookings")
}

func (q *bookingQueriesImpl) GetBookingsForMonth(ctx context.Context, year, month int) ([]*readmodel.BookingRM, error) {
	first, last, err := schedule.MonthBounds(year, month)
	if err != nil {
		return nil, shared.Validation(err)
	}
	rows, err := q.store.ListBetween(ctx, first, last, booking.CalendarStatuses)
	return rows, shared.FromRepo(err, "bookings")
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, p shared.Principal, id booking.ID) (*readmodel.BookingDetailsRM, error) {
	if !p.IsAdmin() {
		return nil, shared.Forbidden("view booking")
	}
	rm, err := q.store.FindDetails(ctx, int64(id))
	if err != nil {
		return nil, shared.FromRepo(err, "booking")
	}
	rm.ProofURL = q.proofURL(rm)
	return rm, nil
}

// proofURL prefers the payment's proof and falls back to the booking's.
func (q *bookingQueriesImpl) proofURL(rm *readmodel.BookingDetailsRM) *string {
	var ref string
	switch {
	case rm.Payment != nil && rm.Payment.Proof != nil && *rm.Payment.Proof != "":
		ref = *rm.Payment.Proof
	case rm.PaymentProof != nil && *rm.PaymentProof != "":
		ref = *rm.PaymentProof
	default:
		return nil
	}
	url := q.proofBaseURL + "/" + ref
	return &url
}

func (q *bookingQueriesImpl) GetByReference(ctx context.Context, ref string) (*readmodel.BookingRM, error) {
	r, err := booking.NewReference(ref)
	if err != nil {
		return nil, shared.Validation(err)
	}
	rm, err := q.store.FindByReference(ctx, r.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.NotFound("booking " + r.String())
		}
		return nil, shared.FromRepo(err, "booking")
	}
	return rm, nil
}

func (q *bookingQueriesImpl) ListPending(ctx context.Context, p shared.Principal) ([]*readmodel.BookingRM, error) {
	return q.ListByStatus(ctx, p, booking.StatusPending.String())
}

func (q *bookingQueriesImpl) ListByStatus(ctx context.Context, p shared.Principal, status string) ([]*readmodel.BookingRM, error) {
	if !p.IsAdmin() {
		return nil, shared.Forbidden("list bookings")
	}
	s, err := booking.ParseStatus(status)
	if err != nil {
		return nil, shared.Validation(err)
	}
	rows, err := q.store.ListByStatus(ctx, s)
	return rows, shared.FromRepo(err, "bookings")
}

func (q *bookingQueriesImpl) ListByGuestEmail(ctx context.Context, p shared.Principal, email string) ([]*readmodel.BookingRM, error) {
	if !p.IsAdmin() {
		return nil, shared.Forbidden("list bookings")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, shared.Validation(booking.ErrInvalidEmail)
	}
	rows, err := q.store.ListByGuestEmail(ctx, email)
	return rows, shared.FromRepo(err, "bookings")
}

// ListUpcoming returns every non-cancelled booking from today on. It backs
// the public "booked slots" view.
func (q *bookingQueriesImpl) ListUpcoming(ctx context.Context) ([]*readmodel.BookingRM, error) {
	today := schedule.DateOf(q.clock.Now())
	rows, err := q.store.ListUpcoming(ctx, today)
	return rows, shared.FromRepo(err, "bookings")
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context, p shared.Principal) ([]*readmodel.BookingRM, error) {
	if !p.IsAdmin() {
		return nil, shared.Forbidden("list bookings")
	}
	rows, err := q.store.ListAll(ctx)
	return rows, shared.FromRepo(err, "bookings")
}

// ListOrphanedPayments surfaces payments left without a booking, which only
// an interrupted delete can produce.
func (q *bookingQueriesImpl) ListOrphanedPayments(ctx context.Context, p shared.Principal) ([]*readmodel.PaymentRM, error) {
	if !p.IsAdmin() {
		return nil, shared.Forbidden("list orphaned payments")
	}
	rows, err := q.store.ListOrphanedPayments(ctx)
	return rows, shared.FromRepo(err, "payments")
}
