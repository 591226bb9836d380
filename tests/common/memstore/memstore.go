//go:build unit

// Package memstore is an in-memory UnitOfWork for usecase tests. Every
// transaction holds one store-wide lock and is rolled back on error.
package memstore

import (
	"context"
	"sort"
	"sync"

	"studio-booking/internal/domain/admin"
	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/conflict"
	"studio-booking/internal/domain/payment"
	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Operation names recorded in Ops and accepted by FailOn.
const (
	OpPaymentCreate   = "payments.create"
	OpPaymentLink     = "payments.link"
	OpPaymentProof    = "payments.update_proof"
	OpPaymentUnlink   = "payments.unlink"
	OpPaymentDelete   = "payments.delete"
	OpBookingCreate   = "bookings.create"
	OpBookingStatus   = "bookings.update_status"
	OpBookingTime     = "bookings.update_time"
	OpBookingDetails  = "bookings.update_details"
	OpBookingProof    = "bookings.update_proof"
	OpBookingDelete   = "bookings.delete"
	OpBookingOverlaps = "bookings.find_overlapping"
	OpScheduleList    = "schedules.list"
	OpScheduleReplace = "schedules.replace"
	OpLockDate        = "lock_date"
)

type state struct {
	bookings    map[booking.ID]*booking.Booking
	payments    map[payment.ID]*payment.Payment
	ranges      []schedule.UnavailableRange
	admins      map[uuid.UUID]*admin.Admin
	nextBooking int64
	nextPayment int64
	nextRange   int64
}

func (s state) clone() state {
	c := s
	c.bookings = make(map[booking.ID]*booking.Booking, len(s.bookings))
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	c.payments = make(map[payment.ID]*payment.Payment, len(s.payments))
	for k, v := range s.payments {
		c.payments[k] = v
	}
	c.admins = make(map[uuid.UUID]*admin.Admin, len(s.admins))
	for k, v := range s.admins {
		c.admins[k] = v
	}
	c.ranges = append([]schedule.UnavailableRange(nil), s.ranges...)
	return c
}

type Store struct {
	mu       sync.Mutex
	st       state
	ops      []string
	locks    []string
	failures map[string]error
	races    map[string]func(*state)
	raced    []func(*state)
	commits  int
}

func New() *Store {
	return &Store{
		st: state{
			bookings: map[booking.ID]*booking.Booking{},
			payments: map[payment.ID]*payment.Payment{},
			admins:   map[uuid.UUID]*admin.Admin{},
		},
		failures: map[string]error{},
		races:    map[string]func(*state){},
	}
}

var _ shared.UnitOfWork = (*Store)(nil)

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.st.clone()
	defer func() { s.raced = nil }()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.st = snap
		// writes committed by another session survive our rollback
		for _, apply := range s.raced {
			apply(&s.st)
		}
		return err
	}
	s.commits++
	return nil
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, nil)
}

// FailOn makes the named operation return err until cleared with a nil err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// RaceOn commits b and p as another session would, the first time op runs.
// The rows appear mid-transaction and outlive its rollback.
func (s *Store) RaceOn(op string, b *booking.Booking, p *payment.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.races[op] = func(st *state) {
		st.payments[p.ID()] = p
		st.bookings[b.ID()] = b
		if int64(p.ID()) > st.nextPayment {
			st.nextPayment = int64(p.ID())
		}
		if int64(b.ID()) > st.nextBooking {
			st.nextBooking = int64(b.ID())
		}
	}
}

// Ops lists the write operations and lookups performed, in order.
func (s *Store) Ops() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ops...)
}

func (s *Store) LockedDates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.locks...)
}

func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

func (s *Store) record(op string) error {
	s.ops = append(s.ops, op)
	if apply, ok := s.races[op]; ok {
		delete(s.races, op)
		apply(&s.st)
		s.raced = append(s.raced, apply)
	}
	return s.failures[op]
}

// Seeding and inspection. These take the lock and must not be called from
// inside a transaction.

func (s *Store) SeedBooking(b *booking.Booking) *booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID() == 0 {
		s.st.nextBooking++
		b = b.WithID(booking.ID(s.st.nextBooking))
	} else if int64(b.ID()) > s.st.nextBooking {
		s.st.nextBooking = int64(b.ID())
	}
	s.st.bookings[b.ID()] = b
	return b
}

func (s *Store) SeedPayment(p *payment.Payment) *payment.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID() == 0 {
		s.st.nextPayment++
		p = p.WithID(payment.ID(s.st.nextPayment))
	} else if int64(p.ID()) > s.st.nextPayment {
		s.st.nextPayment = int64(p.ID())
	}
	s.st.payments[p.ID()] = p
	return p
}

func (s *Store) SeedRange(r schedule.UnavailableRange) schedule.UnavailableRange {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.nextRange++
	r = schedule.ReconstructUnavailableRange(s.st.nextRange, r.Date(), r.Slot())
	s.st.ranges = append(s.st.ranges, r)
	return r
}

func (s *Store) Booking(id booking.ID) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.st.bookings[id]
	return b, ok
}

func (s *Store) Payment(id payment.ID) (*payment.Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.st.payments[id]
	return p, ok
}

func (s *Store) Bookings() []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*booking.Booking, 0, len(s.st.bookings))
	for _, b := range s.st.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func (s *Store) Payments() []*payment.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*payment.Payment, 0, len(s.st.payments))
	for _, p := range s.st.payments {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func (s *Store) Ranges() []schedule.UnavailableRange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]schedule.UnavailableRange(nil), s.st.ranges...)
}

// Repositories usable outside a transaction, as the query layer does. Their
// callers must already hold the store through Within or WithDB.

func (s *Store) BookingRepository() shared.BookingRepository   { return &bookingRepo{s: s} }
func (s *Store) ScheduleRepository() shared.ScheduleRepository { return &scheduleRepo{s: s} }

type memTx struct {
	s *Store
}

func (t *memTx) Bookings() shared.BookingRepository   { return &bookingRepo{s: t.s} }
func (t *memTx) Payments() shared.PaymentRepository   { return &paymentRepo{s: t.s} }
func (t *memTx) Schedules() shared.ScheduleRepository { return &scheduleRepo{s: t.s} }
func (t *memTx) Admins() shared.AdminRepository       { return &adminRepo{s: t.s} }
func (t *memTx) DB() sqlc.DBTX                        { return nil }

func (t *memTx) LockDate(_ context.Context, date schedule.Date) error {
	if err := t.s.record(OpLockDate); err != nil {
		return err
	}
	t.s.locks = append(t.s.locks, date.String())
	return nil
}

func notFound(what string) error {
	return infra.NewRepoErr(infra.KindNotFound, what+" not found")
}

func duplicate(constraint string) error {
	return infra.WrapRepoErr("duplicate key", &pgconn.PgError{Code: "23505", ConstraintName: constraint})
}

type bookingRepo struct{ s *Store }

func (r *bookingRepo) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) (booking.ID, error) {
	if err := r.s.record(OpBookingCreate); err != nil {
		return 0, err
	}
	for _, existing := range r.s.st.bookings {
		if existing.Reference() == b.Reference() {
			return 0, duplicate(infra.ConstraintBookingReference)
		}
	}
	if _, ok := r.s.st.payments[b.PaymentID()]; !ok {
		return 0, infra.WrapRepoErr("insert booking", &pgconn.PgError{Code: "23503"})
	}
	r.s.st.nextBooking++
	id := booking.ID(r.s.st.nextBooking)
	r.s.st.bookings[id] = b.WithID(id)
	return id, nil
}

func (r *bookingRepo) FindByID(_ context.Context, _ sqlc.DBTX, id booking.ID) (*booking.Booking, error) {
	b, ok := r.s.st.bookings[id]
	if !ok {
		return nil, notFound("booking")
	}
	return b, nil
}

func (r *bookingRepo) FindByIDForUpdate(ctx context.Context, db sqlc.DBTX, id booking.ID) (*booking.Booking, error) {
	return r.FindByID(ctx, db, id)
}

func (r *bookingRepo) FindByReference(_ context.Context, _ sqlc.DBTX, ref booking.Reference) (*booking.Booking, error) {
	for _, b := range r.s.st.bookings {
		if b.Reference() == ref {
			return b, nil
		}
	}
	return nil, nil
}

func (r *bookingRepo) FindOverlapping(_ context.Context, _ sqlc.DBTX, req conflict.Request) ([]*booking.Booking, error) {
	if err := r.s.record(OpBookingOverlaps); err != nil {
		return nil, err
	}
	var out []*booking.Booking
	for _, b := range r.s.st.bookings {
		if b.Date().Equal(req.Date) && !b.IsCancelled() && b.Slot().Overlaps(req.Slot) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot().Start().Before(out[j].Slot().Start()) })
	return out, nil
}

func (r *bookingRepo) update(op string, b *booking.Booking) error {
	if err := r.s.record(op); err != nil {
		return err
	}
	if _, ok := r.s.st.bookings[b.ID()]; !ok {
		return notFound("booking")
	}
	r.s.st.bookings[b.ID()] = b
	return nil
}

func (r *bookingRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	return r.update(OpBookingStatus, b)
}

func (r *bookingRepo) UpdateTimeRange(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	return r.update(OpBookingTime, b)
}

func (r *bookingRepo) UpdateDetails(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	return r.update(OpBookingDetails, b)
}

func (r *bookingRepo) UpdateProof(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	return r.update(OpBookingProof, b)
}

func (r *bookingRepo) Delete(_ context.Context, _ sqlc.DBTX, id booking.ID) error {
	if err := r.s.record(OpBookingDelete); err != nil {
		return err
	}
	if _, ok := r.s.st.bookings[id]; !ok {
		return notFound("booking")
	}
	delete(r.s.st.bookings, id)
	return nil
}

type paymentRepo struct{ s *Store }

func (r *paymentRepo) CreateOrphan(_ context.Context, _ sqlc.DBTX, p *payment.Payment) (payment.ID, error) {
	if err := r.s.record(OpPaymentCreate); err != nil {
		return 0, err
	}
	r.s.st.nextPayment++
	id := payment.ID(r.s.st.nextPayment)
	r.s.st.payments[id] = p.WithID(id)
	return id, nil
}

func (r *paymentRepo) FindByID(_ context.Context, _ sqlc.DBTX, id payment.ID) (*payment.Payment, error) {
	p, ok := r.s.st.payments[id]
	if !ok {
		return nil, notFound("payment")
	}
	return p, nil
}

func (r *paymentRepo) FindByIDForUpdate(ctx context.Context, db sqlc.DBTX, id payment.ID) (*payment.Payment, error) {
	return r.FindByID(ctx, db, id)
}

func (r *paymentRepo) update(op string, p *payment.Payment) error {
	if err := r.s.record(op); err != nil {
		return err
	}
	if _, ok := r.s.st.payments[p.ID()]; !ok {
		return notFound("payment")
	}
	r.s.st.payments[p.ID()] = p
	return nil
}

func (r *paymentRepo) Link(_ context.Context, _ sqlc.DBTX, p *payment.Payment) error {
	return r.update(OpPaymentLink, p)
}

func (r *paymentRepo) UpdateProof(_ context.Context, _ sqlc.DBTX, p *payment.Payment) error {
	return r.update(OpPaymentProof, p)
}

func (r *paymentRepo) UnlinkFromBooking(_ context.Context, _ sqlc.DBTX, bookingID booking.ID) error {
	if err := r.s.record(OpPaymentUnlink); err != nil {
		return err
	}
	for id, p := range r.s.st.payments {
		if p.BookingID() != nil && *p.BookingID() == int64(bookingID) {
			r.s.st.payments[id] = p.Unlinked()
		}
	}
	return nil
}

func (r *paymentRepo) Delete(_ context.Context, _ sqlc.DBTX, id payment.ID) error {
	if err := r.s.record(OpPaymentDelete); err != nil {
		return err
	}
	for _, b := range r.s.st.bookings {
		if b.PaymentID() == id {
			return infra.WrapRepoErr("delete payment", &pgconn.PgError{Code: "23503"})
		}
	}
	if _, ok := r.s.st.payments[id]; !ok {
		return notFound("payment")
	}
	delete(r.s.st.payments, id)
	return nil
}

type scheduleRepo struct{ s *Store }

func (r *scheduleRepo) ListByDate(_ context.Context, _ sqlc.DBTX, date schedule.Date) ([]schedule.UnavailableRange, error) {
	if err := r.s.record(OpScheduleList); err != nil {
		return nil, err
	}
	var out []schedule.UnavailableRange
	for _, rg := range r.s.st.ranges {
		if rg.Date().Equal(date) {
			out = append(out, rg)
		}
	}
	return out, nil
}

func (r *scheduleRepo) Replace(_ context.Context, _ sqlc.DBTX, day schedule.DaySchedule) ([]schedule.UnavailableRange, error) {
	if err := r.s.record(OpScheduleReplace); err != nil {
		return nil, err
	}
	kept := r.s.st.ranges[:0:0]
	for _, rg := range r.s.st.ranges {
		if !rg.Date().Equal(day.Date()) {
			kept = append(kept, rg)
		}
	}
	saved := make([]schedule.UnavailableRange, 0, len(day.Ranges()))
	for _, rg := range day.Ranges() {
		r.s.st.nextRange++
		saved = append(saved, schedule.ReconstructUnavailableRange(r.s.st.nextRange, rg.Date(), rg.Slot()))
	}
	r.s.st.ranges = append(kept, saved...)
	return saved, nil
}

type adminRepo struct{ s *Store }

func (r *adminRepo) Create(_ context.Context, _ sqlc.DBTX, a *admin.Admin) (uuid.UUID, error) {
	for _, existing := range r.s.st.admins {
		if existing.Email() == a.Email() {
			return uuid.Nil, duplicate("uq_admins_email")
		}
	}
	r.s.st.admins[a.ID()] = a
	return a.ID(), nil
}

func (r *adminRepo) UpdateLastLogin(_ context.Context, _ sqlc.DBTX, adminID uuid.UUID) error {
	if _, ok := r.s.st.admins[adminID]; !ok {
		return notFound("admin")
	}
	return nil
}

func (s *Store) Admins() []*admin.Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*admin.Admin, 0, len(s.st.admins))
	for _, a := range s.st.admins {
		out = append(out, a)
	}
	return out
}
