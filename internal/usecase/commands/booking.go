package commands

import (
	"context"
	"log/slog"
	"strings"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/conflict"
	"studio-booking/internal/domain/payment"
	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"
)

var (
	ErrProofRequired = errs.New("payment proof is required")
	ErrProofMissing  = errs.New("payment proof not found in storage")
)

type BookingCommands interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error)
	CreateBookingWithProof(ctx context.Context, in CreateBookingInput, proofRef string) (*CreateBookingResult, error)
	CreateManualBooking(ctx context.Context, p shared.Principal, in CreateBookingInput) (*CreateBookingResult, error)
	AttachPaymentProof(ctx context.Context, id booking.ID, proofRef string) (*booking.Booking, error)
	ApproveBooking(ctx context.Context, p shared.Principal, id booking.ID, notes string) (*booking.Booking, error)
	RejectBooking(ctx context.Context, p shared.Principal, id booking.ID, reason string) (*booking.Booking, error)
	SetStatus(ctx context.Context, p shared.Principal, id booking.ID, status string) (*booking.Booking, error)
	UpdateBookingTimeRange(ctx context.Context, id booking.ID, start, end string) (*booking.Booking, error)
	UpdateBookingDetails(ctx context.Context, p shared.Principal, id booking.ID, patch booking.DetailsPatch) (*booking.Booking, error)
	DeleteBooking(ctx context.Context, p shared.Principal, id booking.ID) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	proofs   shared.ProofStore
	notifier shared.Notifier
	clock    clock.Clock
	opts     Options
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	proofs shared.ProofStore,
	notifier shared.Notifier,
	clk clock.Clock,
	opts Options,
) BookingCommands {
	if opts.ReferenceRetries < 1 {
		opts.ReferenceRetries = 1
	}
	if opts.DefaultManualEmail == "" {
		opts.DefaultManualEmail = booking.DefaultManualEmail
	}
	return &bookingCommandsImpl{
		uow:      uow,
		proofs:   proofs,
		notifier: notifier,
		clock:    clk,
		opts:     opts,
	}
}

func (u *bookingCommandsImpl) CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error) {
	plan, err := u.planCreation(in, booking.StatusPending)
	if err != nil {
		return nil, err
	}
	return u.create(ctx, plan)
}

func (u *bookingCommandsImpl) CreateBookingWithProof(ctx context.Context, in CreateBookingInput, proofRef string) (*CreateBookingResult, error) {
	proofRef = strings.TrimSpace(proofRef)
	if proofRef == "" {
		return nil, shared.Validation(ErrProofRequired)
	}
	plan, err := u.planCreation(in, booking.StatusPending)
	if err != nil {
		return nil, err
	}
	if err := u.ensureProofStored(ctx, proofRef); err != nil {
		return nil, err
	}
	plan.proofRef = &proofRef
	plan.payment.ProofRef = &proofRef
	return u.create(ctx, plan)
}

// CreateManualBooking records a booking taken by an administrator. It is
// confirmed and paid at once but still goes through the conflict check.
func (u *bookingCommandsImpl) CreateManualBooking(ctx context.Context, p shared.Principal, in CreateBookingInput) (*CreateBookingResult, error) {
	if !p.IsAdmin() {
		return nil, shared.Forbidden("manual booking")
	}
	if strings.TrimSpace(in.GuestEmail) == "" {
		in.GuestEmail = u.opts.DefaultManualEmail
	}
	plan, err := u.planCreation(in, booking.StatusConfirmed)
	if err != nil {
		return nil, err
	}
	plan.paymentStatus = payment.StatusCompleted
	return u.create(ctx, plan)
}

func (u *bookingCommandsImpl) create(ctx context.Context, plan creationPlan) (*CreateBookingResult, error) {
	attempts := 1
	if plan.generated {
		attempts = u.opts.ReferenceRetries
	}

	for attempt := 1; ; attempt++ {
		res, err := u.createOnce(ctx, plan)
		if err == nil {
			if !res.Replayed {
				u.notify(ctx, shared.Event{
					Kind:       shared.EventBookingCreated,
					BookingID:  int64(res.BookingID),
					Reference:  res.Reference.String(),
					Date:       plan.date.String(),
					Status:     res.Status.String(),
					GuestEmail: plan.guest.Email(),
				})
			}
			return res, nil
		}
		if !plan.generated && errs.Is(err, errReferenceTaken) {
			// a concurrent request with the same reference won the insert
			replay, rerr := u.replayAfterInsertRace(ctx, plan)
			if rerr != nil {
				return nil, shared.FromRepo(rerr, "booking")
			}
			if replay != nil {
				return replay, nil
			}
		}
		if plan.generated && errs.Is(err, errReferenceTaken) && attempt < attempts {
			slog.Warn("generated booking reference collided, retrying",
				"reference", plan.reference.String(),
				"attempt", attempt)
			plan.reference = booking.GenerateReference()
			continue
		}
		return nil, shared.FromRepo(err, "booking")
	}
}

func (u *bookingCommandsImpl) createOnce(ctx context.Context, plan creationPlan) (*CreateBookingResult, error) {
	var result *CreateBookingResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// the unit of work may re-run this closure
		result = nil
		if !plan.generated {
			replay, err := findReplay(ctx, tx, plan)
			if err != nil {
				return err
			}
			if replay != nil {
				result = replay
				return nil
			}
		}
		c := newCreation(plan, u.clock.Now())
		if err := c.run(ctx, tx); err != nil {
			return err
		}
		result = c.result()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// findReplay treats a repeated caller reference for the same date, slot and
// guest as a retry of the original request.
func findReplay(ctx context.Context, tx shared.Tx, plan creationPlan) (*CreateBookingResult, error) {
	existing, err := tx.Bookings().FindByReference(ctx, tx.DB(), plan.reference)
	if err != nil {
		return nil, shared.FromRepo(err, "booking")
	}
	if existing == nil {
		return nil, nil
	}
	if !existing.Date().Equal(plan.date) || existing.Slot() != plan.slot ||
		existing.Guest().Email() != plan.guest.Email() {
		return nil, shared.NewReferenceConflict(plan.reference)
	}
	return &CreateBookingResult{
		BookingID: existing.ID(),
		PaymentID: existing.PaymentID(),
		Reference: existing.Reference(),
		Status:    existing.Status(),
		Replayed:  true,
	}, nil
}

func (u *bookingCommandsImpl) replayAfterInsertRace(ctx context.Context, plan creationPlan) (*CreateBookingResult, error) {
	var replay *CreateBookingResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		replay, err = findReplay(ctx, tx, plan)
		return err
	})
	return replay, err
}

func (u *bookingCommandsImpl) ensureProofStored(ctx context.Context, ref string) error {
	ok, err := u.proofs.Exists(ctx, ref)
	if err != nil {
		return shared.Storage(err, "failed to check payment proof")
	}
	if !ok {
		return shared.Validation(errs.Wrapf(ErrProofMissing, "ref %q", ref))
	}
	return nil
}

// AttachPaymentProof records an uploaded proof on the booking and its
// payment. The payment becomes COMPLETED; no conflict check runs.
func (u *bookingCommandsImpl) AttachPaymentProof(ctx context.Context, id booking.ID, proofRef string) (*booking.Booking, error) {
	proofRef = strings.TrimSpace(proofRef)
	if proofRef == "" {
		return nil, shared.Validation(ErrProofRequired)
	}
	if err := u.ensureProofStored(ctx, proofRef); err != nil {
		return nil, err
	}

	var updated *booking.Booking
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return shared.FromRepo(err, "booking")
		}
		p, err := tx.Payments().FindByIDForUpdate(ctx, tx.DB(), b.PaymentID())
		if err != nil {
			return shared.FromRepo(err, "payment")
		}
		if err := tx.Payments().UpdateProof(ctx, tx.DB(), p.WithProof(proofRef)); err != nil {
			return shared.FromRepo(err, "payment")
		}
		withProof := b.WithProof(proofRef)
		if err := tx.Bookings().UpdateProof(ctx, tx.DB(), withProof); err != nil {
			return shared.FromRepo(err, "booking")
		}
		updated = withProof
		return nil
	})
	if err != nil {
		return nil, shared.FromRepo(err, "booking")
	}

	u.notifyBooking(ctx, shared.EventProofAttached, updated)
	return updated, nil
}

func (u *bookingCommandsImpl) ApproveBooking(ctx context.Context, p shared.Principal, id booking.ID, notes string) (*booking.Booking, error) {
	if !p.IsAdmin() {
		return nil, shared.Forbidden("approve booking")
	}
	b, err := u.changeStatus(ctx, id, func(b *booking.Booking) (*booking.Booking, error) {
		return b.Approve(notes)
	})
	if err != nil {
		return nil, err
	}
	u.notifyBooking(ctx, shared.EventBookingConfirmed, b)
	return b, nil
}

func (u *bookingCommandsImpl) RejectBooking(ctx context.Context, p shared.Principal, id booking.ID, reason string) (*booking.Booking, error) {
	if !p.IsAdmin() {
		return nil, shared.Forbidden("reject booking")
	}
	b, err := u.changeStatus(ctx, id, func(b *booking.Booking) (*booking.Booking, error) {
		return b.Reject(reason)
	})
	if err != nil {
		return nil, err
	}
	u.notifyBooking(ctx, shared.EventBookingCancelled, b)
	return b, nil
}

func (u *bookingCommandsImpl) SetStatus(ctx context.Context, p shared.Principal, id booking.ID, status string) (*booking.Booking, error) {
	if !p.IsAdmin() {
		return nil, shared.Forbidden("set booking status")
	}
	s, err := booking.ParseStatus(status)
	if err != nil {
		return nil, shared.Validation(err)
	}
	b, err := u.changeStatus(ctx, id, func(b *booking.Booking) (*booking.Booking, error) {
		return b.OverrideStatus(s)
	})
	if err != nil {
		return nil, err
	}
	u.notifyBooking(ctx, shared.EventBookingStatus, b)
	return b, nil
}

// changeStatus is one read-modify-write; transitions never re-check the
// calendar.
func (u *bookingCommandsImpl) changeStatus(
	ctx context.Context,
	id booking.ID,
	apply func(*booking.Booking) (*booking.Booking, error),
) (*booking.Booking, error) {
	var updated *booking.Booking
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return shared.FromRepo(err, "booking")
		}
		next, err := apply(b)
		if err != nil {
			return shared.Validation(err)
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), next); err != nil {
			return shared.FromRepo(err, "booking")
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, shared.FromRepo(err, "booking")
	}
	return updated, nil
}

// UpdateBookingTimeRange moves a booking within its date. The booking never
// conflicts with itself.
func (u *bookingCommandsImpl) UpdateBookingTimeRange(ctx context.Context, id booking.ID, start, end string) (*booking.Booking, error) {
	slot, err := schedule.ParseTimeSlot(start, end)
	if err != nil {
		return nil, shared.Validation(err)
	}

	var updated *booking.Booking
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return shared.FromRepo(err, "booking")
		}
		if err := tx.LockDate(ctx, b.Date()); err != nil {
			return shared.Storage(err, "failed to lock booking date")
		}
		bookingID := b.ID()
		res, err := shared.FindConflicts(ctx, tx.DB(), tx.Bookings(), tx.Schedules(),
			conflict.NewRequest(b.Date(), slot, &bookingID))
		if err != nil {
			return err
		}
		if !res.Empty() {
			return shared.NewConflictError(res)
		}
		moved := b.WithSlot(slot)
		if err := tx.Bookings().UpdateTimeRange(ctx, tx.DB(), moved); err != nil {
			return shared.FromRepo(err, "booking")
		}
		updated = moved
		return nil
	})
	if err != nil {
		return nil, shared.FromRepo(err, "booking")
	}

	u.notifyBooking(ctx, shared.EventBookingRescheduled, updated)
	return updated, nil
}

func (u *bookingCommandsImpl) UpdateBookingDetails(ctx context.Context, p shared.Principal, id booking.ID, patch booking.DetailsPatch) (*booking.Booking, error) {
	if !p.IsAdmin() {
		return nil, shared.Forbidden("update booking")
	}

	var updated *booking.Booking
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return shared.FromRepo(err, "booking")
		}
		if !patch.ChangesFrom(b) {
			updated = b
			return nil
		}
		next, err := b.WithDetails(patch)
		if err != nil {
			return shared.Validation(err)
		}
		if next.Details().PackagePrice() != b.Details().PackagePrice() {
			if err := repriceLinkedPayment(ctx, tx, next); err != nil {
				return err
			}
		}
		if err := tx.Bookings().UpdateDetails(ctx, tx.DB(), next); err != nil {
			return shared.FromRepo(err, "booking")
		}
		updated = next
		return nil
	})
	if err != nil {
		return nil, shared.FromRepo(err, "booking")
	}
	return updated, nil
}

// repriceLinkedPayment recomputes the linked payment's remaining balance
// against the booking's new package price. Caller holds the booking lock.
func repriceLinkedPayment(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
	p, err := tx.Payments().FindByIDForUpdate(ctx, tx.DB(), b.PaymentID())
	if err != nil {
		return shared.FromRepo(err, "payment")
	}
	repriced, err := p.LinkTo(int64(b.ID()), b.Details().PackagePrice())
	if err != nil {
		return shared.Validation(err)
	}
	if err := tx.Payments().Link(ctx, tx.DB(), repriced); err != nil {
		return shared.FromRepo(err, "payment")
	}
	return nil
}

// DeleteBooking removes a booking and its payment. The payment's back
// reference is cleared first so neither row is left dangling.
func (u *bookingCommandsImpl) DeleteBooking(ctx context.Context, p shared.Principal, id booking.ID) error {
	if !p.IsAdmin() {
		return shared.Forbidden("delete booking")
	}

	var deleted *booking.Booking
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return shared.FromRepo(err, "booking")
		}
		if err := tx.Payments().UnlinkFromBooking(ctx, tx.DB(), b.ID()); err != nil {
			return shared.FromRepo(err, "payment")
		}
		if err := tx.Bookings().Delete(ctx, tx.DB(), b.ID()); err != nil {
			return shared.FromRepo(err, "booking")
		}
		if err := tx.Payments().Delete(ctx, tx.DB(), b.PaymentID()); err != nil {
			return shared.FromRepo(err, "payment")
		}
		deleted = b
		return nil
	})
	if err != nil {
		return shared.FromRepo(err, "booking")
	}

	u.notifyBooking(ctx, shared.EventBookingDeleted, deleted)
	return nil
}

func (u *bookingCommandsImpl) notifyBooking(ctx context.Context, kind shared.EventKind, b *booking.Booking) {
	u.notify(ctx, shared.Event{
		Kind:       kind,
		BookingID:  int64(b.ID()),
		Reference:  b.Reference().String(),
		Date:       b.Date().String(),
		Status:     b.Status().String(),
		GuestEmail: b.Guest().Email(),
	})
}

// notify runs after commit. A failed delivery is logged and otherwise ignored.
func (u *bookingCommandsImpl) notify(ctx context.Context, ev shared.Event) {
	if u.notifier == nil {
		return
	}
	ev.OccurredAt = u.clock.Now()
	if err := u.notifier.Notify(ctx, ev); err != nil {
		slog.Warn("failed to publish booking event",
			"kind", string(ev.Kind),
			"booking_id", ev.BookingID,
			"reference", ev.Reference,
			"error", err.Error())
	}
}

// planCreation validates everything the creation needs before any write.
func (u *bookingCommandsImpl) planCreation(in CreateBookingInput, status booking.Status) (creationPlan, error) {
	date, err := schedule.ParseDate(strings.TrimSpace(in.Date))
	if err != nil {
		return creationPlan{}, shared.Validation(err)
	}
	slot, err := schedule.ParseTimeSlot(strings.TrimSpace(in.StartTime), strings.TrimSpace(in.EndTime))
	if err != nil {
		return creationPlan{}, shared.Validation(err)
	}
	guest, err := booking.NewGuest(in.GuestName, in.GuestEmail, in.GuestPhone)
	if err != nil {
		return creationPlan{}, shared.Validation(err)
	}
	details, err := booking.NewDetails(in.Location, in.Category, in.PackageName, in.PackagePrice, in.SpecialRequests)
	if err != nil {
		return creationPlan{}, shared.Validation(err)
	}
	payType, err := payment.ParseType(in.Payment.Type)
	if err != nil {
		return creationPlan{}, shared.Validation(err)
	}
	params := payment.NewParams{
		Amount:      in.Payment.Amount,
		Type:        payType,
		Method:      in.Payment.Method,
		GCashNumber: in.Payment.GCashNumber,
	}
	// same checks NewOrphan applies inside the transaction, surfaced early
	if _, err := payment.NewOrphan(params, details.PackagePrice(), u.clock.Now()); err != nil {
		return creationPlan{}, shared.Validation(err)
	}

	plan := creationPlan{
		date:          date,
		slot:          slot,
		guest:         guest,
		details:       details,
		bookingStatus: status,
		payment:       params,
	}
	if strings.TrimSpace(in.Reference) == "" {
		plan.reference = booking.GenerateReference()
		plan.generated = true
	} else {
		ref, err := booking.NewReference(in.Reference)
		if err != nil {
			return creationPlan{}, shared.Validation(err)
		}
		plan.reference = ref
	}
	return plan, nil
}
