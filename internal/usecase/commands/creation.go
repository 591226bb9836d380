package commands

import (
	"context"
	"fmt"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/conflict"
	"studio-booking/internal/domain/payment"
	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"
)

var (
	errStepOutOfOrder = errs.New("booking creation step out of order")
	errReferenceTaken = errs.New("booking reference already taken")
)

type creationState int

const (
	stateUninitialized creationState = iota
	statePaymentCreated
	stateBookingCreated
	stateLinked
)

func (s creationState) String() string {
	switch s {
	case stateUninitialized:
		return "uninitialized"
	case statePaymentCreated:
		return "payment_created"
	case stateBookingCreated:
		return "booking_created"
	case stateLinked:
		return "linked"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// creationPlan is a validated creation request.
type creationPlan struct {
	reference     booking.Reference
	generated     bool
	date          schedule.Date
	slot          schedule.TimeSlot
	guest         booking.Guest
	details       booking.Details
	bookingStatus booking.Status
	payment       payment.NewParams
	// overrides the status derived from the proof
	paymentStatus payment.Status
	proofRef      *string
}

// creation writes the payment, then the booking that points at it, then
// links the payment back. Every step refuses to run out of order, and all of
// them share one transaction.
type creation struct {
	plan        creationPlan
	now         time.Time
	state       creationState
	slotChecked bool
	pay         *payment.Payment
	book        *booking.Booking
}

func newCreation(plan creationPlan, now time.Time) *creation {
	return &creation{plan: plan, now: now}
}

func (c *creation) run(ctx context.Context, tx shared.Tx) error {
	steps := []func(context.Context, shared.Tx) error{
		c.createPayment,
		c.ensureSlotFree,
		c.createBooking,
		c.link,
	}
	for _, step := range steps {
		if err := step(ctx, tx); err != nil {
			return err
		}
	}
	return nil
}

func (c *creation) expect(s creationState) error {
	if c.state != s {
		return errs.Wrapf(errStepOutOfOrder, "in state %s, step needs %s", c.state, s)
	}
	return nil
}

func (c *creation) createPayment(ctx context.Context, tx shared.Tx) error {
	if err := c.expect(stateUninitialized); err != nil {
		return err
	}
	p, err := payment.NewOrphan(c.plan.payment, c.plan.details.PackagePrice(), c.now)
	if err != nil {
		return shared.Validation(err)
	}
	if c.plan.paymentStatus != "" {
		p = p.WithStatus(c.plan.paymentStatus)
	}
	id, err := tx.Payments().CreateOrphan(ctx, tx.DB(), p)
	if err != nil {
		return shared.FromRepo(err, "payment")
	}
	c.pay = p.WithID(id)
	c.state = statePaymentCreated
	return nil
}

// ensureSlotFree takes the date lock, held until the transaction ends, and
// runs the resolver.
func (c *creation) ensureSlotFree(ctx context.Context, tx shared.Tx) error {
	if err := c.expect(statePaymentCreated); err != nil {
		return err
	}
	if err := tx.LockDate(ctx, c.plan.date); err != nil {
		return shared.Storage(err, "failed to lock booking date")
	}
	res, err := shared.FindConflicts(ctx, tx.DB(), tx.Bookings(), tx.Schedules(),
		conflict.NewRequest(c.plan.date, c.plan.slot, nil))
	if err != nil {
		return err
	}
	if !res.Empty() {
		return shared.NewConflictError(res)
	}
	c.slotChecked = true
	return nil
}

func (c *creation) createBooking(ctx context.Context, tx shared.Tx) error {
	if err := c.expect(statePaymentCreated); err != nil {
		return err
	}
	if !c.slotChecked {
		return errs.Wrap(errStepOutOfOrder, "booking insert before conflict check")
	}
	b, err := booking.New(booking.NewParams{
		Reference: c.plan.reference,
		Date:      c.plan.date,
		Slot:      c.plan.slot,
		Guest:     c.plan.guest,
		Details:   c.plan.details,
		Status:    c.plan.bookingStatus,
		PaymentID: c.pay.ID(),
		ProofRef:  c.plan.proofRef,
		CreatedAt: c.now,
	})
	if err != nil {
		return shared.Validation(err)
	}
	id, err := tx.Bookings().Create(ctx, tx.DB(), b)
	if err != nil {
		return bookingInsertErr(err, c.plan.reference)
	}
	c.book = b.WithID(id)
	c.state = stateBookingCreated
	return nil
}

func (c *creation) link(ctx context.Context, tx shared.Tx) error {
	if err := c.expect(stateBookingCreated); err != nil {
		return err
	}
	linked, err := c.pay.LinkTo(int64(c.book.ID()), c.book.Details().PackagePrice())
	if err != nil {
		return shared.Validation(err)
	}
	if err := tx.Payments().Link(ctx, tx.DB(), linked); err != nil {
		return shared.FromRepo(err, "payment")
	}
	c.pay = linked
	c.state = stateLinked
	return nil
}

func (c *creation) result() *CreateBookingResult {
	return &CreateBookingResult{
		BookingID: c.book.ID(),
		PaymentID: c.pay.ID(),
		Reference: c.book.Reference(),
		Status:    c.book.Status(),
	}
}

func bookingInsertErr(err error, ref booking.Reference) error {
	if infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintName(err) == infra.ConstraintBookingReference {
		return errs.Mark(shared.NewReferenceConflict(ref), errReferenceTaken)
	}
	return shared.FromRepo(err, "booking")
}
