package booking

import (
	"errors"
	"fmt"
	"time"

	"studio-booking/internal/domain/payment"
	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/pkg/patch"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrPaymentRequired   = errors.New("booking requires a payment")
	ErrDateRequired      = errors.New("booking date is required")
	ErrInvalidInitial    = errors.New("booking must start as PENDING or CONFIRMED")
)

type ID int64

// DefaultManualEmail stands in for the guest email on admin-entered bookings.
const DefaultManualEmail = "manual-booking@admin.com"

type Booking struct {
	id            ID
	reference     Reference
	date          schedule.Date
	slot          schedule.TimeSlot
	durationHours int
	guest         Guest
	details       Details
	status        Status
	adminNotes    *string
	paymentID     payment.ID
	proofRef      *string
	createdAt     time.Time
}

type NewParams struct {
	Reference Reference
	Date      schedule.Date
	Slot      schedule.TimeSlot
	Guest     Guest
	Details   Details
	Status    Status
	PaymentID payment.ID
	ProofRef  *string
	CreatedAt time.Time
}

// New builds a booking ready to insert. The id is assigned by the store.
func New(p NewParams) (*Booking, error) {
	if p.Date.IsZero() {
		return nil, ErrDateRequired
	}
	if p.Reference.IsZero() {
		return nil, ErrInvalidReference
	}
	if p.PaymentID <= 0 {
		return nil, ErrPaymentRequired
	}
	if p.Status != StatusPending && p.Status != StatusConfirmed {
		return nil, ErrInvalidInitial
	}
	return &Booking{
		reference:     p.Reference,
		date:          p.Date,
		slot:          p.Slot,
		durationHours: p.Slot.Hours(),
		guest:         p.Guest,
		details:       p.Details,
		status:        p.Status,
		paymentID:     p.PaymentID,
		proofRef:      p.ProofRef,
		createdAt:     p.CreatedAt,
	}, nil
}

func Reconstruct(
	id ID,
	reference Reference,
	date schedule.Date,
	slot schedule.TimeSlot,
	durationHours int,
	guest Guest,
	details Details,
	status Status,
	adminNotes *string,
	paymentID payment.ID,
	proofRef *string,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		reference:     reference,
		date:          date,
		slot:          slot,
		durationHours: durationHours,
		guest:         guest,
		details:       details,
		status:        status,
		adminNotes:    adminNotes,
		paymentID:     paymentID,
		proofRef:      proofRef,
		createdAt:     createdAt,
	}
}

func (b *Booking) clone() *Booking {
	c := *b
	return &c
}

func (b *Booking) WithID(id ID) *Booking {
	c := b.clone()
	c.id = id
	return c
}

// WithSlot moves the booking within its date.
func (b *Booking) WithSlot(slot schedule.TimeSlot) *Booking {
	c := b.clone()
	c.slot = slot
	c.durationHours = slot.Hours()
	return c
}

func (b *Booking) WithProof(ref string) *Booking {
	c := b.clone()
	c.proofRef = &ref
	return c
}

func (b *Booking) Approve(notes string) (*Booking, error) {
	return b.transition(StatusConfirmed, &notes, StatusPending)
}

func (b *Booking) Reject(reason string) (*Booking, error) {
	return b.transition(StatusCancelled, &reason, StatusPending)
}

// OverrideStatus is the generic status change; only open bookings accept it.
func (b *Booking) OverrideStatus(s Status) (*Booking, error) {
	if !s.IsValid() {
		return nil, ErrInvalidStatus
	}
	return b.transition(s, b.adminNotes, StatusPending, StatusConfirmed)
}

func (b *Booking) transition(to Status, notes *string, from ...Status) (*Booking, error) {
	for _, f := range from {
		if b.status == f {
			c := b.clone()
			c.status = to
			c.adminNotes = notes
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, b.status, to)
}

func (b *Booking) WithDetails(p DetailsPatch) (*Booking, error) {
	guest, err := NewGuest(
		patch.Coalesce(p.GuestName, b.guest.name),
		b.guest.email,
		patch.Coalesce(p.GuestPhone, b.guest.phone),
	)
	if err != nil {
		return nil, err
	}
	details, err := NewDetails(
		patch.Coalesce(p.Location, b.details.location),
		patch.Coalesce(p.Category, b.details.category),
		patch.Coalesce(p.PackageName, b.details.packageName),
		patch.Coalesce(p.PackagePrice, b.details.packagePrice),
		patch.Coalesce(p.SpecialRequests, b.details.specialRequests),
	)
	if err != nil {
		return nil, err
	}
	c := b.clone()
	c.guest = guest
	c.details = details
	return c, nil
}

func (b *Booking) IsCancelled() bool { return b.status == StatusCancelled }

// BlocksCalendar reports whether the booking occupies its slot.
func (b *Booking) BlocksCalendar() bool { return !b.IsCancelled() }

func (b *Booking) ID() ID                  { return b.id }
func (b *Booking) Reference() Reference    { return b.reference }
func (b *Booking) Date() schedule.Date     { return b.date }
func (b *Booking) Slot() schedule.TimeSlot { return b.slot }
func (b *Booking) DurationHours() int      { return b.durationHours }
func (b *Booking) Guest() Guest            { return b.guest }
func (b *Booking) Details() Details        { return b.details }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) AdminNotes() *string     { return b.adminNotes }
func (b *Booking) PaymentID() payment.ID   { return b.paymentID }
func (b *Booking) ProofRef() *string       { return b.proofRef }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
