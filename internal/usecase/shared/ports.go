package shared

import (
	"context"
	"io"
	"time"
)

// ProofStore keeps payment-proof artifacts. Refs are opaque to the core.
type ProofStore interface {
	Store(ctx context.Context, r io.Reader, contentType string) (ref string, err error)
	Exists(ctx context.Context, ref string) (bool, error)
	Open(ctx context.Context, ref string) (io.ReadCloser, string, error)
}

type EventKind string

const (
	EventBookingCreated     EventKind = "booking.created"
	EventBookingConfirmed   EventKind = "booking.confirmed"
	EventBookingCancelled   EventKind = "booking.cancelled"
	EventBookingStatus      EventKind = "booking.status_changed"
	EventBookingRescheduled EventKind = "booking.rescheduled"
	EventBookingDeleted     EventKind = "booking.deleted"
	EventProofAttached      EventKind = "booking.proof_attached"
	EventScheduleReplaced   EventKind = "schedule.replaced"
)

type Event struct {
	Kind       EventKind `json:"kind"`
	BookingID  int64     `json:"booking_id,omitempty"`
	Reference  string    `json:"reference,omitempty"`
	Date       string    `json:"date,omitempty"`
	Status     string    `json:"status,omitempty"`
	GuestEmail string    `json:"guest_email,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Notifier delivers events after commit. Failures are logged by the caller
// and never undo the committed change.
type Notifier interface {
	Notify(ctx context.Context, ev Event) error
}
