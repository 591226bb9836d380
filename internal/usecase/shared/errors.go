package shared

import (
	"fmt"
	"strings"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/conflict"
	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"
)

// ConflictError is returned when a slot is taken. It carries what is in the
// way so the caller can show it.
type ConflictError struct {
	Bookings []*booking.Booking
	Ranges   []schedule.UnavailableRange
	reason   string
}

func NewConflictError(res conflict.Result) error {
	return errs.Mark(&ConflictError{Bookings: res.Bookings, Ranges: res.Ranges}, errs.ErrConflict)
}

// NewReferenceConflict reports a booking reference already used by a
// different booking.
func NewReferenceConflict(ref booking.Reference) error {
	return errs.Mark(&ConflictError{reason: "booking reference " + ref.String() + " is already in use"}, errs.ErrConflict)
}

func (e *ConflictError) Error() string {
	if e.reason != "" {
		return e.reason
	}
	parts := make([]string, 0, len(e.Bookings)+len(e.Ranges))
	for _, b := range e.Bookings {
		parts = append(parts, fmt.Sprintf("booking %s %s %s", b.Reference(), b.Date(), b.Slot()))
	}
	for _, r := range e.Ranges {
		parts = append(parts, fmt.Sprintf("unavailable %s %s", r.Date(), r.Slot()))
	}
	return "time slot unavailable: " + strings.Join(parts, ", ")
}

func Validation(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}

func NotFound(what string) error {
	return errs.Sentinel(what+" not found", errs.ErrNotFound)
}

func Forbidden(op string) error {
	return errs.Sentinel(op+" requires an admin", errs.ErrForbidden)
}

func Storage(err error, msg string) error {
	return errs.Mark(errs.Wrap(err, msg), errs.ErrStorage)
}

// FromRepo maps a repository failure onto a usecase category. Errors that
// already carry a category pass through unchanged.
func FromRepo(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case IsCategorized(err):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return NotFound(what)
	case infra.IsKind(err, infra.KindExclusionViolated):
		return errs.Mark(&ConflictError{reason: "time slot unavailable"}, errs.ErrConflict)
	default:
		return Storage(err, "failed to access "+what)
	}
}

func IsCategorized(err error) bool {
	return errs.Is(err, errs.ErrValidation) ||
		errs.Is(err, errs.ErrConflict) ||
		errs.Is(err, errs.ErrNotFound) ||
		errs.Is(err, errs.ErrForbidden) ||
		errs.Is(err, errs.ErrUnauthorized) ||
		errs.Is(err, errs.ErrStorage)
}
