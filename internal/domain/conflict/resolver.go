// Package conflict decides whether a proposed time slot is admissible on a
// date, given the bookings and blackout ranges already recorded for it.
package conflict

import (
	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/schedule"
)

type Request struct {
	Date schedule.Date
	Slot schedule.TimeSlot
	// ExcludeID is the booking being edited, so it never conflicts with itself.
	ExcludeID *booking.ID
}

func NewRequest(date schedule.Date, slot schedule.TimeSlot, excludeID *booking.ID) Request {
	return Request{Date: date, Slot: slot, ExcludeID: excludeID}
}

type Result struct {
	Bookings []*booking.Booking
	Ranges   []schedule.UnavailableRange
}

func (r Result) Empty() bool {
	return len(r.Bookings) == 0 && len(r.Ranges) == 0
}

// Find applies the half-open overlap test to every candidate. Cancelled
// bookings, the excluded booking and anything on another date are ignored;
// blackout ranges on the date always count. Input order is preserved.
func Find(req Request, bookings []*booking.Booking, ranges []schedule.UnavailableRange) Result {
	var res Result
	for _, b := range bookings {
		if b == nil || !b.BlocksCalendar() || !b.Date().Equal(req.Date) {
			continue
		}
		if req.ExcludeID != nil && b.ID() == *req.ExcludeID {
			continue
		}
		if req.Slot.Overlaps(b.Slot()) {
			res.Bookings = append(res.Bookings, b)
		}
	}
	for _, r := range ranges {
		if r.Date().Equal(req.Date) && req.Slot.Overlaps(r.Slot()) {
			res.Ranges = append(res.Ranges, r)
		}
	}
	return res
}
