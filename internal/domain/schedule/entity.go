package schedule

import "errors"

// StatusUnavailable is the only status an unavailable range carries.
const StatusUnavailable = "unavailable"

var ErrRangeDateMismatch = errors.New("unavailable range date does not match the schedule date")

// UnavailableRange is an administrator-declared blackout window on one date.
type UnavailableRange struct {
	id   int64
	date Date
	slot TimeSlot
}

func NewUnavailableRange(date Date, slot TimeSlot) (UnavailableRange, error) {
	if date.IsZero() {
		return UnavailableRange{}, ErrInvalidDate
	}
	return UnavailableRange{date: date, slot: slot}, nil
}

func ReconstructUnavailableRange(id int64, date Date, slot TimeSlot) UnavailableRange {
	return UnavailableRange{id: id, date: date, slot: slot}
}

func (r UnavailableRange) ID() int64      { return r.id }
func (r UnavailableRange) Date() Date     { return r.date }
func (r UnavailableRange) Slot() TimeSlot { return r.slot }
func (r UnavailableRange) Status() string { return StatusUnavailable }

// DaySchedule is the complete set of blackout ranges for one date. It is
// always written as a whole.
type DaySchedule struct {
	date   Date
	ranges []UnavailableRange
}

func NewDaySchedule(date Date, ranges []UnavailableRange) (DaySchedule, error) {
	if date.IsZero() {
		return DaySchedule{}, ErrInvalidDate
	}
	for _, r := range ranges {
		if !r.date.Equal(date) {
			return DaySchedule{}, ErrRangeDateMismatch
		}
	}
	out := make([]UnavailableRange, len(ranges))
	copy(out, ranges)
	return DaySchedule{date: date, ranges: out}, nil
}

func (s DaySchedule) Date() Date { return s.date }

func (s DaySchedule) Ranges() []UnavailableRange {
	out := make([]UnavailableRange, len(s.ranges))
	copy(out, s.ranges)
	return out
}
