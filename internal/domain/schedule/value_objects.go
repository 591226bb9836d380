package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidClockTime = errors.New("invalid clock time")
	ErrInvalidTimeSlot  = errors.New("start time must be before end time")
	ErrInvalidMonth     = errors.New("invalid month")
)

const (
	DateLayout      = "2006-01-02"
	ClockTimeLayout = "15:04"

	minutesPerDay = 24 * 60
)

// Date is a facility-local calendar date without a zone.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf drops the clock part of t, keeping t's own calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{t: t}, nil
}

func (d Date) Year() int          { return d.t.Year() }
func (d Date) Month() time.Month  { return d.t.Month() }
func (d Date) Day() int           { return d.t.Day() }
func (d Date) IsZero() bool       { return d.t.IsZero() }
func (d Date) Time() time.Time    { return d.t }
func (d Date) String() string     { return d.t.Format(DateLayout) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) SameMonth(o Date) bool {
	return d.Year() == o.Year() && d.Month() == o.Month()
}

// MonthBounds returns the first and last day of the month.
func MonthBounds(year int, month int) (Date, Date, error) {
	if month < 1 || month > 12 {
		return Date{}, Date{}, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	first := NewDate(year, time.Month(month), 1)
	last := Date{t: first.t.AddDate(0, 1, -1)}
	return first, last, nil
}

// ClockTime is a time of day with minute precision.
type ClockTime struct {
	minutes int
}

func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidClockTime, hour, minute)
	}
	return ClockTime{minutes: hour*60 + minute}, nil
}

// ParseClockTime accepts "15:04" and "15:04:05"; seconds are dropped.
func ParseClockTime(s string) (ClockTime, error) {
	for _, layout := range []string{ClockTimeLayout, "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return ClockTime{minutes: t.Hour()*60 + t.Minute()}, nil
		}
	}
	return ClockTime{}, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
}

// ClockTimeFromDuration converts an offset since midnight, as stored by
// postgres TIME columns.
func ClockTimeFromDuration(d time.Duration) (ClockTime, error) {
	m := int(d / time.Minute)
	if d < 0 || m >= minutesPerDay {
		return ClockTime{}, fmt.Errorf("%w: %s", ErrInvalidClockTime, d)
	}
	return ClockTime{minutes: m}, nil
}

func (c ClockTime) Hour() int                    { return c.minutes / 60 }
func (c ClockTime) Minute() int                  { return c.minutes % 60 }
func (c ClockTime) Minutes() int                 { return c.minutes }
func (c ClockTime) SinceMidnight() time.Duration { return time.Duration(c.minutes) * time.Minute }
func (c ClockTime) Before(o ClockTime) bool      { return c.minutes < o.minutes }
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// TimeSlot is the half-open interval [start, end) within one day.
type TimeSlot struct {
	start ClockTime
	end   ClockTime
}

func NewTimeSlot(start, end ClockTime) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, fmt.Errorf("%w: %s-%s", ErrInvalidTimeSlot, start, end)
	}
	return TimeSlot{start: start, end: end}, nil
}

func ParseTimeSlot(start, end string) (TimeSlot, error) {
	s, err := ParseClockTime(start)
	if err != nil {
		return TimeSlot{}, err
	}
	e, err := ParseClockTime(end)
	if err != nil {
		return TimeSlot{}, err
	}
	return NewTimeSlot(s, e)
}

func (ts TimeSlot) Start() ClockTime { return ts.start }
func (ts TimeSlot) End() ClockTime   { return ts.end }

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.SinceMidnight() - ts.start.SinceMidnight()
}

// Hours is the whole-hour difference between end and start, as stored on
// bookings for reporting.
func (ts TimeSlot) Hours() int {
	return ts.end.Hour() - ts.start.Hour()
}

// Overlaps reports whether the two half-open intervals share any instant.
// Back-to-back slots do not overlap.
func (ts TimeSlot) Overlaps(o TimeSlot) bool {
	return ts.start.minutes < o.end.minutes && o.start.minutes < ts.end.minutes
}

func (ts TimeSlot) String() string {
	return ts.start.String() + "-" + ts.end.String()
}
