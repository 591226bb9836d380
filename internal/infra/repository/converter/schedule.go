package converter

import (
	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func DateToPgtype(d schedule.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.Time())
}

func DateFromPgtype(pd pgtype.Date) schedule.Date {
	return schedule.DateOf(pgconv.DateFromPgtype(pd))
}

func ClockTimeToPgtype(c schedule.ClockTime) pgtype.Time {
	return pgconv.TimeOfDayToPgtype(c.SinceMidnight())
}

func ClockTimeFromPgtype(pt pgtype.Time) (schedule.ClockTime, error) {
	d, err := pgconv.TimeOfDayFromPgtype(pt)
	if err != nil {
		return schedule.ClockTime{}, err
	}
	return schedule.ClockTimeFromDuration(d)
}

func SlotFromPgtype(start, end pgtype.Time) (schedule.TimeSlot, error) {
	s, err := ClockTimeFromPgtype(start)
	if err != nil {
		return schedule.TimeSlot{}, err
	}
	e, err := ClockTimeFromPgtype(end)
	if err != nil {
		return schedule.TimeSlot{}, err
	}
	return schedule.NewTimeSlot(s, e)
}
