package converter

import (
	"studio-booking/internal/domain/schedule"
	sqlc "studio-booking/internal/infra/sqlc/generated"
)

func UnavailableRangeToCreateParams(r schedule.UnavailableRange) sqlc.CreateUnavailableRangeParams {
	return sqlc.CreateUnavailableRangeParams{
		Date:      DateToPgtype(r.Date()),
		StartTime: ClockTimeToPgtype(r.Slot().Start()),
		EndTime:   ClockTimeToPgtype(r.Slot().End()),
		Status:    r.Status(),
	}
}

func UnavailableRangeFromRow(row sqlc.UnavailableTimeRanges) (schedule.UnavailableRange, error) {
	slot, err := SlotFromPgtype(row.StartTime, row.EndTime)
	if err != nil {
		return schedule.UnavailableRange{}, err
	}
	return schedule.ReconstructUnavailableRange(row.ID, DateFromPgtype(row.Date), slot), nil
}

func UnavailableRangesFromRows(rows []sqlc.UnavailableTimeRanges) ([]schedule.UnavailableRange, error) {
	out := make([]schedule.UnavailableRange, 0, len(rows))
	for _, row := range rows {
		r, err := UnavailableRangeFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
