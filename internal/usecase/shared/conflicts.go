package shared

import (
	"context"

	"studio-booking/internal/domain/conflict"
	sqlc "studio-booking/internal/infra/sqlc/generated"
)

// FindConflicts loads the candidates for req and runs the resolver over
// them. A failed load is a storage error, never "no conflicts".
func FindConflicts(
	ctx context.Context,
	db sqlc.DBTX,
	bookings BookingRepository,
	schedules ScheduleRepository,
	req conflict.Request,
) (conflict.Result, error) {
	candidates, err := bookings.FindOverlapping(ctx, db, req)
	if err != nil {
		return conflict.Result{}, Storage(err, "failed to load bookings for conflict check")
	}
	ranges, err := schedules.ListByDate(ctx, db, req.Date)
	if err != nil {
		return conflict.Result{}, Storage(err, "failed to load unavailable ranges for conflict check")
	}
	return conflict.Find(req, candidates, ranges), nil
}
