package readstore

import (
	"context"

	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/repository/converter"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgtype"
)

type ScheduleReadQueries interface {
	ListUnavailableRangesByDate(ctx context.Context, db sqlc.DBTX, date pgtype.Date) ([]sqlc.UnavailableTimeRanges, error)
	ListUnavailableRangesBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUnavailableRangesBetweenParams) ([]sqlc.UnavailableTimeRanges, error)
}

type ScheduleReadStore struct {
	queries ScheduleReadQueries
	db      sqlc.DBTX
}

func NewScheduleReadStore(queries ScheduleReadQueries, db sqlc.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ScheduleReadStore) ListByDate(ctx context.Context, date schedule.Date) ([]*readmodel.UnavailableRangeRM, error) {
	rows, err := r.queries.ListUnavailableRangesByDate(ctx, r.db, converter.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unavailable ranges", err)
	}
	return toRangeRMs(rows), nil
}

func (r *ScheduleReadStore) ListBetween(ctx context.Context, from, to schedule.Date) ([]*readmodel.UnavailableRangeRM, error) {
	rows, err := r.queries.ListUnavailableRangesBetween(ctx, r.db, sqlc.ListUnavailableRangesBetweenParams{
		FromDate: converter.DateToPgtype(from),
		ToDate:   converter.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unavailable ranges between dates", err)
	}
	return toRangeRMs(rows), nil
}

func toRangeRMs(rows []sqlc.UnavailableTimeRanges) []*readmodel.UnavailableRangeRM {
	out := make([]*readmodel.UnavailableRangeRM, len(rows))
	for i, row := range rows {
		out[i] = &readmodel.UnavailableRangeRM{
			ID:        row.ID,
			Date:      formatDate(row.Date),
			StartTime: formatClock(row.StartTime),
			EndTime:   formatClock(row.EndTime),
			Status:    row.Status,
		}
	}
	return out
}
