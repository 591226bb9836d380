package repository

import (
	"context"

	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/repository/converter"
	sqlc "studio-booking/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgtype"
)

type ScheduleWriteQueries interface {
	ListUnavailableRangesByDate(ctx context.Context, db sqlc.DBTX, date pgtype.Date) ([]sqlc.UnavailableTimeRanges, error)
	DeleteUnavailableRangesByDate(ctx context.Context, db sqlc.DBTX, date pgtype.Date) (int64, error)
	CreateUnavailableRange(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUnavailableRangeParams) (sqlc.UnavailableTimeRanges, error)
}

type ScheduleRepository struct {
	queries ScheduleWriteQueries
	db      sqlc.DBTX
}

func NewScheduleRepository(queries ScheduleWriteQueries, db sqlc.DBTX) *ScheduleRepository {
	return &ScheduleRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ScheduleRepository) ListByDate(ctx context.Context, tx sqlc.DBTX, date schedule.Date) ([]schedule.UnavailableRange, error) {
	rows, err := r.queries.ListUnavailableRangesByDate(ctx, tx, converter.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unavailable ranges", err)
	}
	ranges, err := converter.UnavailableRangesFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt unavailable range row", err)
	}
	return ranges, nil
}

// Replace must run inside a transaction; a partial replace is never visible.
func (r *ScheduleRepository) Replace(ctx context.Context, tx sqlc.DBTX, day schedule.DaySchedule) ([]schedule.UnavailableRange, error) {
	if _, err := r.queries.DeleteUnavailableRangesByDate(ctx, tx, converter.DateToPgtype(day.Date())); err != nil {
		return nil, infra.WrapRepoErr("failed to clear unavailable ranges", err)
	}

	ranges := day.Ranges()
	saved := make([]schedule.UnavailableRange, 0, len(ranges))
	for _, rg := range ranges {
		row, err := r.queries.CreateUnavailableRange(ctx, tx, converter.UnavailableRangeToCreateParams(rg))
		if err != nil {
			return nil, infra.WrapRepoErr("failed to create unavailable range", err)
		}
		s, err := converter.UnavailableRangeFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt unavailable range row", err)
		}
		saved = append(saved, s)
	}
	return saved, nil
}
