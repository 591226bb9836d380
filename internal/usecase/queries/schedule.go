package queries

import (
	"context"
	"strings"

	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/usecase/readmodel"
	"studio-booking/internal/usecase/shared"
)

type ScheduleReadStore interface {
	ListByDate(ctx context.Context, date schedule.Date) ([]*readmodel.UnavailableRangeRM, error)
	ListBetween(ctx context.Context, from, to schedule.Date) ([]*readmodel.UnavailableRangeRM, error)
}

type ScheduleQueries interface {
	GetUnavailableRanges(ctx context.Context, date string) ([]*readmodel.UnavailableRangeRM, error)
	GetUnavailableRangesForMonth(ctx context.Context, year, month int) ([]*readmodel.UnavailableRangeRM, error)
}

type scheduleQueriesImpl struct {
	store ScheduleReadStore
}

func NewScheduleQueries(store ScheduleReadStore) ScheduleQueries {
	return &scheduleQueriesImpl{store: store}
}

func (q *scheduleQueriesImpl) GetUnavailableRanges(ctx context.Context, date string) ([]*readmodel.UnavailableRangeRM, error) {
	d, err := schedule.ParseDate(strings.TrimSpace(date))
	if err != nil {
		return nil, shared.Validation(err)
	}
	rows, err := q.store.ListByDate(ctx, d)
	return rows, shared.FromRepo(err, "unavailable ranges")
}

func (q *scheduleQueriesImpl) GetUnavailableRangesForMonth(ctx context.Context, year, month int) ([]*readmodel.UnavailableRangeRM, error) {
	first, last, err := schedule.MonthBounds(year, month)
	if err != nil {
		return nil, shared.Validation(err)
	}
	rows, err := q.store.ListBetween(ctx, first, last)
	return rows, shared.FromRepo(err, "unavailable ranges")
}
