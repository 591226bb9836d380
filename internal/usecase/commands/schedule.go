package commands

import (
	"context"
	"log/slog"
	"strings"

	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/usecase/shared"
)

type RangeInput struct {
	StartTime string
	EndTime   string
}

type ScheduleCommands interface {
	// ReplaceUnavailableRanges swaps the whole blackout set of a date.
	ReplaceUnavailableRanges(ctx context.Context, p shared.Principal, date string, ranges []RangeInput) ([]schedule.UnavailableRange, error)
}

type scheduleCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	clock    clock.Clock
}

func NewScheduleCommands(uow shared.UnitOfWork, notifier shared.Notifier, clk clock.Clock) ScheduleCommands {
	return &scheduleCommandsImpl{uow: uow, notifier: notifier, clock: clk}
}

func (u *scheduleCommandsImpl) ReplaceUnavailableRanges(ctx context.Context, p shared.Principal, date string, ranges []RangeInput) ([]schedule.UnavailableRange, error) {
	if !p.IsAdmin() {
		return nil, shared.Forbidden("replace unavailable ranges")
	}
	day, err := buildDaySchedule(date, ranges)
	if err != nil {
		return nil, err
	}

	var saved []schedule.UnavailableRange
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// serialises with booking writes on the same date
		if err := tx.LockDate(ctx, day.Date()); err != nil {
			return shared.Storage(err, "failed to lock schedule date")
		}
		out, err := tx.Schedules().Replace(ctx, tx.DB(), day)
		if err != nil {
			return shared.FromRepo(err, "unavailable ranges")
		}
		saved = out
		return nil
	})
	if err != nil {
		return nil, shared.FromRepo(err, "unavailable ranges")
	}

	if u.notifier != nil {
		ev := shared.Event{Kind: shared.EventScheduleReplaced, Date: day.Date().String(), OccurredAt: u.clock.Now()}
		if err := u.notifier.Notify(ctx, ev); err != nil {
			slog.Warn("failed to publish schedule event", "date", ev.Date, "error", err.Error())
		}
	}
	return saved, nil
}

// Overlapping ranges in one submission are stored as given.
func buildDaySchedule(date string, ranges []RangeInput) (schedule.DaySchedule, error) {
	d, err := schedule.ParseDate(strings.TrimSpace(date))
	if err != nil {
		return schedule.DaySchedule{}, shared.Validation(err)
	}
	out := make([]schedule.UnavailableRange, 0, len(ranges))
	for _, in := range ranges {
		slot, err := schedule.ParseTimeSlot(strings.TrimSpace(in.StartTime), strings.TrimSpace(in.EndTime))
		if err != nil {
			return schedule.DaySchedule{}, shared.Validation(err)
		}
		r, err := schedule.NewUnavailableRange(d, slot)
		if err != nil {
			return schedule.DaySchedule{}, shared.Validation(err)
		}
		out = append(out, r)
	}
	day, err := schedule.NewDaySchedule(d, out)
	if err != nil {
		return schedule.DaySchedule{}, shared.Validation(err)
	}
	return day, nil
}
