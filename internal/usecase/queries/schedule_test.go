//go:build unit

package queries_test

import (
	"context"
	"testing"

	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/queries"
	"studio-booking/internal/usecase/readmodel"
	"studio-booking/internal/usecase/shared"
	queriesmock "studio-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScheduleQueries(t *testing.T) {
	ctx := context.Background()
	rows := []*readmodel.UnavailableRangeRM{{ID: 1, Date: "2024-06-01", StartTime: "13:00", EndTime: "14:00", Status: "unavailable"}}

	setup := func(t *testing.T) (*queriesmock.MockScheduleReadStore, queries.ScheduleQueries) {
		store := queriesmock.NewMockScheduleReadStore(gomock.NewController(t))
		return store, queries.NewScheduleQueries(store)
	}

	t.Run("by date", func(t *testing.T) {
		store, q := setup(t)
		store.EXPECT().ListByDate(gomock.Any(), mustDate(t, "2024-06-01")).Return(rows, nil)

		got, err := q.GetUnavailableRanges(ctx, "2024-06-01")
		require.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("by month", func(t *testing.T) {
		store, q := setup(t)
		store.EXPECT().ListBetween(gomock.Any(), mustDate(t, "2024-06-01"), mustDate(t, "2024-06-30")).Return(rows, nil)

		got, err := q.GetUnavailableRangesForMonth(ctx, 2024, 6)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, q := setup(t)

		_, err := q.GetUnavailableRanges(ctx, "2024/06/01")
		assert.True(t, errs.Is(err, errs.ErrValidation))
		_, err = q.GetUnavailableRangesForMonth(ctx, 2024, 0)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("store failure", func(t *testing.T) {
		store, q := setup(t)
		store.EXPECT().ListByDate(gomock.Any(), gomock.Any()).Return(nil, infra.NewRepoErr(infra.KindDBFailure, "timeout"))

		_, err := q.GetUnavailableRanges(ctx, "2024-06-01")
		assert.True(t, errs.Is(err, errs.ErrStorage))
	})
}

func TestGetCurrentAdmin(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*queriesmock.MockAdminReadStore, queries.AdminQueries) {
		store := queriesmock.NewMockAdminReadStore(gomock.NewController(t))
		return store, queries.NewAdminQueries(store)
	}

	t.Run("active admin", func(t *testing.T) {
		store, q := setup(t)
		row := &readmodel.AdminRM{ID: adminUser.AdminID, Email: "admin@example.com", Role: "admin", IsActive: true}
		store.EXPECT().FindByID(gomock.Any(), adminUser.AdminID).Return(row, nil)

		got, err := q.GetCurrentAdmin(ctx, adminUser)
		require.NoError(t, err)
		assert.Equal(t, row, got)
	})

	t.Run("inactive admin", func(t *testing.T) {
		store, q := setup(t)
		store.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(&readmodel.AdminRM{IsActive: false}, nil)

		_, err := q.GetCurrentAdmin(ctx, staffUser)
		assert.True(t, errs.Is(err, queries.ErrAdminInactive))
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("missing admin", func(t *testing.T) {
		store, q := setup(t)
		store.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, infra.NewRepoErr(infra.KindNotFound, "admin not found"))

		_, err := q.GetCurrentAdmin(ctx, adminUser)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("anonymous", func(t *testing.T) {
		_, q := setup(t)

		_, err := q.GetCurrentAdmin(ctx, shared.Anonymous())
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})
}
