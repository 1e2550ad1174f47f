//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"tembea/internal/usecase/queries"
	queriesmock "tembea/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityQueries_Remaining(t *testing.T) {
	ctx := context.Background()
	itemID := uuid.New()
	visitDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	newEnv := func(t *testing.T) (*queriesmock.MockAvailabilityViewRepo, *queriesmock.MockAvailabilityCache, queries.AvailabilityQueries) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockAvailabilityViewRepo(ctrl)
		cache := queriesmock.NewMockAvailabilityCache(ctrl)
		return repo, cache, queries.NewAvailabilityQueries(repo, cache)
	}

	t.Run("miss reads the ledger and primes the cache", func(t *testing.T) {
		repo, cache, q := newEnv(t)
		expected := &queries.AvailabilityView{
			ItemID:    itemID,
			VisitDate: visitDate,
			Capacity:  10,
			Booked:    6,
			Remaining: 4,
		}

		cache.EXPECT().Get(ctx, itemID, visitDate).Return(nil, false)
		repo.EXPECT().CapacityAndBooked(ctx, itemID, visitDate).Return(int32(10), int32(6), nil)
		cache.EXPECT().Set(ctx, expected)

		view, err := q.Remaining(ctx, itemID, visitDate)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(expected, view))
	})

	t.Run("hit skips the database", func(t *testing.T) {
		repo, cache, q := newEnv(t)
		_ = repo
		cached := &queries.AvailabilityView{ItemID: itemID, VisitDate: visitDate, Capacity: 10, Booked: 2, Remaining: 8}

		cache.EXPECT().Get(ctx, itemID, visitDate).Return(cached, true)

		view, err := q.Remaining(ctx, itemID, visitDate)
		require.NoError(t, err)
		assert.Same(t, cached, view)
	})

	t.Run("overbooked ledger clamps to zero", func(t *testing.T) {
		repo, cache, q := newEnv(t)

		cache.EXPECT().Get(ctx, itemID, visitDate).Return(nil, false)
		repo.EXPECT().CapacityAndBooked(ctx, itemID, visitDate).Return(int32(10), int32(12), nil)
		cache.EXPECT().Set(ctx, gomock.Any())

		view, err := q.Remaining(ctx, itemID, visitDate)
		require.NoError(t, err)
		assert.Equal(t, int32(0), view.Remaining)
	})

	t.Run("timestamp is truncated to the day", func(t *testing.T) {
		repo, cache, q := newEnv(t)
		late := visitDate.Add(17*time.Hour + 30*time.Minute)

		cache.EXPECT().Get(ctx, itemID, visitDate).Return(nil, false)
		repo.EXPECT().CapacityAndBooked(ctx, itemID, visitDate).Return(int32(10), int32(0), nil)
		cache.EXPECT().Set(ctx, gomock.Any())

		view, err := q.Remaining(ctx, itemID, late)
		require.NoError(t, err)
		assert.Equal(t, visitDate, view.VisitDate)
	})
}
