//go:build unit

package queries_test

import (
	"context"
	"testing"

	"tembea/internal/usecase/queries"
	queriesmock "tembea/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPayoutQueries_Commissions(t *testing.T) {
	ctx := context.Background()
	referrerID := uuid.New()

	newEnv := func(t *testing.T) (*queriesmock.MockPayoutViewRepo, queries.PayoutQueries) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockPayoutViewRepo(ctrl)
		return repo, queries.NewPayoutQueries(repo)
	}

	t.Run("splits totals between paid and pending", func(t *testing.T) {
		repo, q := newEnv(t)
		rows := []*queries.CommissionRow{
			{ID: uuid.New(), AmountCents: 10_000, Status: "paid"},
			{ID: uuid.New(), AmountCents: 7_500, Status: "pending"},
			{ID: uuid.New(), AmountCents: 2_500, Status: "pending"},
		}
		repo.EXPECT().ReferralCommissions(ctx, referrerID).Return(rows, nil)

		report, err := q.Commissions(ctx, referrerID)
		require.NoError(t, err)

		assert.Equal(t, referrerID, report.ReferrerID)
		assert.Equal(t, int64(20_000), report.TotalCents)
		assert.Equal(t, int64(10_000), report.PaidCents)
		assert.Equal(t, int64(10_000), report.PendingCents)
		assert.Len(t, report.Rows, 3)
	})

	t.Run("no commissions yields an empty report", func(t *testing.T) {
		repo, q := newEnv(t)
		repo.EXPECT().ReferralCommissions(ctx, referrerID).Return(nil, nil)

		report, err := q.Commissions(ctx, referrerID)
		require.NoError(t, err)

		assert.Zero(t, report.TotalCents)
		assert.Empty(t, report.Rows)
	})
}
