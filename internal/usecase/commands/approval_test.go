//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tembea/internal/pkg/clock"
	"tembea/internal/usecase/commands"
	"tembea/internal/usecase/shared"
	sharedmock "tembea/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	reqdto "tembea/internal/handler/dto/request"
)

func TestApprovalCommands_ApproveItems(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	newEnv := func(t *testing.T) (*sharedmock.MockListingRepository, commands.ApprovalCommands) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		tx := sharedmock.NewMockTx(ctrl)
		listings := sharedmock.NewMockListingRepository(ctrl)

		tx.EXPECT().Listings().Return(listings).AnyTimes()
		tx.EXPECT().DB().Return(nil).AnyTimes()
		uow.EXPECT().Within(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return fn(ctx, tx)
			}).AnyTimes()

		return listings, commands.NewApprovalCommands(uow, clock.NewMockClock(now))
	}

	t.Run("success: returns the number of approved listings", func(t *testing.T) {
		listings, cmd := newEnv(t)
		ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

		listings.EXPECT().Approve(ctx, gomock.Any(), "trip", ids, adminID, now).Return(int64(2), nil)

		count, err := cmd.ApproveItems(ctx, reqdto.ApproveItemsRequest{ItemType: "trip", ItemIDs: ids}, adminID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("unknown item type", func(t *testing.T) {
		_, cmd := newEnv(t)

		_, err := cmd.ApproveItems(ctx, reqdto.ApproveItemsRequest{ItemType: "villa", ItemIDs: []uuid.UUID{uuid.New()}}, adminID)
		assert.ErrorIs(t, err, commands.ErrInvalidItemType)
	})

	t.Run("empty ID list", func(t *testing.T) {
		_, cmd := newEnv(t)

		_, err := cmd.ApproveItems(ctx, reqdto.ApproveItemsRequest{ItemType: "trip"}, adminID)
		assert.ErrorIs(t, err, commands.ErrNoItemIDs)
	})
}
