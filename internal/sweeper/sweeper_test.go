//go:build unit

package sweeper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tembea/internal/pkg/clock"
	"tembea/internal/pkg/config"
	"tembea/internal/sweeper"
	"tembea/internal/usecase/shared"
	commandsmock "tembea/tests/mock/commands"
	sharedmock "tembea/tests/mock/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

type sweepEnv struct {
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	bookings    *sharedmock.MockBookingRepository
	callbacks   *sharedmock.MockCallbackRepository
	idempotency *sharedmock.MockIdempotencyRepository
	reconcile   *commandsmock.MockReconcileCommands
	clock       *clock.MockClock
	sweeper     *sweeper.Sweeper
}

func newSweepEnv(t *testing.T, cfg config.SweepConfig) *sweepEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &sweepEnv{
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		tx:          sharedmock.NewMockTx(ctrl),
		bookings:    sharedmock.NewMockBookingRepository(ctrl),
		callbacks:   sharedmock.NewMockCallbackRepository(ctrl),
		idempotency: sharedmock.NewMockIdempotencyRepository(ctrl),
		reconcile:   commandsmock.NewMockReconcileCommands(ctrl),
		clock:       clock.NewMockClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)),
	}

	env.tx.EXPECT().Bookings().Return(env.bookings).AnyTimes()
	env.tx.EXPECT().Callbacks().Return(env.callbacks).AnyTimes()
	env.tx.EXPECT().Idempotency().Return(env.idempotency).AnyTimes()
	env.tx.EXPECT().DB().Return(nil).AnyTimes()
	env.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, env.tx)
		}).AnyTimes()

	env.sweeper = sweeper.New(env.uow, env.reconcile, cfg, env.clock)
	return env
}

func TestSweeper_Sweep(t *testing.T) {
	ctx := context.Background()
	cfg := config.SweepConfig{
		Interval:       5 * time.Minute,
		PendingTimeout: 2 * time.Hour,
		CallbackGrace:  time.Minute,
	}

	t.Run("replays unprocessed callbacks past the grace period", func(t *testing.T) {
		env := newSweepEnv(t, cfg)
		now := env.clock.Now()
		recs := []*shared.CallbackRecord{
			{ID: uuid.New(), CheckoutRequestID: "ws_CO_1"},
			{ID: uuid.New(), CheckoutRequestID: "ws_CO_2"},
		}

		env.callbacks.EXPECT().
			FindUnprocessed(gomock.Any(), gomock.Any(), now.Add(-cfg.CallbackGrace), int32(100)).
			Return(recs, nil)
		env.reconcile.EXPECT().ProcessCallback(gomock.Any(), recs[0]).Return(nil)
		env.reconcile.EXPECT().ProcessCallback(gomock.Any(), recs[1]).Return(nil)
		env.bookings.EXPECT().FailStalePending(gomock.Any(), gomock.Any(), now.Add(-cfg.PendingTimeout)).Return(int64(0), nil)
		env.idempotency.EXPECT().DeleteExpired(gomock.Any(), gomock.Any(), now).Return(int64(0), nil)

		env.sweeper.Sweep(ctx)
	})

	t.Run("a failing replay leaves the row for the next tick", func(t *testing.T) {
		env := newSweepEnv(t, cfg)
		recs := []*shared.CallbackRecord{
			{ID: uuid.New(), CheckoutRequestID: "ws_CO_3"},
			{ID: uuid.New(), CheckoutRequestID: "ws_CO_4"},
		}

		env.callbacks.EXPECT().FindUnprocessed(gomock.Any(), gomock.Any(), gomock.Any(), int32(100)).Return(recs, nil)
		env.reconcile.EXPECT().ProcessCallback(gomock.Any(), recs[0]).Return(errors.New("deadlock detected"))
		// The second record is still attempted.
		env.reconcile.EXPECT().ProcessCallback(gomock.Any(), recs[1]).Return(nil)
		env.bookings.EXPECT().FailStalePending(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		env.idempotency.EXPECT().DeleteExpired(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		env.sweeper.Sweep(ctx)
	})

	t.Run("steps are independent when one fails", func(t *testing.T) {
		env := newSweepEnv(t, cfg)

		env.callbacks.EXPECT().FindUnprocessed(gomock.Any(), gomock.Any(), gomock.Any(), int32(100)).
			Return(nil, errors.New("connection refused"))
		env.bookings.EXPECT().FailStalePending(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(3), nil)
		env.idempotency.EXPECT().DeleteExpired(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(7), nil)

		env.sweeper.Sweep(ctx)
	})
}
