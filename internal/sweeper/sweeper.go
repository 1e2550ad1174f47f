package sweeper

import (
	"context"
	"log/slog"
	"time"

	"tembea/internal/pkg/clock"
	"tembea/internal/pkg/config"
	"tembea/internal/usecase/commands"
	"tembea/internal/usecase/shared"
)

const callbackBatchSize = 100

// Sweeper is the safety net behind the inline reconciliation path. Each tick
// it replays callbacks that never finished processing, fails gateway bookings
// stuck pending past the timeout, and prunes expired idempotency keys.
type Sweeper struct {
	uow       shared.UnitOfWork
	reconcile commands.ReconcileCommands
	cfg       config.SweepConfig
	clock     clock.Clock

	cancel context.CancelFunc
	done   chan struct{}
}

func New(uow shared.UnitOfWork, reconcile commands.ReconcileCommands, cfg config.SweepConfig, clk clock.Clock) *Sweeper {
	return &Sweeper{
		uow:       uow,
		reconcile: reconcile,
		cfg:       cfg,
		clock:     clk,
	}
}

func (s *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx)
}

func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one pass. Each step is independent; a failure in one is logged
// and does not stop the others.
func (s *Sweeper) Sweep(ctx context.Context) {
	now := s.clock.Now()

	if err := s.replayCallbacks(ctx, now); err != nil {
		slog.ErrorContext(ctx, "callback replay sweep failed", "error", err)
	}
	if err := s.failStalePendings(ctx, now); err != nil {
		slog.ErrorContext(ctx, "stale pending sweep failed", "error", err)
	}
	if err := s.pruneIdempotencyKeys(ctx, now); err != nil {
		slog.ErrorContext(ctx, "idempotency key prune failed", "error", err)
	}
}

func (s *Sweeper) replayCallbacks(ctx context.Context, now time.Time) error {
	cutoff := now.Add(-s.cfg.CallbackGrace)

	var recs []*shared.CallbackRecord
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		recs, err = tx.Callbacks().FindUnprocessed(ctx, tx.DB(), cutoff, callbackBatchSize)
		return err
	})
	if err != nil {
		return err
	}

	for _, rec := range recs {
		if err := s.reconcile.ProcessCallback(ctx, rec); err != nil {
			// Leave the row unprocessed; the next tick tries again.
			slog.WarnContext(ctx, "callback replay failed",
				"callback_id", rec.ID,
				"checkout_request_id", rec.CheckoutRequestID,
				"error", err)
		} else {
			slog.InfoContext(ctx, "callback replayed",
				"callback_id", rec.ID,
				"checkout_request_id", rec.CheckoutRequestID)
		}
	}

	return nil
}

func (s *Sweeper) failStalePendings(ctx context.Context, now time.Time) error {
	cutoff := now.Add(-s.cfg.PendingTimeout)

	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		count, err := tx.Bookings().FailStalePending(ctx, tx.DB(), cutoff)
		if err != nil {
			return err
		}
		if count > 0 {
			slog.InfoContext(ctx, "stale pending bookings failed", "count", count)
		}
		return nil
	})
}

func (s *Sweeper) pruneIdempotencyKeys(ctx context.Context, now time.Time) error {
	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		count, err := tx.Idempotency().DeleteExpired(ctx, tx.DB(), now)
		if err != nil {
			return err
		}
		if count > 0 {
			slog.InfoContext(ctx, "expired idempotency keys pruned", "count", count)
		}
		return nil
	})
}
