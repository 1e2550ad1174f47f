package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"tembea/internal/domain/booking"
	"tembea/internal/gateway/mpesa"
	"tembea/internal/infra"
	"tembea/internal/pkg/clock"
	"tembea/internal/pkg/errs"
	"tembea/internal/usecase/shared"
)

// Callback processing outcomes recorded on the callback row.
const (
	OutcomeConfirmed = "confirmed"
	OutcomeOverflow  = "overflow_rejected"
	OutcomeFailed    = "payment_failed"
	OutcomeUnmatched = "unmatched"
	OutcomeDuplicate = "duplicate"
	OutcomeRefundDue = "cancelled_refund_due"
)

type ReconcileCommands interface {
	// RecordCallback appends the raw callback to the log and reconciles it
	// inline. The append commits first so a crash mid-processing loses
	// nothing; the sweeper replays whatever never finished.
	RecordCallback(ctx context.Context, cb *mpesa.STKCallback, rawPayload json.RawMessage) error
	// ProcessCallback applies one logged callback to its booking. The whole
	// step runs in a single transaction holding a row lock on the booking,
	// which serializes concurrent callbacks for the same item/date.
	ProcessCallback(ctx context.Context, rec *shared.CallbackRecord) error
}

type reconcileCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReconcileCommands(uow shared.UnitOfWork, clk clock.Clock) ReconcileCommands {
	return &reconcileCommandsImpl{uow: uow, clock: clk}
}

func (c *reconcileCommandsImpl) RecordCallback(ctx context.Context, cb *mpesa.STKCallback, rawPayload json.RawMessage) error {
	rec := &shared.CallbackRecord{
		CheckoutRequestID: cb.CheckoutRequestID,
		MerchantRequestID: cb.MerchantRequestID,
		ResultCode:        cb.ResultCode,
		ResultDesc:        cb.ResultDesc,
		RawPayload:        rawPayload,
		Receipt:           cb.ReceiptNumber(),
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Callbacks().Insert(ctx, tx.DB(), rec)
		if err != nil {
			return err
		}
		rec.ID = id
		return nil
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := c.ProcessCallback(ctx, rec); err != nil {
		// The callback row is already durable; the sweeper picks it up.
		slog.ErrorContext(ctx, "callback reconciliation failed, deferred to sweep",
			"callback_id", rec.ID,
			"checkout_request_id", rec.CheckoutRequestID,
			"error", err)
		return err
	}

	return nil
}

func (c *reconcileCommandsImpl) ProcessCallback(ctx context.Context, rec *shared.CallbackRecord) error {
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Bookings().FindByCheckoutIDForUpdate(ctx, tx.DB(), rec.CheckoutRequestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// No booking carries this checkout ID. Keep the payload
				// for auditing and move on.
				return tx.Callbacks().MarkProcessed(ctx, tx.DB(), rec.ID, OutcomeUnmatched, now)
			}
			return err
		}

		if entity.PaymentStatus().Terminal() {
			// Replay of an already-reconciled payment. The booking state
			// must not change again.
			return tx.Callbacks().MarkProcessed(ctx, tx.DB(), rec.ID, OutcomeDuplicate, now)
		}

		if entity.Status() == booking.StatusCancelled {
			// The booking was cancelled while the charge was in flight.
			// Cancelled bookings never committed capacity, so the ledger
			// stays untouched; a successful charge still took the guest's
			// money and must be flagged for refund.
			outcome := OutcomeFailed
			if rec.ResultCode == 0 {
				if err := entity.RefundAfterCancel(); err != nil {
					return err
				}
				outcome = OutcomeRefundDue
			} else {
				if err := entity.FailPayment(); err != nil {
					return err
				}
			}
			if err := tx.Bookings().UpdateState(ctx, tx.DB(), entity); err != nil {
				return err
			}
			return tx.Callbacks().MarkProcessed(ctx, tx.DB(), rec.ID, outcome, now)
		}

		var outcome string
		if rec.ResultCode == 0 {
			outcome, err = c.settleSuccess(ctx, tx, entity, rec.Receipt)
			if err != nil {
				return err
			}
		} else {
			if err := entity.FailPayment(); err != nil {
				return err
			}
			outcome = OutcomeFailed
		}

		if err := tx.Bookings().UpdateState(ctx, tx.DB(), entity); err != nil {
			return err
		}

		return tx.Callbacks().MarkProcessed(ctx, tx.DB(), rec.ID, outcome, now)
	})
}

// settleSuccess runs the authoritative capacity check. The payment already
// went through, so an overflow here means the guest paid for a slot that no
// longer exists: reject and flag the refund.
func (c *reconcileCommandsImpl) settleSuccess(ctx context.Context, tx shared.Tx, entity *booking.Booking, receipt string) (string, error) {
	snap, err := tx.Reads().ListingByID(ctx, entity.ItemID())
	if err != nil {
		return "", err
	}

	applied, err := tx.Ledger().IncrementGuarded(
		ctx, tx.DB(),
		entity.ItemID(), entity.VisitDate(),
		entity.SlotsBooked(), snap.TotalCapacity,
	)
	if err != nil {
		return "", err
	}

	if !applied {
		if err := entity.RejectOverflow(); err != nil {
			return "", err
		}
		return OutcomeOverflow, nil
	}

	if err := entity.Confirm(receipt); err != nil {
		return "", err
	}
	return OutcomeConfirmed, nil
}
