package uow

import (
	"context"
	"errors"
	"time"

	"tembea/internal/infra"
	"tembea/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type commandReads struct {
	db infra.DBTX
}

func (r *commandReads) ListingByID(ctx context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	const query = `
		SELECT id, host_id, name, listing_type, price_cents, total_capacity, approval_status, is_hidden
		FROM listings
		WHERE id = $1
	`

	snap := &shared.ListingSnapshot{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID,
		&snap.HostID,
		&snap.Name,
		&snap.ListingType,
		&snap.PriceCents,
		&snap.TotalCapacity,
		&snap.ApprovalStatus,
		&snap.IsHidden,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing by ID", err)
	}

	return snap, nil
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	const query = `
		SELECT id, item_id, booking_type, guest_id, slots_booked, visit_date, status, payment_status, payment_method
		FROM bookings
		WHERE id = $1
	`

	snap := &shared.BookingSnapshot{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID,
		&snap.ItemID,
		&snap.BookingType,
		&snap.GuestID,
		&snap.SlotsBooked,
		&snap.VisitDate,
		&snap.Status,
		&snap.PaymentStatus,
		&snap.PaymentMethod,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return snap, nil
}

// BookedSlots answers the advisory availability read; a missing ledger row
// means no committed bookings yet.
func (r *commandReads) BookedSlots(ctx context.Context, itemID uuid.UUID, visitDate time.Time) (int32, error) {
	const query = `
		SELECT booked_slots
		FROM availability_ledger
		WHERE item_id = $1 AND visit_date = $2
	`

	var booked int32
	err := r.db.QueryRow(ctx, query, itemID, visitDate).Scan(&booked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to read booked slots", err)
	}

	return booked, nil
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	const query = `
		SELECT key, user_id, status, request_hash, result_booking_id, expires_at
		FROM idempotency_keys
		WHERE key = $1 AND user_id = $2
	`

	rec := &shared.IdempotencyRecord{}
	err := r.db.QueryRow(ctx, query, key, userID).Scan(
		&rec.Key,
		&rec.UserID,
		&rec.Status,
		&rec.RequestHash,
		&rec.ResultBookingID,
		&rec.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find idempotency key", err)
	}

	return rec, nil
}
