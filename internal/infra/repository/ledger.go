package repository

import (
	"context"
	"errors"
	"time"

	"tembea/internal/infra"
	"tembea/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type LedgerRepository struct{}

func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{}
}

// IncrementGuarded is the single authoritative admission gate: the upsert
// takes the row lock on (item_id, visit_date) and its WHERE clause rejects
// any increment that would push booked_slots past capacity. No rows back
// means the increment was not applied.
func (r *LedgerRepository) IncrementGuarded(ctx context.Context, db infra.DBTX, itemID uuid.UUID, visitDate time.Time, slots, capacity int32) (bool, error) {
	if slots > capacity {
		return false, nil
	}

	const query = `
		INSERT INTO availability_ledger (item_id, visit_date, booked_slots)
		VALUES ($1, $2, $3)
		ON CONFLICT (item_id, visit_date) DO UPDATE
		SET booked_slots = availability_ledger.booked_slots + EXCLUDED.booked_slots,
		    updated_at = now()
		WHERE availability_ledger.booked_slots + EXCLUDED.booked_slots <= $4
		RETURNING booked_slots
	`

	var booked int32
	err := db.QueryRow(ctx, query, itemID, visitDate, slots, capacity).Scan(&booked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to increment availability ledger", err)
	}

	return true, nil
}

// Decrement releases capacity on cancellation, flooring at zero.
func (r *LedgerRepository) Decrement(ctx context.Context, db infra.DBTX, itemID uuid.UUID, visitDate time.Time, slots int32) error {
	const query = `
		UPDATE availability_ledger
		SET booked_slots = GREATEST(booked_slots - $3, 0), updated_at = now()
		WHERE item_id = $1 AND visit_date = $2
	`

	if _, err := db.Exec(ctx, query, itemID, visitDate, slots); err != nil {
		return infra.WrapRepoErr("failed to decrement availability ledger", err)
	}

	return nil
}

var _ shared.LedgerRepository = (*LedgerRepository)(nil)
