package repository

import (
	"context"
	"time"

	"tembea/internal/infra"
	"tembea/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyRepository struct{}

func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{}
}

// TryInsert claims the key for this request. A duplicate-key error means an
// earlier request holds it; the caller then inspects the stored record.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, db infra.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error {
	const query = `
		INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at)
		VALUES ($1, $2, $3, $4, 'processing', $5)
	`

	if _, err := db.Exec(ctx, query, key, userID, endpoint, requestHash, expiresAt); err != nil {
		return infra.WrapRepoErr("failed to claim idempotency key", err)
	}

	return nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, db infra.DBTX, key, userID uuid.UUID, responseBodyHash string, resultBookingID uuid.UUID) error {
	const query = `
		UPDATE idempotency_keys
		SET status = 'completed', response_hash = $3, result_booking_id = $4, updated_at = now()
		WHERE key = $1 AND user_id = $2
	`

	tag, err := db.Exec(ctx, query, key, userID, responseBodyHash, resultBookingID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, db infra.DBTX, now time.Time) (int64, error) {
	const query = `DELETE FROM idempotency_keys WHERE expires_at < $1`

	tag, err := db.Exec(ctx, query, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}

	return tag.RowsAffected(), nil
}

var _ shared.IdempotencyRepository = (*IdempotencyRepository)(nil)
