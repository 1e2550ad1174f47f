package repository

import (
	"context"
	"time"

	"tembea/internal/infra"
	"tembea/internal/usecase/shared"

	"github.com/google/uuid"
)

type CallbackRepository struct{}

func NewCallbackRepository() *CallbackRepository {
	return &CallbackRepository{}
}

// Insert appends a callback to the log before any state transition runs, so
// the payload survives a failed reconciliation and the sweeper can retry it.
func (r *CallbackRepository) Insert(ctx context.Context, db infra.DBTX, rec *shared.CallbackRecord) (uuid.UUID, error) {
	const query = `
		INSERT INTO payment_callbacks (
			checkout_request_id, merchant_request_id, result_code, result_desc,
			raw_payload, mpesa_receipt
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id uuid.UUID
	err := db.QueryRow(ctx, query,
		rec.CheckoutRequestID,
		rec.MerchantRequestID,
		rec.ResultCode,
		rec.ResultDesc,
		rec.RawPayload,
		nilIfEmpty(rec.Receipt),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert payment callback", err)
	}

	return id, nil
}

func (r *CallbackRepository) MarkProcessed(ctx context.Context, db infra.DBTX, id uuid.UUID, outcome string, at time.Time) error {
	const query = `
		UPDATE payment_callbacks
		SET processed = true, outcome = $2, processed_at = $3
		WHERE id = $1
	`

	tag, err := db.Exec(ctx, query, id, outcome, at)
	if err != nil {
		return infra.WrapRepoErr("failed to mark callback processed", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("callback not found", nil, infra.KindNotFound)
	}

	return nil
}

// FindUnprocessed returns callbacks older than the grace cutoff that never
// completed reconciliation, oldest first.
func (r *CallbackRepository) FindUnprocessed(ctx context.Context, db infra.DBTX, before time.Time, limit int32) ([]*shared.CallbackRecord, error) {
	const query = `
		SELECT id, checkout_request_id, merchant_request_id, result_code,
		       result_desc, raw_payload, COALESCE(mpesa_receipt, ''), created_at
		FROM payment_callbacks
		WHERE processed = false AND created_at < $1
		ORDER BY created_at
		LIMIT $2
	`

	rows, err := db.Query(ctx, query, before, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unprocessed callbacks", err)
	}
	defer rows.Close()

	var recs []*shared.CallbackRecord
	for rows.Next() {
		rec := &shared.CallbackRecord{}
		if err := rows.Scan(
			&rec.ID,
			&rec.CheckoutRequestID,
			&rec.MerchantRequestID,
			&rec.ResultCode,
			&rec.ResultDesc,
			&rec.RawPayload,
			&rec.Receipt,
			&rec.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan callback", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate callbacks", err)
	}

	return recs, nil
}

var _ shared.CallbackRepository = (*CallbackRepository)(nil)
