package repository

import (
	"context"
	"time"

	"tembea/internal/infra"
	"tembea/internal/usecase/shared"

	"github.com/google/uuid"
)

type ListingRepository struct{}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{}
}

// Approve flips the moderation state for all matched listings of one type
// and makes them visible. Already-approved listings are matched too; the
// operation is idempotent by construction.
func (r *ListingRepository) Approve(ctx context.Context, db infra.DBTX, listingType string, ids []uuid.UUID, adminID uuid.UUID, at time.Time) (int64, error) {
	const query = `
		UPDATE listings
		SET approval_status = 'approved',
		    approved_at = $3,
		    approved_by = $4,
		    is_hidden = false,
		    updated_at = now()
		WHERE listing_type = $1 AND id = ANY($2)
	`

	tag, err := db.Exec(ctx, query, listingType, ids, at, adminID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to approve listings", err)
	}

	return tag.RowsAffected(), nil
}

var _ shared.ListingRepository = (*ListingRepository)(nil)
