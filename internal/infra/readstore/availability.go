package readstore

import (
	"context"
	"errors"
	"time"

	"tembea/internal/infra"
	"tembea/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AvailabilityReadStore struct {
	db infra.DBTX
}

func NewAvailabilityReadStore(db infra.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: db}
}

func (r *AvailabilityReadStore) CapacityAndBooked(ctx context.Context, itemID uuid.UUID, visitDate time.Time) (int32, int32, error) {
	const query = `
		SELECT l.total_capacity, COALESCE(al.booked_slots, 0)
		FROM listings l
		LEFT JOIN availability_ledger al
		       ON al.item_id = l.id AND al.visit_date = $2
		WHERE l.id = $1
	`

	var capacity, booked int32
	err := r.db.QueryRow(ctx, query, itemID, visitDate).Scan(&capacity, &booked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return 0, 0, infra.WrapRepoErr("failed to read availability", err)
	}

	return capacity, booked, nil
}

var _ queries.AvailabilityViewRepo = (*AvailabilityReadStore)(nil)
