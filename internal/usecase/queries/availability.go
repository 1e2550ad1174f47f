package queries

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	// Remaining reports capacity minus booked slots for one listing/date.
	// The response is advisory: the ledger is only authoritative inside the
	// reconciliation transaction.
	Remaining(ctx context.Context, itemID uuid.UUID, visitDate time.Time) (*AvailabilityView, error)
}

type AvailabilityViewRepo interface {
	// CapacityAndBooked reads the listing capacity joined with the ledger;
	// a missing ledger row reads as zero booked.
	CapacityAndBooked(ctx context.Context, itemID uuid.UUID, visitDate time.Time) (capacity, booked int32, err error)
}

// AvailabilityCache is the short-TTL layer in front of the ledger read.
// Misses and cache failures both fall through to the database.
type AvailabilityCache interface {
	Get(ctx context.Context, itemID uuid.UUID, visitDate time.Time) (*AvailabilityView, bool)
	Set(ctx context.Context, view *AvailabilityView)
}

type availabilityQueriesImpl struct {
	repo  AvailabilityViewRepo
	cache AvailabilityCache
}

func NewAvailabilityQueries(repo AvailabilityViewRepo, cache AvailabilityCache) AvailabilityQueries {
	return &availabilityQueriesImpl{repo: repo, cache: cache}
}

func (q *availabilityQueriesImpl) Remaining(ctx context.Context, itemID uuid.UUID, visitDate time.Time) (*AvailabilityView, error) {
	visitDate = visitDate.Truncate(24 * time.Hour)

	if view, ok := q.cache.Get(ctx, itemID, visitDate); ok {
		return view, nil
	}

	capacity, booked, err := q.repo.CapacityAndBooked(ctx, itemID, visitDate)
	if err != nil {
		return nil, err
	}

	remaining := capacity - booked
	if remaining < 0 {
		// Should not happen under the guarded increment; log and clamp.
		slog.WarnContext(ctx, "ledger exceeds capacity",
			"item_id", itemID, "visit_date", visitDate,
			"capacity", capacity, "booked", booked)
		remaining = 0
	}

	view := &AvailabilityView{
		ItemID:    itemID,
		VisitDate: visitDate,
		Capacity:  capacity,
		Booked:    booked,
		Remaining: remaining,
	}
	q.cache.Set(ctx, view)

	return view, nil
}
