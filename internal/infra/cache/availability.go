package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"tembea/internal/pkg/config"
	"tembea/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// AvailabilityCache stores remaining-capacity snapshots under a short TTL.
// Any redis failure is logged and treated as a miss; the database read is
// the fallback, never the other way around.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, cfg config.RedisConfig) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: cfg.AvailabilityTTL}
}

func availabilityKey(itemID uuid.UUID, visitDate time.Time) string {
	return fmt.Sprintf("availability:%s:%s", itemID, visitDate.Format("2006-01-02"))
}

func (c *AvailabilityCache) Get(ctx context.Context, itemID uuid.UUID, visitDate time.Time) (*queries.AvailabilityView, bool) {
	raw, err := c.client.Get(ctx, availabilityKey(itemID, visitDate)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.WarnContext(ctx, "availability cache get failed", "error", err)
		}
		return nil, false
	}

	view := &queries.AvailabilityView{}
	if err := json.Unmarshal(raw, view); err != nil {
		slog.WarnContext(ctx, "availability cache entry corrupt", "error", err)
		return nil, false
	}

	return view, true
}

func (c *AvailabilityCache) Set(ctx context.Context, view *queries.AvailabilityView) {
	raw, err := json.Marshal(view)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, availabilityKey(view.ItemID, view.VisitDate), raw, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "availability cache set failed", "error", err)
	}
}

var _ queries.AvailabilityCache = (*AvailabilityCache)(nil)
