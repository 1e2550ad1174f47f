//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type ListingParams struct {
	HostID      uuid.UUID
	Name        string
	ListingType string
	PriceCents  int64
	Capacity    int32
	Approved    bool
}

// CreateTestListing inserts a listing row. Approved listings are visible
// and bookable; pending ones exercise the admin approval path.
func CreateTestListing(t *testing.T, db DBLike, p ListingParams) uuid.UUID {
	t.Helper()

	listingID := uuid.New()
	status := "pending"
	hidden := true
	if p.Approved {
		status = "approved"
		hidden = false
	}
	if p.ListingType == "" {
		p.ListingType = "trip"
	}
	if p.Capacity == 0 {
		p.Capacity = 10
	}

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO listings (id, host_id, name, listing_type, price_cents, total_capacity, approval_status, is_hidden)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		listingID, p.HostID, p.Name, p.ListingType, p.PriceCents, p.Capacity, status, hidden)
	require.NoError(t, err)

	return listingID
}

// SeedLedger pins booked_slots for a listing/date so overflow paths can be
// set up without walking the whole payment flow.
func SeedLedger(t *testing.T, db DBLike, itemID uuid.UUID, visitDate time.Time, bookedSlots int32) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO availability_ledger (item_id, visit_date, booked_slots)
		VALUES ($1, $2, $3)
		ON CONFLICT (item_id, visit_date) DO UPDATE SET booked_slots = EXCLUDED.booked_slots`,
		itemID, visitDate, bookedSlots)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
