package readstore

import (
	"context"

	"tembea/internal/infra"
	"tembea/internal/usecase/queries"

	"github.com/google/uuid"
)

type PayoutReadStore struct {
	db infra.DBTX
}

func NewPayoutReadStore(db infra.DBTX) *PayoutReadStore {
	return &PayoutReadStore{db: db}
}

// HostEarnings sums settled gateway bookings (paid or completed) per listing.
// Manual entries are excluded: a host recording an offline sale earns nothing
// through us.
func (r *PayoutReadStore) HostEarnings(ctx context.Context, hostID uuid.UUID) (*queries.PayoutSummary, error) {
	const earningsQuery = `
		SELECT l.id, l.name,
		       COALESCE(SUM(b.total_amount_cents), 0),
		       COUNT(b.id)
		FROM listings l
		LEFT JOIN bookings b
		       ON b.item_id = l.id
		      AND b.status = 'confirmed'
		      AND b.payment_status IN ('paid', 'completed')
		      AND b.payment_method <> 'manual_entry'
		WHERE l.host_id = $1
		GROUP BY l.id, l.name
		ORDER BY l.name
	`

	rows, err := r.db.Query(ctx, earningsQuery, hostID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate host earnings", err)
	}
	defer rows.Close()

	summary := &queries.PayoutSummary{HostID: hostID}
	for rows.Next() {
		item := &queries.ListingEarnings{}
		if err := rows.Scan(&item.ListingID, &item.ListingName, &item.GrossCents, &item.BookingCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan listing earnings", err)
		}
		summary.GrossCents += item.GrossCents
		summary.BookingCount += item.BookingCount
		summary.PerListing = append(summary.PerListing, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate listing earnings", err)
	}

	const refundQuery = `
		SELECT COUNT(*)
		FROM bookings b
		JOIN listings l ON l.id = b.item_id
		WHERE l.host_id = $1 AND b.refund_due = true
	`

	if err := r.db.QueryRow(ctx, refundQuery, hostID).Scan(&summary.RefundDueCount); err != nil {
		return nil, infra.WrapRepoErr("failed to count refund-due bookings", err)
	}

	return summary, nil
}

func (r *PayoutReadStore) ReferralCommissions(ctx context.Context, referrerID uuid.UUID) ([]*queries.CommissionRow, error) {
	const query = `
		SELECT id, booking_id, commission_type, commission_amount_cents,
		       booking_amount_cents, status, created_at
		FROM referral_commissions
		WHERE referrer_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, referrerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list referral commissions", err)
	}
	defer rows.Close()

	var result []*queries.CommissionRow
	for rows.Next() {
		row := &queries.CommissionRow{}
		if err := rows.Scan(
			&row.ID,
			&row.BookingID,
			&row.CommissionType,
			&row.AmountCents,
			&row.BookingAmountCents,
			&row.Status,
			&row.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan commission row", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate commissions", err)
	}

	return result, nil
}

var _ queries.PayoutViewRepo = (*PayoutReadStore)(nil)
