package queries

import (
	"context"

	"github.com/google/uuid"
)

type PayoutQueries interface {
	// HostSummary aggregates gross earnings across a host's listings.
	// Only paid gateway bookings count; manual entries never accrue.
	HostSummary(ctx context.Context, hostID uuid.UUID) (*PayoutSummary, error)
	Commissions(ctx context.Context, referrerID uuid.UUID) (*CommissionReport, error)
}

type PayoutViewRepo interface {
	HostEarnings(ctx context.Context, hostID uuid.UUID) (*PayoutSummary, error)
	ReferralCommissions(ctx context.Context, referrerID uuid.UUID) ([]*CommissionRow, error)
}

type payoutQueriesImpl struct {
	repo PayoutViewRepo
}

func NewPayoutQueries(repo PayoutViewRepo) PayoutQueries {
	return &payoutQueriesImpl{repo: repo}
}

func (q *payoutQueriesImpl) HostSummary(ctx context.Context, hostID uuid.UUID) (*PayoutSummary, error) {
	return q.repo.HostEarnings(ctx, hostID)
}

func (q *payoutQueriesImpl) Commissions(ctx context.Context, referrerID uuid.UUID) (*CommissionReport, error) {
	rows, err := q.repo.ReferralCommissions(ctx, referrerID)
	if err != nil {
		return nil, err
	}

	report := &CommissionReport{ReferrerID: referrerID, Rows: rows}
	for _, row := range rows {
		report.TotalCents += row.AmountCents
		switch row.Status {
		case "paid":
			report.PaidCents += row.AmountCents
		default:
			report.PendingCents += row.AmountCents
		}
	}

	return report, nil
}
