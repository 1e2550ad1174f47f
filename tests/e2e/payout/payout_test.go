//go:build e2e

package payout_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"tembea/internal/domain/identity"
	"tembea/internal/handler/dto/response"
	"tembea/tests/common/dbtest"
	"tembea/tests/common/httptest"
	"tembea/tests/e2e"
	"tembea/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const summaryURL = "/api/payouts/summary"

type PayoutSuite struct {
	e2e.SharedSuite
	jwt *helper.JWTTestHelper
}

func (s *PayoutSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = helper.NewJWTTestHelper(s.Config.JWT)
}

func TestPayoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(PayoutSuite))
}

type bookingRow struct {
	status        string
	paymentStatus string
	paymentMethod string
	amountCents   int64
	refundDue     bool
}

func (s *PayoutSuite) seedBooking(itemID uuid.UUID, row bookingRow) {
	t := s.T()

	_, err := s.DB.Exec(context.Background(), `
		INSERT INTO bookings (
			id, item_id, booking_type, guest_id, guest_name, slots_booked,
			visit_date, total_amount_cents, status, payment_status,
			payment_method, checkout_request_id, refund_due
		) VALUES ($1, $2, 'trip', $3, 'Wanjiku Kamau', 2, $4, $5, $6, $7, $8, $9, $10)`,
		uuid.New(), itemID, uuid.New(),
		time.Now().AddDate(0, 0, 14).Format(time.DateOnly),
		row.amountCents, row.status, row.paymentStatus, row.paymentMethod,
		uuid.NewString(), row.refundDue)
	require.NoError(t, err)
}

// =============================================================================
// TestHostSummary - per-listing earnings aggregation
// =============================================================================

func (s *PayoutSuite) TestHostSummary() {
	s.Run("Normal case: paid and completed gateway bookings both accrue earnings", func() {
		t := s.T()

		hostID := uuid.New()
		token := s.jwt.GenerateToken(t, hostID, identity.RoleHost)
		itemID := dbtest.CreateTestListing(t, s.DB, dbtest.ListingParams{
			HostID:      hostID,
			Name:        "Diani Beach Day",
			ListingType: "trip",
			PriceCents:  250_000,
			Capacity:    10,
			Approved:    true,
		})

		s.seedBooking(itemID, bookingRow{status: "confirmed", paymentStatus: "paid", paymentMethod: "mpesa", amountCents: 500_000})
		s.seedBooking(itemID, bookingRow{status: "confirmed", paymentStatus: "completed", paymentMethod: "mpesa", amountCents: 500_000})
		// 手動記帳と返金待ちは売上に含めない
		s.seedBooking(itemID, bookingRow{status: "confirmed", paymentStatus: "paid", paymentMethod: "manual_entry", amountCents: 500_000})
		s.seedBooking(itemID, bookingRow{status: "cancelled", paymentStatus: "failed", paymentMethod: "mpesa", amountCents: 500_000, refundDue: true})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, summaryURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var summary response.PayoutSummaryResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &summary)

		require.Equal(t, hostID, summary.HostID)
		require.Equal(t, int64(1_000_000), summary.GrossCents)
		require.Equal(t, int64(2), summary.BookingCount)
		require.Equal(t, int64(1), summary.RefundDueCount)
		require.Len(t, summary.PerListing, 1)
		require.Equal(t, "Diani Beach Day", summary.PerListing[0].ListingName)
		require.Equal(t, int64(1_000_000), summary.PerListing[0].GrossCents)
	})

	s.Run("Error case: guest role is rejected by the role guard", func() {
		t := s.T()

		token := s.jwt.GenerateToken(t, uuid.New(), identity.RoleGuest)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, summaryURL, nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
