//go:build e2e

package admin_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"tembea/internal/domain/identity"
	"tembea/tests/common/dbtest"
	"tembea/tests/common/httptest"
	"tembea/tests/e2e"
	"tembea/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const approveURL = "/api/admin/items/approve"

type AdminSuite struct {
	e2e.SharedSuite
	jwt *helper.JWTTestHelper
}

func (s *AdminSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = helper.NewJWTTestHelper(s.Config.JWT)
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AdminSuite))
}

func (s *AdminSuite) createPendingListing() uuid.UUID {
	return dbtest.CreateTestListing(s.T(), s.DB, dbtest.ListingParams{
		HostID:      uuid.New(),
		Name:        "Lamu Dhow Cruise",
		ListingType: "trip",
		PriceCents:  180_000,
		Capacity:    8,
		Approved:    false,
	})
}

func (s *AdminSuite) listingStatus(id uuid.UUID) (string, bool) {
	var status string
	var hidden bool
	err := s.DB.QueryRow(context.Background(),
		"SELECT approval_status, is_hidden FROM listings WHERE id = $1", id).Scan(&status, &hidden)
	require.NoError(s.T(), err)
	return status, hidden
}

func (s *AdminSuite) TestApproveItems() {
	s.Run("Normal case: approval makes pending listings visible and bookable", func() {
		t := s.T()

		token := s.jwt.GenerateToken(t, uuid.New(), identity.RoleAdmin)
		first := s.createPendingListing()
		second := s.createPendingListing()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, approveURL,
			map[string]any{"item_type": "trip", "item_ids": []uuid.UUID{first, second}}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body struct {
			Approved int64 `json:"approved"`
		}
		_ = httptest.DecodeResponseBody(t, w.Body, &body)
		require.Equal(t, int64(2), body.Approved)

		for _, id := range []uuid.UUID{first, second} {
			status, hidden := s.listingStatus(id)
			require.Equal(t, "approved", status)
			require.False(t, hidden)
		}

		// 承認済みリスティングは予約導線に乗る
		guestToken := s.jwt.GenerateToken(t, uuid.New(), identity.RoleGuest)
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}
		visitDate := time.Now().AddDate(0, 0, 7).Format(time.DateOnly)
		bw := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, "/api/bookings",
			map[string]any{
				"item_id":    first,
				"item_type":  "trip",
				"guest_name": "Wanjiku Kamau",
				"phone":      "254712345678",
				"slots":      1,
				"visit_date": visitDate,
			}, guestToken, headers)
		require.Equal(t, http.StatusCreated, bw.Code, bw.Body.String())
	})

	s.Run("Error case: pending listings are not bookable before approval", func() {
		t := s.T()

		listingID := s.createPendingListing()
		guestToken := s.jwt.GenerateToken(t, uuid.New(), identity.RoleGuest)
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}
		visitDate := time.Now().AddDate(0, 0, 7).Format(time.DateOnly)

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, "/api/bookings",
			map[string]any{
				"item_id":    listingID,
				"item_type":  "trip",
				"guest_name": "Wanjiku Kamau",
				"phone":      "254712345678",
				"slots":      1,
				"visit_date": visitDate,
			}, guestToken, headers)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Error case: host role cannot reach the approval endpoint", func() {
		t := s.T()

		token := s.jwt.GenerateToken(t, uuid.New(), identity.RoleHost)
		listingID := s.createPendingListing()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, approveURL,
			map[string]any{"item_type": "trip", "item_ids": []uuid.UUID{listingID}}, token)
		require.Equal(t, http.StatusForbidden, w.Code)

		status, _ := s.listingStatus(listingID)
		require.Equal(t, "pending", status)
	})
}
