//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"tembea/internal/domain/identity"
	"tembea/internal/handler/api"
	"tembea/internal/pkg/errs"
	"tembea/internal/usecase/queries"
	"tembea/tests/common/httptest"
	queriesmock "tembea/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PayoutHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockPayouts *queriesmock.MockPayoutQueries
	mockBooking *queriesmock.MockBookingQueries
	hostID      uuid.UUID
}

func (s *PayoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPayouts = queriesmock.NewMockPayoutQueries(s.mockCtrl)
	s.mockBooking = queriesmock.NewMockBookingQueries(s.mockCtrl)
	handler := api.NewPayoutHandler(s.mockPayouts, s.mockBooking)
	s.hostID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.hostID)
		c.Set("user_role", identity.RoleHost)
		c.Next()
	}

	s.router.GET("/payouts/summary", authMiddleware, handler.GetPayoutSummary)
	s.router.GET("/payouts/commissions", authMiddleware, handler.GetCommissions)
	s.router.GET("/host/bookings", authMiddleware, handler.GetHostBookings)
}

func (s *PayoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPayoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(PayoutHandlerTestSuite))
}

func (s *PayoutHandlerTestSuite) TestGetPayoutSummary() {
	url := "/payouts/summary"

	s.Run("success: earnings with per-listing breakdown", func() {
		summary := &queries.PayoutSummary{
			HostID:         s.hostID,
			GrossCents:     1_250_000,
			BookingCount:   5,
			RefundDueCount: 1,
			PerListing: []*queries.ListingEarnings{
				{ListingID: uuid.New(), ListingName: "Maasai Mara Safari", GrossCents: 1_000_000, BookingCount: 4},
				{ListingID: uuid.New(), ListingName: "Diani Beach Day", GrossCents: 250_000, BookingCount: 1},
			},
		}
		s.mockPayouts.EXPECT().HostSummary(gomock.Any(), s.hostID).Return(summary, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		var body struct {
			HostID       uuid.UUID `json:"hostId"`
			GrossCents   int64     `json:"grossCents"`
			BookingCount int64     `json:"bookingCount"`
			PerListing   []struct {
				ListingName string `json:"listingName"`
				GrossCents  int64  `json:"grossCents"`
			} `json:"perListing"`
		}
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(s.hostID, body.HostID)
		s.Equal(int64(1_250_000), body.GrossCents)
		s.Len(body.PerListing, 2)
		s.Equal("Maasai Mara Safari", body.PerListing[0].ListingName)
	})

	s.Run("query failure maps to 500", func() {
		s.mockPayouts.EXPECT().HostSummary(gomock.Any(), s.hostID).
			Return(nil, errs.New("connection reset"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})

	s.Run("unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *PayoutHandlerTestSuite) TestGetCommissions() {
	url := "/payouts/commissions"

	s.Run("success: rows with totals", func() {
		report := &queries.CommissionReport{
			ReferrerID: s.hostID,
			Rows: []*queries.CommissionRow{
				{
					ID:                 uuid.New(),
					BookingID:          uuid.New(),
					CommissionType:     "referral",
					AmountCents:        10_000,
					BookingAmountCents: 200_000,
					Status:             "paid",
					CreatedAt:          time.Now().UTC(),
				},
			},
			TotalCents:   10_000,
			PendingCents: 0,
			PaidCents:    10_000,
		}
		s.mockPayouts.EXPECT().Commissions(gomock.Any(), s.hostID).Return(report, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		var body struct {
			TotalCents int64 `json:"totalCents"`
			PaidCents  int64 `json:"paidCents"`
			Rows       []struct {
				CommissionType string `json:"commissionType"`
				AmountCents    int64  `json:"amountCents"`
			} `json:"rows"`
		}
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(int64(10_000), body.TotalCents)
		s.Len(body.Rows, 1)
		s.Equal("referral", body.Rows[0].CommissionType)
	})

	s.Run("query failure maps to 500", func() {
		s.mockPayouts.EXPECT().Commissions(gomock.Any(), s.hostID).
			Return(nil, errs.New("connection reset"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *PayoutHandlerTestSuite) TestGetHostBookings() {
	url := "/host/bookings"

	s.Run("success: all bookings on the host's listings", func() {
		items := []*queries.BookingListItem{
			{ID: uuid.New(), ItemName: "Maasai Mara Safari", SlotsBooked: 2, TotalAmountCents: 500_000, Status: "confirmed"},
			{ID: uuid.New(), ItemName: "Diani Beach Day", SlotsBooked: 1, TotalAmountCents: 250_000, Status: "pending"},
		}
		s.mockBooking.EXPECT().ListByHost(gomock.Any(), s.hostID, 0).Return(items, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		var body []struct {
			ItemName string `json:"itemName"`
			Status   string `json:"status"`
		}
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Len(body, 2)
		s.Equal("Maasai Mara Safari", body[0].ItemName)
	})

	s.Run("query failure maps to 500", func() {
		s.mockBooking.EXPECT().ListByHost(gomock.Any(), s.hostID, 0).
			Return(nil, errs.New("connection reset"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
