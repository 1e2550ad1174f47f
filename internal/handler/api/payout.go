package api

import (
	"net/http"

	resdto "tembea/internal/handler/dto/response"
	"tembea/internal/handler/middleware"
	"tembea/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PayoutHandler struct {
	payoutQueries queries.PayoutQueries
	bookingQuery  queries.BookingQueries
}

func NewPayoutHandler(payoutQueries queries.PayoutQueries, bookingQuery queries.BookingQueries) *PayoutHandler {
	return &PayoutHandler{
		payoutQueries: payoutQueries,
		bookingQuery:  bookingQuery,
	}
}

// @Summary Host payout summary
// @Description Gross earnings over paid gateway bookings on the host's listings
// @Tags payouts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PayoutSummaryResponse
// @Failure 401 {object} map[string]string
// @Router /payouts/summary [get]
func (h *PayoutHandler) GetPayoutSummary(c *gin.Context) {
	hostID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	summary, err := h.payoutQueries.HostSummary(c.Request.Context(), hostID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPayoutSummary(summary))
}

// @Summary Referral commissions
// @Description Commission rows and totals for the current user as referrer
// @Tags payouts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CommissionReportResponse
// @Failure 401 {object} map[string]string
// @Router /payouts/commissions [get]
func (h *PayoutHandler) GetCommissions(c *gin.Context) {
	referrerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	report, err := h.payoutQueries.Commissions(c.Request.Context(), referrerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCommissionReport(report))
}

// @Summary Host bookings
// @Description Bookings across the host's own listings
// @Tags payouts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /host/bookings [get]
func (h *PayoutHandler) GetHostBookings(c *gin.Context) {
	hostID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.bookingQuery.ListByHost(c.Request.Context(), hostID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}

	c.JSON(http.StatusOK, response)
}
