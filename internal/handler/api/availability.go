package api

import (
	"net/http"
	"time"

	resdto "tembea/internal/handler/dto/response"
	"tembea/internal/infra"
	"tembea/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityQueries: availabilityQueries}
}

// @Summary Get availability
// @Description Remaining slots for a listing on a date. Advisory only; admission is decided at payment time.
// @Tags availability
// @Produce json
// @Param id path string true "Listing ID"
// @Param date query string true "Visit date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id}/availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid listing ID format",
		})
		return
	}

	visitDate, err := time.Parse(time.DateOnly, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing date, expected YYYY-MM-DD",
		})
		return
	}

	view, err := h.availabilityQueries.Remaining(c.Request.Context(), itemID, visitDate)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Listing not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
