package api

import (
	"errors"
	"net/http"

	bookingdomain "tembea/internal/domain/booking"
	reqdto "tembea/internal/handler/dto/request"
	resdto "tembea/internal/handler/dto/response"
	"tembea/internal/handler/middleware"
	"tembea/internal/infra"
	"tembea/internal/usecase/commands"
	"tembea/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errIdempotencyKeyRequired = errors.New("Idempotency-Key header is required")

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Admit a booking and initiate the M-Pesa STK push
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.bookingCommands.Admit(c.Request.Context(), req, userID, idempotencyKey)
	if err != nil {
		h.respondAdmitError(c, err)
		return
	}

	response := resdto.FromBookingView(result.Booking)
	response.CustomerMessage = result.CustomerMessage

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, response)
}

func (h *BookingHandler) respondAdmitError(c *gin.Context, err error) {
	var capErr *commands.CapacityExceededError
	switch {
	case errors.Is(err, commands.ErrListingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Listing not found",
		})
	case errors.Is(err, commands.ErrListingNotBookable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Listing is not open for booking",
		})
	case errors.As(err, &capErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":     "Not enough slots available",
			"remaining": capErr.Remaining,
		})
	case errors.Is(err, commands.ErrDuplicateBooking):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Duplicate booking request with different parameters",
		})
	case errors.Is(err, commands.ErrIdempotencyInProgress):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking request is currently being processed",
		})
	case errors.Is(err, commands.ErrPaymentInitiation):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Payment initiation failed, please retry",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Booking request failed validation",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// @Summary Record offline booking
// @Description Host records a booking sold outside the platform
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ManualBookingRequest true "Manual booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/manual [post]
func (h *BookingHandler) CreateManualBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ManualBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.ManualEntry(c.Request.Context(), req, userID)
	if err != nil {
		var capErr *commands.CapacityExceededError
		switch {
		case errors.Is(err, commands.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Listing not found",
			})
		case errors.Is(err, commands.ErrNotListingOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Listing belongs to another host",
			})
		case errors.Is(err, commands.ErrListingNotBookable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Listing is not open for booking",
			})
		case errors.As(err, &capErr):
			c.JSON(http.StatusConflict, gin.H{
				"error":     "Not enough slots available",
				"remaining": capErr.Remaining,
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Booking request failed validation",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Guests cancel own bookings more than 48h out; hosts cancel bookings on own listings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.Cancel(c.Request.Context(), id, userID, role); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, commands.ErrCancelNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "You may not cancel this booking",
			})
		case errors.Is(err, bookingdomain.ErrCancellationWindowClosed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Bookings can only be cancelled more than 48 hours before the visit date",
			})
		case errors.Is(err, bookingdomain.ErrAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is already cancelled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), userID, role, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "You may not read this booking",
			})
		case infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get user bookings
// @Description Get bookings for the current user (as guest)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.bookingQueries.ListByGuest(c.Request.Context(), userID, 0)
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

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}
