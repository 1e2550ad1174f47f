//go:build unit

package api_test

import (
	"net/http"
	"testing"

	bookingdomain "tembea/internal/domain/booking"
	"tembea/internal/domain/identity"
	"tembea/internal/handler/api"
	resdto "tembea/internal/handler/dto/response"
	"tembea/internal/infra"
	"tembea/internal/usecase/commands"
	"tembea/internal/usecase/queries"
	"tembea/tests/common/httptest"
	"tembea/tests/common/testutil"
	commandsmock "tembea/tests/mock/commands"
	queriesmock "tembea/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", identity.RoleGuest)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.GetUserBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.CancelBooking)
	s.router.POST("/bookings/manual", authMiddleware, s.handler.CreateManualBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func validBookingBody() map[string]any {
	return map[string]any{
		"item_id":    uuid.NewString(),
		"item_type":  "trip",
		"guest_name": "Wanjiku Kamau",
		"phone":      "254712345678",
		"slots":      2,
		"visit_date": "2026-09-15",
	}
}

func idempotencyHeader() map[string]string {
	return map[string]string{"Idempotency-Key": uuid.NewString()}
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	s.Run("success: returns 201 with the STK push customer message", func() {
		view := &queries.BookingView{ID: uuid.New(), Status: "pending", PaymentStatus: "pending"}
		s.mockCommands.EXPECT().Admit(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).
			Return(&commands.AdmitResult{Booking: view, CustomerMessage: "Success. Request accepted for processing"}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, validBookingBody(), "bearer-token", idempotencyHeader())

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal("Success. Request accepted for processing", resp.CustomerMessage)
	})

	s.Run("replay: returns 200 for an already-completed idempotency key", func() {
		view := &queries.BookingView{ID: uuid.New(), Status: "pending"}
		s.mockCommands.EXPECT().Admit(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).
			Return(&commands.AdmitResult{Booking: view, IsReplayed: true}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, validBookingBody(), "bearer-token", idempotencyHeader())
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("missing Idempotency-Key header returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBookingBody(), "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("malformed Idempotency-Key returns 400", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, validBookingBody(), "bearer-token",
			map[string]string{"Idempotency-Key": "not-a-uuid"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unauthorized without a token", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, validBookingBody(), "", idempotencyHeader())
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	validationCases := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "missing field: item_id", mutate: testutil.Field("item_id", nil)},
		{name: "missing field: item_type", mutate: testutil.Field("item_type", nil)},
		{name: "missing field: guest_name", mutate: testutil.Field("guest_name", nil)},
		{name: "missing field: phone", mutate: testutil.Field("phone", nil)},
		{name: "invalid item_type", mutate: testutil.Field("item_type", "villa")},
	}
	for _, tc := range validationCases {
		s.Run("validation: "+tc.name, func() {
			body := validBookingBody()
			tc.mutate(body)
			rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, "bearer-token", idempotencyHeader())
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}

	errorCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "listing not found", err: commands.ErrListingNotFound, expectCode: http.StatusNotFound},
		{name: "listing not bookable", err: commands.ErrListingNotBookable, expectCode: http.StatusUnprocessableEntity},
		{name: "capacity exceeded", err: &commands.CapacityExceededError{Remaining: 1}, expectCode: http.StatusConflict},
		{name: "duplicate request", err: commands.ErrDuplicateBooking, expectCode: http.StatusConflict},
		{name: "request in progress", err: commands.ErrIdempotencyInProgress, expectCode: http.StatusConflict},
		{name: "gateway down", err: commands.ErrPaymentInitiation, expectCode: http.StatusBadGateway},
		{name: "domain validation", err: commands.ErrDomainValidation, expectCode: http.StatusUnprocessableEntity},
	}
	for _, tc := range errorCases {
		s.Run("error mapping: "+tc.name, func() {
			s.mockCommands.EXPECT().Admit(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).Return(nil, tc.err)
			rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, validBookingBody(), "bearer-token", idempotencyHeader())
			s.Equal(tc.expectCode, rec.Code)
		})
	}

	s.Run("capacity exceeded reports remaining slots", func() {
		s.mockCommands.EXPECT().Admit(gomock.Any(), gomock.Any(), s.userID, gomock.Any()).
			Return(nil, &commands.CapacityExceededError{Remaining: 3})

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, validBookingBody(), "bearer-token", idempotencyHeader())

		s.Equal(http.StatusConflict, rec.Code)
		var body struct {
			Remaining int32 `json:"remaining"`
		}
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(int32(3), body.Remaining)
	})
}

// ================================================================================
// TestCreateManualBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateManualBooking() {
	url := "/bookings/manual"

	s.Run("success: returns 201 with the confirmed booking", func() {
		view := &queries.BookingView{ID: uuid.New(), Status: "confirmed", PaymentStatus: "paid", PaymentMethod: "manual_entry"}
		s.mockCommands.EXPECT().ManualEntry(gomock.Any(), gomock.Any(), s.userID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBookingBody(), "bearer-token")

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal("manual_entry", resp.PaymentMethod)
	})

	s.Run("another host's listing returns 403", func() {
		s.mockCommands.EXPECT().ManualEntry(gomock.Any(), gomock.Any(), s.userID).Return(nil, commands.ErrNotListingOwner)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBookingBody(), "bearer-token")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("overflow returns 409", func() {
		s.mockCommands.EXPECT().ManualEntry(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, &commands.CapacityExceededError{Remaining: 0})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBookingBody(), "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 200 with the booking", func() {
		view := &queries.BookingView{ID: bookingID, Status: "confirmed"}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, identity.RoleGuest, bookingID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(bookingID, resp.ID)
	})

	s.Run("foreign booking returns 403", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, identity.RoleGuest, bookingID).
			Return(nil, queries.ErrBookingAccessDenied)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("missing booking returns 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, identity.RoleGuest, bookingID).
			Return(nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("malformed UUID returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestCancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, s.userID, identity.RoleGuest).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "not found", err: commands.ErrBookingNotFound, expectCode: http.StatusNotFound},
		{name: "not allowed", err: commands.ErrCancelNotAllowed, expectCode: http.StatusForbidden},
		{name: "window closed", err: bookingdomain.ErrCancellationWindowClosed, expectCode: http.StatusUnprocessableEntity},
		{name: "already cancelled", err: bookingdomain.ErrAlreadyCancelled, expectCode: http.StatusConflict},
	}
	for _, tc := range errorCases {
		s.Run("error mapping: "+tc.name, func() {
			s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, s.userID, identity.RoleGuest).Return(tc.err)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
			s.Equal(tc.expectCode, rec.Code)
		})
	}
}

// ================================================================================
// TestGetUserBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetUserBookings() {
	s.Run("success: returns the guest's bookings", func() {
		items := []*queries.BookingListItem{
			{ID: uuid.New(), Status: "confirmed"},
			{ID: uuid.New(), Status: "pending"},
		}
		s.mockQueries.EXPECT().ListByGuest(gomock.Any(), s.userID, 0).Return(items, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var resp []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 2)
	})
}
