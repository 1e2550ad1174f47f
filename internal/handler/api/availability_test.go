//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"tembea/internal/handler/api"
	resdto "tembea/internal/handler/dto/response"
	"tembea/internal/infra"
	"tembea/internal/usecase/queries"
	"tembea/tests/common/httptest"
	queriesmock "tembea/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	handler := api.NewAvailabilityHandler(s.mockQueries)

	s.router.GET("/items/:id/availability", handler.GetAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetAvailability() {
	itemID := uuid.New()
	visitDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	url := "/items/" + itemID.String() + "/availability?date=2026-09-15"

	s.Run("success: returns remaining slots", func() {
		s.mockQueries.EXPECT().Remaining(gomock.Any(), itemID, visitDate).Return(&queries.AvailabilityView{
			ItemID:    itemID,
			VisitDate: visitDate,
			Capacity:  10,
			Booked:    6,
			Remaining: 4,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var resp resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int32(4), resp.Remaining)
		s.Equal(int32(10), resp.Capacity)
	})

	s.Run("missing date query returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/"+itemID.String()+"/availability", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("bad date format returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/"+itemID.String()+"/availability?date=15-09-2026", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown listing returns 404", func() {
		s.mockQueries.EXPECT().Remaining(gomock.Any(), itemID, visitDate).
			Return(nil, infra.WrapRepoErr("listing not found", pgx.ErrNoRows, infra.KindNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("malformed listing ID returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/nope/availability?date=2026-09-15", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
