//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"tembea/internal/domain/identity"
	"tembea/internal/handler/api"
	"tembea/internal/usecase/commands"
	"tembea/tests/common/httptest"
	commandsmock "tembea/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockApproval *commandsmock.MockApprovalCommands
	adminID      uuid.UUID
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockApproval = commandsmock.NewMockApprovalCommands(s.mockCtrl)
	handler := api.NewAdminHandler(s.mockApproval)
	s.adminID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.adminID)
		c.Set("user_role", identity.RoleAdmin)
		c.Next()
	}

	s.router.POST("/admin/items/approve", authMiddleware, handler.ApproveItems)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestApproveItems() {
	url := "/admin/items/approve"

	s.Run("success: reports the approved count", func() {
		ids := []string{uuid.NewString(), uuid.NewString()}
		s.mockApproval.EXPECT().ApproveItems(gomock.Any(), gomock.Any(), s.adminID).Return(int64(2), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"item_type": "trip", "item_ids": ids}, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		var body struct {
			Approved int64 `json:"approved"`
		}
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(int64(2), body.Approved)
	})

	s.Run("empty ID list fails binding", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"item_type": "trip", "item_ids": []string{}}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("invalid item type from the command maps to 400", func() {
		s.mockApproval.EXPECT().ApproveItems(gomock.Any(), gomock.Any(), s.adminID).
			Return(int64(0), commands.ErrInvalidItemType)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"item_type": "trip", "item_ids": []string{uuid.NewString()}}, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unauthorized without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"item_type": "trip", "item_ids": []string{uuid.NewString()}}, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
