package api

import (
	"errors"
	"net/http"

	reqdto "tembea/internal/handler/dto/request"
	"tembea/internal/handler/middleware"
	"tembea/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	approvalCommands commands.ApprovalCommands
}

func NewAdminHandler(approvalCommands commands.ApprovalCommands) *AdminHandler {
	return &AdminHandler{approvalCommands: approvalCommands}
}

// @Summary Approve listings
// @Description Approve pending listings of one type and make them visible
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApproveItemsRequest true "Approval request"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/items/approve [post]
func (h *AdminHandler) ApproveItems(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ApproveItemsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	count, err := h.approvalCommands.ApproveItems(c.Request.Context(), req, adminID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidItemType):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid item type",
			})
		case errors.Is(err, commands.ErrNoItemIDs):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No item IDs given",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"approved": count,
	})
}
