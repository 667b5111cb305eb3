package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placeprep/readiness-service/internal/services"
	"github.com/placeprep/readiness-service/internal/utils"
)

type DashboardHandler struct {
	BaseHandler
	service services.ReadinessService
}

func NewDashboardHandler(service services.ReadinessService, logger utils.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// Dashboard shows the logged-in student's record history and readiness.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Not authenticated"})
		return
	}

	h.LogRequest(c, "Getting dashboard", "user_id", userID)

	dashboard, err := h.service.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *DashboardHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "User not found",
		})
	default:
		h.LogError(c, err, "Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
