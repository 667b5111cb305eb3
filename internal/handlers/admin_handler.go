package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placeprep/readiness-service/internal/services"
	"github.com/placeprep/readiness-service/internal/session"
	"github.com/placeprep/readiness-service/internal/utils"
)

type AdminHandler struct {
	BaseHandler
	auth        services.AuthService
	leaderboard services.LeaderboardService
	export      services.ExportService
	store       services.StoreService
	sessions    *session.Manager
	sessionTTL  int
}

func NewAdminHandler(
	auth services.AuthService,
	leaderboard services.LeaderboardService,
	export services.ExportService,
	store services.StoreService,
	sessions *session.Manager,
	sessionTTLSeconds int,
	logger utils.Logger,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler: NewBaseHandler(logger),
		auth:        auth,
		leaderboard: leaderboard,
		export:      export,
		store:       store,
		sessions:    sessions,
		sessionTTL:  sessionTTLSeconds,
	}
}

// ShowAdminLogin describes the admin login form fields.
func (h *AdminHandler) ShowAdminLogin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": []string{"email", "password"}})
}

// AdminLogin checks the fixed credentials and sets the admin flag session.
func (h *AdminHandler) AdminLogin(c *gin.Context) {
	h.LogRequest(c, "Admin login attempt")

	var req services.AdminLoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid login form",
			Details: err.Error(),
		})
		return
	}

	if err := h.auth.AdminLogin(c.Request.Context(), req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	token, err := h.sessions.CreateAdminSession(c.Request.Context())
	if err != nil {
		h.LogError(c, err, "Failed to create admin session")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to create session"})
		return
	}

	c.SetCookie(session.AdminCookie, token, h.sessionTTL, "/", "", false, true)
	c.Redirect(http.StatusFound, "/admin_dashboard")
}

// AdminDashboard aggregates every user's readiness and surfaces the top-3
// leaderboard.
func (h *AdminHandler) AdminDashboard(c *gin.Context) {
	h.LogRequest(c, "Getting admin dashboard")

	dashboard, err := h.leaderboard.GetAdminDashboard(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// ExportCSV writes the aggregated report to the export directory.
func (h *AdminHandler) ExportCSV(c *gin.Context) {
	h.LogRequest(c, "Exporting CSV report")

	result, err := h.export.ExportCSV(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.String(http.StatusOK, fmt.Sprintf("CSV exported successfully as %q (%d rows)", result.Filename, result.Rows))
}

// ExportXLSX writes the aggregated report as a spreadsheet.
func (h *AdminHandler) ExportXLSX(c *gin.Context) {
	h.LogRequest(c, "Exporting XLSX report")

	result, err := h.export.ExportXLSX(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.String(http.StatusOK, fmt.Sprintf("Spreadsheet exported successfully as %q (%d rows)", result.Filename, result.Rows))
}

// ResetDatabase destroys and recreates all storage. Guarded by the admin
// session middleware.
func (h *AdminHandler) ResetDatabase(c *gin.Context) {
	h.LogRequest(c, "Resetting database")

	if err := h.store.Reset(c.Request.Context()); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.String(http.StatusOK, "Database has been reset successfully.")
}

// AdminLogout clears the admin flag only.
func (h *AdminHandler) AdminLogout(c *gin.Context) {
	if token, err := c.Cookie(session.AdminCookie); err == nil {
		if err := h.sessions.DeleteAdminSession(c.Request.Context(), token); err != nil {
			h.LogError(c, err, "Failed to delete admin session")
		}
	}

	c.SetCookie(session.AdminCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/admin_login")
}

func (h *AdminHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "Invalid admin credentials",
		})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Message: "Forbidden",
		})
	default:
		h.LogError(c, err, "Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
