package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placeprep/readiness-service/internal/services"
	"github.com/placeprep/readiness-service/internal/session"
	"github.com/placeprep/readiness-service/internal/utils"
)

type AuthHandler struct {
	BaseHandler
	service    services.AuthService
	sessions   *session.Manager
	sessionTTL int
}

func NewAuthHandler(service services.AuthService, sessions *session.Manager, sessionTTLSeconds int, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		sessions:    sessions,
		sessionTTL:  sessionTTLSeconds,
	}
}

// Home redirects to the login page.
func (h *AuthHandler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
}

// ShowRegister describes the registration form fields.
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": []string{"name", "email", "password"}})
}

// Register creates a user account.
func (h *AuthHandler) Register(c *gin.Context) {
	h.LogRequest(c, "Registering user")

	var req services.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid registration form",
			Details: err.Error(),
		})
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "registered",
		"user_id": user.ID,
	})
}

// ShowLogin describes the login form fields.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": []string{"email", "password"}})
}

// Login authenticates and issues a session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	h.LogRequest(c, "Logging in user")

	var req services.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid login form",
			Details: err.Error(),
		})
		return
	}

	user, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	token, err := h.sessions.CreateUserSession(c.Request.Context(), session.Identity{
		UserID: user.ID,
		Name:   user.Name,
	})
	if err != nil {
		h.LogError(c, err, "Failed to create session")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to create session"})
		return
	}

	c.SetCookie(session.UserCookie, token, h.sessionTTL, "/", "", false, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout revokes the user session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.UserCookie); err == nil {
		if err := h.sessions.DeleteUserSession(c.Request.Context(), token); err != nil {
			h.LogError(c, err, "Failed to delete session")
		}
	}

	c.SetCookie(session.UserCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusConflict, ErrorResponse{
			Message: "User already exists",
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "Invalid credentials",
		})
	default:
		h.LogError(c, err, "Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
