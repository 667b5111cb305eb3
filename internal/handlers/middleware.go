package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/placeprep/readiness-service/internal/session"
	"github.com/placeprep/readiness-service/internal/utils"
)

// Context keys set by the session middleware.
const (
	ContextUserID   = "user_id"
	ContextUserName = "user_name"
	ContextIsAdmin  = "is_admin"
)

// SetupMiddleware sets up common middleware for the Gin router.
func SetupMiddleware(router *gin.Engine, logger utils.Logger) {
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware())
	router.Use(gin.Recovery())
	router.Use(utils.ContextLogger(logger))
	router.Use(utils.LoggerMiddleware(logger))
	router.Use(SecurityMiddleware())
}

// RequestIDMiddleware generates a unique request ID for each request.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header("X-Request-ID", requestID)
		c.Set("request_id", requestID)
		c.Next()
	}
}

// CORSMiddleware provides CORS support.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// SecurityMiddleware adds security headers.
func SecurityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// SessionMiddleware resolves session cookies into request-scoped identity.
// There is no global who-is-logged-in state: every request carries its own.
type SessionMiddleware struct {
	sessions *session.Manager
}

func NewSessionMiddleware(sessions *session.Manager) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// RequireUser rejects requests without a live user session, redirecting
// browsers to the login page.
func (m *SessionMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.UserCookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		identity, err := m.sessions.GetUserSession(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrSessionNotFound) {
				c.Redirect(http.StatusFound, "/login")
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
				Message: "Failed to resolve session",
			})
			return
		}

		c.Set(ContextUserID, identity.UserID)
		c.Set(ContextUserName, identity.Name)
		c.Next()
	}
}

// RequireAdmin rejects requests without a live admin session. The reset
// route sits behind this gate as well.
func (m *SessionMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.AdminCookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/admin_login")
			c.Abort()
			return
		}

		ok, err := m.sessions.IsAdminSession(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
				Message: "Failed to resolve admin session",
			})
			return
		}
		if !ok {
			c.Redirect(http.StatusFound, "/admin_login")
			c.Abort()
			return
		}

		c.Set(ContextIsAdmin, true)
		c.Next()
	}
}

// CurrentUserID returns the identity set by RequireUser.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
