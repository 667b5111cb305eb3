package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/placeprep/readiness-service/internal/utils"
)

// BaseHandler carries the shared handler dependencies.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// LogRequest logs the start of handler work with request context.
func (h BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.LoggerFromContext(c, h.logger).Info(msg, args...)
}

// LogError logs a handler failure with request context.
func (h BaseHandler) LogError(c *gin.Context, err error, msg string) {
	utils.LoggerFromContext(c, h.logger).Error(msg, "error", err)
}
