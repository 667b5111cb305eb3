package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/placeprep/readiness-service/internal/services"
	"github.com/placeprep/readiness-service/internal/utils"
)

type RecordHandler struct {
	BaseHandler
	service   services.RecordService
	uploadDir string
}

func NewRecordHandler(service services.RecordService, uploadDir string, logger utils.Logger) *RecordHandler {
	return &RecordHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		uploadDir:   uploadDir,
	}
}

// AddAptitude logs a mock-test score for the current user.
func (h *RecordHandler) AddAptitude(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Not authenticated"})
		return
	}

	h.LogRequest(c, "Adding aptitude record", "user_id", userID)

	var req services.AddAptitudeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid aptitude form",
			Details: err.Error(),
		})
		return
	}

	if _, err := h.service.AddAptitude(c.Request.Context(), userID, req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// AddCertification logs a certification for the current user.
func (h *RecordHandler) AddCertification(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Not authenticated"})
		return
	}

	h.LogRequest(c, "Adding certification record", "user_id", userID)

	var req services.AddCertificationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid certification form",
			Details: err.Error(),
		})
		return
	}

	if _, err := h.service.AddCertification(c.Request.Context(), userID, req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// UploadResume accepts a multipart file, saves it under the upload dir and
// runs the extract-and-score pipeline.
func (h *RecordHandler) UploadResume(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Not authenticated"})
		return
	}

	h.LogRequest(c, "Uploading resume", "user_id", userID)

	file, err := c.FormFile("resume")
	if err != nil || file.Filename == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "No file selected"})
		return
	}

	// filepath.Base strips any client-supplied directory components.
	filename := filepath.Base(file.Filename)
	path := filepath.Join(h.uploadDir, filename)

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		h.LogError(c, err, "Failed to create upload directory")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to store file"})
		return
	}

	if err := c.SaveUploadedFile(file, path); err != nil {
		h.LogError(c, err, "Failed to save uploaded file")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to store file"})
		return
	}

	result, err := h.service.UploadResume(c.Request.Context(), userID, filename, path)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	if result.Warning != "" {
		c.JSON(http.StatusOK, gin.H{
			"warning":        result.Warning,
			"score":          result.Record.Score,
			"matched_skills": result.MatchedSkills,
		})
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *RecordHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})
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
