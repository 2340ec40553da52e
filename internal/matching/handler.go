package matching

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobtrack-backend/internal/jobs"
	"jobtrack-backend/internal/resumes"
	"jobtrack-backend/internal/shared/server/middleware"
	"jobtrack-backend/internal/shared/server/respond"
	"jobtrack-backend/internal/shared/storage/object"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis and match routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume/analyze", h.analyze)
	rg.POST("/jobs/match", h.match)
}

type analyzeRequest struct {
	ResumeID string `json:"resumeId"`
}

func (h *Handler) analyze(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ResumeID) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resumeId is required")
		return
	}
	c.Set("resumeId", req.ResumeID)

	analysis, err := h.Svc.AnalyzeResume(c.Request.Context(), userID, req.ResumeID)
	if err != nil {
		writePipelineError(c, err, "failed to analyze resume")
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"analysis": analysis})
}

type matchRequest struct {
	ResumeID string `json:"resumeId"`
	JobID    string `json:"jobId"`
}

func (h *Handler) match(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ResumeID) == "" || strings.TrimSpace(req.JobID) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resumeId and jobId are required")
		return
	}
	c.Set("resumeId", req.ResumeID)
	c.Set("jobId", req.JobID)

	feedback, err := h.Svc.MatchResumeToJob(c.Request.Context(), userID, req.ResumeID, req.JobID)
	if err != nil {
		writePipelineError(c, err, "failed to match resume")
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"matchFeedback": feedback})
}

func writePipelineError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, resumes.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found")
	case errors.Is(err, resumes.ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "resume belongs to another user")
	case errors.Is(err, jobs.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "job not found")
	case errors.Is(err, object.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume file not found")
	case errors.Is(err, ErrUnreadableResume):
		respond.Error(c, http.StatusBadRequest, "validation_error", "Resume text is too short or unreadable")
	case errors.Is(err, ErrCompletion):
		respond.Error(c, http.StatusBadGateway, "upstream_error", "AI service is unavailable")
	case errors.Is(err, ErrStorage):
		respond.Error(c, http.StatusBadGateway, "upstream_error", "file storage is unavailable")
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback)
	}
}
