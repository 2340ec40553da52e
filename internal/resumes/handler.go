package resumes

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobtrack-backend/internal/shared/server/middleware"
	"jobtrack-backend/internal/shared/server/respond"
	"jobtrack-backend/internal/shared/storage/object"
)

const maxUploadSize = 10 << 20 // 10MB

var allowedContentTypes = map[string]struct{}{
	"application/pdf": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume/upload", h.upload)
	rg.GET("/resume", h.list)
	rg.POST("/resume/delete", h.delete)
	rg.PUT("/resume/update", h.update)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required")
		return
	}
	if ct := fileHeader.Header.Get("Content-Type"); ct != "" {
		if _, ok := allowedContentTypes[strings.ToLower(strings.TrimSpace(ct))]; !ok {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unsupported file type")
			return
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file")
		return
	}
	defer file.Close()

	resume, url, err := h.Svc.Upload(c.Request.Context(), userID, fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to upload resume")
		}
		return
	}

	c.Set("resumeId", resume.ID)
	respond.JSON(c, http.StatusOK, gin.H{"url": url})
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	items, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes")
		return
	}

	resp := make([]ResumeResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toResponse(item))
	}
	respond.JSON(c, http.StatusOK, gin.H{"resumes": resp})
}

type deleteRequest struct {
	ResumeID string `json:"resumeId"`
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ResumeID) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resumeId is required")
		return
	}

	c.Set("resumeId", req.ResumeID)
	if err := h.Svc.Delete(c.Request.Context(), userID, req.ResumeID); err != nil {
		writeServiceError(c, err, "failed to delete resume")
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"success": true})
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	resumeID := strings.TrimSpace(c.PostForm("resumeId"))
	if resumeID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resumeId is required")
		return
	}
	c.Set("resumeId", resumeID)

	in := ReplaceInput{NewName: strings.TrimSpace(c.PostForm("name"))}

	if fileHeader, err := c.FormFile("file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file")
			return
		}
		defer file.Close()
		in.File = file
		in.FileName = fileHeader.Filename
	}

	resume, err := h.Svc.Replace(c.Request.Context(), userID, resumeID, in)
	if err != nil {
		writeServiceError(c, err, "failed to update resume")
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"id":        resume.ID,
		"name":      resume.Name,
		"createdAt": resume.CreatedAt,
	})
}

func writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found")
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, "forbidden", "resume belongs to another user")
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, object.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume file not found")
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback)
	}
}
