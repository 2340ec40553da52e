package jobs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack-backend/internal/shared/server/middleware"
	"jobtrack-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs", h.create)
	rg.GET("/jobs", h.list)
}

type createRequest struct {
	Position    string `json:"position"`
	Company     string `json:"company"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body")
		return
	}

	job, err := h.Svc.Create(c.Request.Context(), userID, CreateInput{
		Position:    req.Position,
		Company:     req.Company,
		Status:      req.Status,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create job")
		}
		return
	}

	c.Set("jobId", job.ID)
	respond.JSON(c, http.StatusCreated, toResponse(job))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	jobList, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch jobs")
		return
	}

	resp := make([]JobResponse, 0, len(jobList))
	for _, job := range jobList {
		resp = append(resp, toResponse(job))
	}
	respond.JSON(c, http.StatusOK, resp)
}
