package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/services"
)

const msgUnexpected = "An unexpected error occurred"

// JobStore is the part of services.JobService the handlers need.
type JobStore interface {
	CreateJob(ctx context.Context, req *dtos.JobCreationRequest) (*models.Job, error)
	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, id uint) (*models.Job, error)
	UpdateJob(ctx context.Context, id uint, req *dtos.JobUpdateRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, id uint) error
}

type JobHandler struct {
	JobService JobStore
	Logger     *slog.Logger
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(j JobStore, logger *slog.Logger) *JobHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobHandler{JobService: j, Logger: logger}
}

// RegisterRoutes mounts the CRUD endpoints on r (expected to be /api/v1/jobs).
func (h *JobHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("", h.CreateJob)
	r.GET("", h.ListJobs)
	r.GET("/:id", h.GetJob)
	r.PUT("/:id", h.UpdateJob)
	r.DELETE("/:id", h.DeleteJob)
}

// CreateJob is POST /api/v1/jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	job, err := h.JobService.CreateJob(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err, "creating job")
		return
	}
	RespondSuccess(c, http.StatusCreated, "Job created successfully", job)
}

// ListJobs is GET /api/v1/jobs
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.JobService.ListJobs(c.Request.Context())
	if err != nil {
		h.fail(c, err, "listing jobs")
		return
	}
	RespondSuccess(c, http.StatusOK, "Jobs fetched successfully", jobs)
}

// GetJob is GET /api/v1/jobs/:id
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		RespondError(c, http.StatusBadRequest, "Invalid job ID")
		return
	}
	job, err := h.JobService.GetJob(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "fetching job")
		return
	}
	RespondSuccess(c, http.StatusOK, "Job fetched successfully", job)
}

// UpdateJob is PUT /api/v1/jobs/:id (partial)
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		RespondError(c, http.StatusBadRequest, "Invalid job ID")
		return
	}
	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	job, err := h.JobService.UpdateJob(c.Request.Context(), id, &req)
	if err != nil {
		h.fail(c, err, "updating job")
		return
	}
	RespondSuccess(c, http.StatusOK, "Job updated successfully", job)
}

// DeleteJob is DELETE /api/v1/jobs/:id
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		RespondError(c, http.StatusBadRequest, "Invalid job ID")
		return
	}
	if err := h.JobService.DeleteJob(c.Request.Context(), id); err != nil {
		h.fail(c, err, "deleting job")
		return
	}
	RespondSuccess(c, http.StatusOK, "Job deleted successfully", nil)
}

func (h *JobHandler) fail(c *gin.Context, err error, op string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		RespondErrorData(c, http.StatusBadRequest, "Invalid input", verr.Fields)
	case errors.Is(err, services.ErrJobNotFound):
		RespondError(c, http.StatusNotFound, "Job not found")
	default:
		h.Logger.ErrorContext(c.Request.Context(), "unexpected error while "+op, "error", err)
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, msgUnexpected)
	}
}
