package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/middleware"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/services"
)

// Applier is the part of services.ApplicationService the handlers need.
type Applier interface {
	ApplyJob(ctx context.Context, jobID uint, user dtos.Identity) (*models.JobApplication, error)
	GetAppliedJob(ctx context.Context, applicationID uint, userID int64) (*models.JobApplication, error)
	ListAppliedJobs(ctx context.Context, userID int64) ([]models.JobApplication, error)
	DeleteAppliedJob(ctx context.Context, applicationID uint, userID int64) (bool, error)
}

type ApplicationHandler struct {
	Service Applier
	Logger  *slog.Logger
}

func NewApplicationHandler(s Applier, logger *slog.Logger) *ApplicationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ApplicationHandler{Service: s, Logger: logger}
}

// RegisterRoutes mounts the endpoints on r; r must already run GatewayIdentity.
func (h *ApplicationHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("", h.ApplyForJob)
	r.POST("/apply", h.ApplyForJob)
	r.GET("", h.ListAppliedJobs)
	r.GET("/:application_id", h.GetAppliedJob)
	r.DELETE("/:application_id", h.DeleteAppliedJob)
}

// ApplyForJob is POST /applications
func (h *ApplicationHandler) ApplyForJob(c *gin.Context) {
	user := middleware.MustCurrentUser(c)
	var req dtos.ApplyJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid input: job_id must be a positive integer")
		return
	}

	app, err := h.Service.ApplyJob(c.Request.Context(), req.JobID, user)
	switch {
	case err == nil:
		RespondSuccess(c, http.StatusCreated, "Job application submitted successfully", app)
	case errors.Is(err, services.ErrDuplicateApplication):
		RespondError(c, http.StatusBadRequest, "You have already applied for this job")
	case errors.Is(err, services.ErrJobNotFound):
		RespondError(c, http.StatusNotFound, "Job not found")
	case errors.Is(err, services.ErrUpstreamUnavailable):
		RespondError(c, http.StatusServiceUnavailable, "Job listing service unavailable")
	default:
		h.Logger.ErrorContext(c.Request.Context(), "API error applying for job", "job_id", req.JobID, "error", err)
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, "Failed to apply for job")
	}
}

// GetAppliedJob is GET /applications/:application_id
func (h *ApplicationHandler) GetAppliedJob(c *gin.Context) {
	user := middleware.MustCurrentUser(c)
	id, ok := pathID(c, "application_id")
	if !ok {
		RespondError(c, http.StatusBadRequest, "Invalid application ID")
		return
	}

	app, err := h.Service.GetAppliedJob(c.Request.Context(), id, user.UserID)
	switch {
	case err == nil:
		RespondSuccess(c, http.StatusOK, "Job application fetched successfully", app)
	case errors.Is(err, services.ErrApplicationNotFound):
		RespondError(c, http.StatusNotFound, "Job application not found")
	default:
		h.Logger.ErrorContext(c.Request.Context(), "API error fetching job application", "application_id", id, "error", err)
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, "Failed to fetch job application")
	}
}

// ListAppliedJobs is GET /applications
func (h *ApplicationHandler) ListAppliedJobs(c *gin.Context) {
	user := middleware.MustCurrentUser(c)
	apps, err := h.Service.ListAppliedJobs(c.Request.Context(), user.UserID)
	if err != nil {
		h.Logger.ErrorContext(c.Request.Context(), "API error listing job applications", "error", err)
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, "Failed to fetch job applications")
		return
	}
	RespondSuccess(c, http.StatusOK, "Job applications fetched successfully", apps)
}

// DeleteAppliedJob is DELETE /applications/:application_id
func (h *ApplicationHandler) DeleteAppliedJob(c *gin.Context) {
	user := middleware.MustCurrentUser(c)
	id, ok := pathID(c, "application_id")
	if !ok {
		RespondError(c, http.StatusBadRequest, "Invalid application ID")
		return
	}

	deleted, err := h.Service.DeleteAppliedJob(c.Request.Context(), id, user.UserID)
	if err != nil {
		h.Logger.ErrorContext(c.Request.Context(), "API error deleting job application", "application_id", id, "error", err)
		_ = c.Error(err)
		RespondError(c, http.StatusInternalServerError, "Failed to delete job application")
		return
	}
	if !deleted {
		RespondError(c, http.StatusNotFound, "Job application not found")
		return
	}
	RespondSuccess(c, http.StatusOK, "Job application deleted successfully", nil)
}
