package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/justsurfingit/jobboard/internal/database"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB     *gorm.DB
	Logger *slog.Logger
}

func NewJobService(db *gorm.DB, logger *slog.Logger) *JobService {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobService{
		DB:     db,
		Logger: logger.With("component", "job_service"),
	}
}

// CreateJob validates the request and inserts a new job.
func (s *JobService) CreateJob(ctx context.Context, req *dtos.JobCreationRequest) (*models.Job, error) {
	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Location:    req.Location,
		Salary:      req.Salary,
	}
	if err := validateStruct(job); err != nil {
		s.Logger.WarnContext(ctx, "validation error while creating job", "error", err)
		return nil, err
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(job).Error
	})
	if err != nil {
		s.Logger.ErrorContext(ctx, "database error while creating job", "error", err)
		return nil, fmt.Errorf("%w: create job: %w", ErrOperationFailed, err)
	}

	s.Logger.InfoContext(ctx, "created job", "job_id", job.ID)
	return job, nil
}

// ListJobs returns every job ordered by id.
func (s *JobService) ListJobs(ctx context.Context) ([]models.Job, error) {
	jobs := make([]models.Job, 0)
	if err := s.DB.WithContext(ctx).Order("id").Find(&jobs).Error; err != nil {
		s.Logger.ErrorContext(ctx, "database error while retrieving jobs", "error", err)
		return nil, fmt.Errorf("%w: list jobs: %w", ErrOperationFailed, err)
	}
	s.Logger.InfoContext(ctx, "retrieved jobs", "count", len(jobs))
	return jobs, nil
}

// GetJob fetches a single job; ErrJobNotFound when absent.
func (s *JobService) GetJob(ctx context.Context, id uint) (*models.Job, error) {
	job, err := findJob(s.DB.WithContext(ctx), id)
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			s.Logger.WarnContext(ctx, "job not found", "job_id", id)
			return nil, err
		}
		s.Logger.ErrorContext(ctx, "database error while fetching job", "job_id", id, "error", err)
		return nil, fmt.Errorf("%w: get job: %w", ErrOperationFailed, err)
	}
	return job, nil
}

// UpdateJob merges the supplied fields into the stored job and validates the result
// before writing. Nothing is written when validation fails.
func (s *JobService) UpdateJob(ctx context.Context, id uint, req *dtos.JobUpdateRequest) (*models.Job, error) {
	var updated *models.Job
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		job, err := findJob(tx, id)
		if err != nil {
			return err
		}
		mergeJob(job, req)
		if err := validateStruct(job); err != nil {
			return err
		}
		if err := tx.Save(job).Error; err != nil {
			return err
		}
		updated = job
		return nil
	})

	var verr *ValidationError
	switch {
	case err == nil:
		s.Logger.InfoContext(ctx, "updated job", "job_id", id)
		return updated, nil
	case errors.Is(err, ErrJobNotFound):
		s.Logger.WarnContext(ctx, "job not found for update", "job_id", id)
		return nil, err
	case errors.As(err, &verr):
		s.Logger.WarnContext(ctx, "validation error while updating job", "job_id", id, "error", err)
		return nil, err
	default:
		s.Logger.ErrorContext(ctx, "database error while updating job", "job_id", id, "error", err)
		return nil, fmt.Errorf("%w: update job: %w", ErrOperationFailed, err)
	}
}

// DeleteJob removes a job by id.
func (s *JobService) DeleteJob(ctx context.Context, id uint) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		job, err := findJob(tx, id)
		if err != nil {
			return err
		}
		return tx.Delete(job).Error
	})
	switch {
	case err == nil:
		s.Logger.InfoContext(ctx, "deleted job", "job_id", id)
		return nil
	case errors.Is(err, ErrJobNotFound):
		s.Logger.WarnContext(ctx, "job not found for deletion", "job_id", id)
		return err
	default:
		s.Logger.ErrorContext(ctx, "database error while deleting job", "job_id", id, "error", err)
		return fmt.Errorf("%w: delete job: %w", ErrOperationFailed, err)
	}
}

func findJob(db *gorm.DB, id uint) (*models.Job, error) {
	var job models.Job
	if err := db.First(&job, id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func mergeJob(job *models.Job, req *dtos.JobUpdateRequest) {
	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = req.Location
	}
	if req.Salary != nil {
		job.Salary = req.Salary
	}
}
