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

// ApplicationServiceOptions configures an ApplicationService.
type ApplicationServiceOptions struct {
	DB      *gorm.DB     // Required
	Fetcher JobFetcher   // Required
	Logger  *slog.Logger // Optional
	// UnavailableAsNotFound reports ErrJobNotFound when the listing service
	// cannot be reached, instead of ErrUpstreamUnavailable.
	UnavailableAsNotFound bool
}

type ApplicationService struct {
	db                    *gorm.DB
	fetcher               JobFetcher
	logger                *slog.Logger
	unavailableAsNotFound bool
}

func NewApplicationService(opts ApplicationServiceOptions) (*ApplicationService, error) {
	if opts.DB == nil {
		return nil, errors.New("DB is required")
	}
	if opts.Fetcher == nil {
		return nil, errors.New("Fetcher is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ApplicationService{
		db:                    opts.DB,
		fetcher:               opts.Fetcher,
		logger:                logger.With("component", "application_service"),
		unavailableAsNotFound: opts.UnavailableAsNotFound,
	}, nil
}

// ApplyJob records an application of user to jobID with a snapshot of the remote job.
// Either one row is created and returned, or nothing is written.
func (s *ApplicationService) ApplyJob(ctx context.Context, jobID uint, user dtos.Identity) (*models.JobApplication, error) {
	log := s.logger.With("job_id", jobID, "user_id", user.UserID)
	log.InfoContext(ctx, "applying for job", "user_email", user.Email)

	exists, err := s.hasApplied(ctx, jobID, user.UserID)
	if err != nil {
		log.ErrorContext(ctx, "failed to check for existing application", "error", err)
		return nil, fmt.Errorf("%w: duplicate check: %w", ErrOperationFailed, err)
	}
	if exists {
		log.WarnContext(ctx, "user already applied for job")
		return nil, ErrDuplicateApplication
	}

	// Fetched before the transaction so no transaction is held open across network I/O.
	remote, err := s.fetcher.FetchJob(ctx, jobID)
	if err != nil {
		return nil, s.fetchError(ctx, log, err)
	}

	app := snapshot(remote, jobID, user)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(app).Error
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			log.WarnContext(ctx, "concurrent duplicate application rejected by unique index")
			return nil, ErrDuplicateApplication
		}
		log.ErrorContext(ctx, "failed to apply for job", "error", err)
		return nil, fmt.Errorf("%w: insert application: %w", ErrOperationFailed, err)
	}

	log.InfoContext(ctx, "applied for job", "application_id", app.ID)
	return app, nil
}

// GetAppliedJob returns the application only if it belongs to userID.
func (s *ApplicationService) GetAppliedJob(ctx context.Context, applicationID uint, userID int64) (*models.JobApplication, error) {
	var app models.JobApplication
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", applicationID, userID).
		First(&app).Error
	if err != nil {
		if database.IsNotFound(err) {
			s.logger.WarnContext(ctx, "job application not found for user", "application_id", applicationID, "user_id", userID)
			return nil, ErrApplicationNotFound
		}
		s.logger.ErrorContext(ctx, "failed to fetch job application", "application_id", applicationID, "error", err)
		return nil, fmt.Errorf("%w: get application: %w", ErrOperationFailed, err)
	}
	return &app, nil
}

// ListAppliedJobs returns the user's applications, newest first.
func (s *ApplicationService) ListAppliedJobs(ctx context.Context, userID int64) ([]models.JobApplication, error) {
	apps := make([]models.JobApplication, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("applied_at DESC, id DESC").
		Find(&apps).Error
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list job applications", "user_id", userID, "error", err)
		return nil, fmt.Errorf("%w: list applications: %w", ErrOperationFailed, err)
	}
	return apps, nil
}

// DeleteAppliedJob deletes the application if it exists and belongs to userID.
// It reports false when there was nothing of the user's to delete.
func (s *ApplicationService) DeleteAppliedJob(ctx context.Context, applicationID uint, userID int64) (bool, error) {
	log := s.logger.With("application_id", applicationID, "user_id", userID)

	var deleted bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", applicationID, userID).Delete(&models.JobApplication{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		log.ErrorContext(ctx, "failed to delete job application", "error", err)
		return false, fmt.Errorf("%w: delete application: %w", ErrOperationFailed, err)
	}

	if !deleted {
		log.WarnContext(ctx, "job application not found for user")
		return false, nil
	}
	log.InfoContext(ctx, "deleted job application")
	return true, nil
}

func (s *ApplicationService) hasApplied(ctx context.Context, jobID uint, userID int64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.JobApplication{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error
	return count > 0, err
}

func (s *ApplicationService) fetchError(ctx context.Context, log *slog.Logger, err error) error {
	if errors.Is(err, ErrRemoteJobNotFound) {
		log.WarnContext(ctx, "job not found in listing service")
		return ErrJobNotFound
	}

	log.ErrorContext(ctx, "error fetching job details", "error", err)
	if s.unavailableAsNotFound {
		return ErrJobNotFound
	}
	if errors.Is(err, ErrUpstreamUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
}

func snapshot(remote *dtos.RemoteJob, jobID uint, user dtos.Identity) *models.JobApplication {
	app := &models.JobApplication{
		JobID:       jobID,
		UserID:      user.UserID,
		UserEmail:   user.Email,
		Description: remote.Description,
		Location:    remote.Location,
		Salary:      remote.Salary,
	}
	if remote.Title != nil {
		app.Title = *remote.Title
	}
	if remote.Company != nil {
		app.Company = *remote.Company
	}
	return app
}
