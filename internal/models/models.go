package models

import (
	"time"
)

// Job is a posting owned by the listing service.
type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"column:date_created" json:"date_created"`
	UpdatedAt time.Time `gorm:"column:date_updated" json:"date_updated"`

	Title       string   `gorm:"size:255;not null" json:"title" validate:"required,notblank"`
	Description string   `gorm:"type:text" json:"description" validate:"required,notblank"`
	Company     string   `gorm:"size:255;not null" json:"company" validate:"required,notblank"`
	Location    *string  `gorm:"size:255" json:"location"`
	Salary      *float64 `json:"salary" validate:"omitempty,gte=0"`
}

// JobApplication records that a user applied to a remote job.
// The job fields are a snapshot taken at apply time and never re-synced.
type JobApplication struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// One application per (job, user); the pre-insert check alone is racy.
	JobID     uint   `gorm:"not null;index;uniqueIndex:idx_job_applications_job_user,priority:1" json:"job_id"`
	UserID    int64  `gorm:"not null;index;uniqueIndex:idx_job_applications_job_user,priority:2" json:"user_id"`
	UserEmail string `gorm:"size:255;not null;index" json:"user_email"`

	Title       string   `gorm:"size:255;not null" json:"title"`
	Description *string  `gorm:"type:text" json:"description"`
	Company     string   `gorm:"size:255;not null" json:"company"`
	Location    *string  `gorm:"size:255" json:"location"`
	Salary      *float64 `json:"salary"`

	AppliedAt time.Time `gorm:"autoCreateTime" json:"applied_at"`
}

// ListingModels are migrated by the listing service.
func ListingModels() []any {
	return []any{&Job{}}
}

// ApplyModels are migrated by the application service.
func ApplyModels() []any {
	return []any{&JobApplication{}}
}
