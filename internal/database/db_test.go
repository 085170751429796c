package database

import (
	"path/filepath"
	"testing"

	"github.com/justsurfingit/jobboard/internal/config"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_SQLiteMigratesApplyModels(t *testing.T) {
	cfg := config.DBConfig{
		Driver:      config.DriverSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "apply.db"),
		AutoMigrate: true,
	}

	db, err := Connect(cfg, nil, models.ApplyModels()...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	assert.True(t, db.Migrator().HasTable(&models.JobApplication{}))
	assert.True(t, db.Migrator().HasIndex(&models.JobApplication{}, "idx_job_applications_job_user"))

	first := models.JobApplication{JobID: 1, UserID: 7, UserEmail: "a@example.com", Title: "t", Company: "c"}
	require.NoError(t, db.Create(&first).Error)

	dup := models.JobApplication{JobID: 1, UserID: 7, UserEmail: "a@example.com", Title: "t", Company: "c"}
	err = db.Create(&dup).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect(config.DBConfig{Driver: "oracle"}, nil)
	require.Error(t, err)
}
