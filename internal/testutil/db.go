// Package testutil provides throwaway databases for tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/justsurfingit/jobboard/internal/config"
	"github.com/justsurfingit/jobboard/internal/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewSQLiteDB opens a migrated SQLite database in a temp dir that is closed on cleanup.
func NewSQLiteDB(t *testing.T, models ...any) *gorm.DB {
	t.Helper()

	cfg := config.DBConfig{
		Driver:      config.DriverSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "test.db"),
		AutoMigrate: true,
	}
	db, err := database.Connect(cfg, nil, models...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
