package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadApply_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadApply()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Addr)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "http://localhost:8080", cfg.Listing.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Listing.Timeout)
	assert.True(t, cfg.Listing.UnavailableAsNotFound)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowOrigins)
}

func TestLoadApply_Overrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JOB_LISTING_BASE_URL", "http://listing:9000/")
	t.Setenv("JOB_LISTING_TIMEOUT", "0s")
	t.Setenv("JOB_LISTING_UNAVAILABLE_AS_NOT_FOUND", "false")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/apply.db")

	cfg, err := LoadApply()
	require.NoError(t, err)

	assert.Equal(t, "http://listing:9000", cfg.Listing.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Listing.Timeout)
	assert.False(t, cfg.Listing.UnavailableAsNotFound)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "/tmp/apply.db", cfg.DB.DSN())
}

func TestLoadListing_UnknownDriver(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_DRIVER", "mysql")

	_, err := LoadListing()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql")
}

func TestDBConfig_PostgresDSN(t *testing.T) {
	c := DBConfig{Driver: DriverPostgres, Host: "db", Port: 5433, User: "u", Password: "p", Name: "jobs", SSLMode: "require"}
	assert.Equal(t, "host=db user=u password=p dbname=jobs port=5433 sslmode=require", c.DSN())
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
