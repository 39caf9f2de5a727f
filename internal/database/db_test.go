package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/a2sh3r/aitrade/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_InvalidDSN(t *testing.T) {
	cfg := &config.Config{
		DatabaseURI: "invalid://dsn",
	}

	_, err := InitDB(cfg)
	assert.Error(t, err)
}

func TestMigrations_Paired(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups, downs := 0, 0
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		}
	}
	assert.Equal(t, ups, downs)
}

func TestMigrations_NotifyTriggers(t *testing.T) {
	data, err := fs.ReadFile(migrationsFS, "migrations/000002_realtime_notify.up.sql")
	require.NoError(t, err)

	sql := string(data)
	assert.Contains(t, sql, "realtime_changes")
	assert.Contains(t, sql, "ON user_credits")
	assert.Contains(t, sql, "ON payments")
}
