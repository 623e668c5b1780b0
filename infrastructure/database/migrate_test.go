package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bizmetrics-api/internal/config"
)

func TestRunMigrations_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.Database{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "archive.db"),
	}

	require.NoError(t, RunMigrations(cfg))
	// Segunda execução não encontra mudanças
	require.NoError(t, RunMigrations(cfg))

	conn, err := NewConnection(ctx, cfg)
	require.NoError(t, err)
	defer conn.Close()

	var count int
	err = conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM metrics_uploads").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRunMigrations_UnknownDriver(t *testing.T) {
	err := RunMigrations(config.Database{Driver: "mysql", DSN: "x"})
	assert.Error(t, err)
}

func TestPlaceholderFor(t *testing.T) {
	query, err := PlaceholderFor(config.DriverPostgres).ReplacePlaceholders("a = ? AND b = ?")
	require.NoError(t, err)
	assert.Equal(t, "a = $1 AND b = $2", query)

	query, err = PlaceholderFor(config.DriverSQLite).ReplacePlaceholders("a = ?")
	require.NoError(t, err)
	assert.Equal(t, "a = ?", query)
}
